// Package storage persists the high score behind a small key-value
// interface.
package storage

import (
	"github.com/pkg/errors"
)

// HighScoreKey is the only key the game persists.
const HighScoreKey = "snake_high"

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("storage: key not found")

// Store reads and writes named integers.
type Store interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}
