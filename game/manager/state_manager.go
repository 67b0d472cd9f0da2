package manager

import (
	"sort"
	"time"

	"snake-arcade/game/types"
	"snake-arcade/storage"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MaxHistory caps the number of finished games kept for the session.
const MaxHistory = 50

// GameRecord describes one finished game.
type GameRecord struct {
	ID         string          `json:"id"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    time.Time       `json:"endTime"`
	Score      int             `json:"score"`
	SpeedLevel int             `json:"speedLevel"`
	Reason     types.EndReason `json:"reason"`
}

// Duration returns how long the game lasted.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager owns the high score and the in-memory session history.
// The high score is loaded once and only ever grows.
type StateManager struct {
	store        storage.Store
	log          zerolog.Logger
	highScore    int
	scoreHistory []GameRecord
	totalGames   int
}

func NewStateManager(store storage.Store, log zerolog.Logger) *StateManager {
	sm := &StateManager{
		store:        store,
		log:          log,
		scoreHistory: make([]GameRecord, 0),
	}
	sm.LoadHighScore()
	return sm
}

// LoadHighScore reads the persisted high score. Missing or unreadable
// values count as 0.
func (sm *StateManager) LoadHighScore() int {
	sm.highScore = 0
	if sm.store == nil {
		return 0
	}

	v, err := sm.store.Get(storage.HighScoreKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		sm.log.Warn().Err(err).Msg("could not load high score")
	case v < 0:
		sm.log.Warn().Int("value", v).Msg("ignoring negative high score")
	default:
		sm.highScore = v
	}
	return sm.highScore
}

// UpdateScore raises and persists the high score when score beats it.
// It reports whether a new high score was set.
func (sm *StateManager) UpdateScore(score int) bool {
	if score <= sm.highScore {
		return false
	}
	sm.highScore = score
	if sm.store != nil {
		if err := sm.store.Set(storage.HighScoreKey, score); err != nil {
			sm.log.Warn().Err(err).Int("score", score).Msg("could not save high score")
		}
	}
	return true
}

func (sm *StateManager) AddToHistory(record GameRecord) {
	if len(sm.scoreHistory) >= MaxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, record)
	sm.totalGames++
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetScoreHistory returns a copy of the session history, oldest first.
func (sm *StateManager) GetScoreHistory() []GameRecord {
	history := make([]GameRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// GetAverageScore returns the mean score of the recorded games.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.scoreHistory {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

// GetMedianScore returns the median score of the recorded games.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	scores := make([]int, len(sm.scoreHistory))
	for i, r := range sm.scoreHistory {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	n := len(scores)
	if n%2 == 0 {
		return float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return float64(scores[n/2])
}

// GetMaxScore returns the best score of the session.
func (sm *StateManager) GetMaxScore() int {
	best := 0
	for _, r := range sm.scoreHistory {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// GamesPlayed counts every finished game, including ones dropped from the
// history.
func (sm *StateManager) GamesPlayed() int {
	return sm.totalGames
}
