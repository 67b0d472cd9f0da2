// Package config loads the engine parameters from an optional TOML file.
package config

import (
	"os"

	"snake-arcade/game/types"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Default returns the classic 20x20 setup.
func Default() types.Config {
	return types.Config{
		Columns:        types.DefaultColumns,
		Rows:           types.DefaultRows,
		BaseTickMs:     types.DefaultBaseTickMs,
		SpeedStepMs:    types.DefaultSpeedStepMs,
		MinTickMs:      types.DefaultMinTickMs,
		PointsPerLevel: types.DefaultPointsPerLevel,
		StartLength:    types.DefaultStartLength,
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (types.Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := Validate(cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the field ranges and that the starting snake fits on
// the grid with room left for food.
func Validate(cfg types.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if cfg.StartLength > cfg.Columns/2+1 {
		return errors.Errorf("invalid config: start_length %d does not fit in %d columns", cfg.StartLength, cfg.Columns)
	}
	return nil
}
