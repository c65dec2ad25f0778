// Package config loads batch-run defaults (board dimensions, mine
// density, job count) from an optional file, layered underneath the
// command-line flags a caller supplies on top.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults holds batch-mode settings that a --config file may preset so
// repeated invocations don't have to repeat every flag.
type Defaults struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Mines     int     `mapstructure:"mines"`
	Density   float64 `mapstructure:"density"`
	Count     int     `mapstructure:"count"`
	Jobs      int     `mapstructure:"jobs"`
	NoGuess   bool    `mapstructure:"no_guess"`
	OutputDir string  `mapstructure:"output_dir"`
}

// Load reads defaults from path. The format is inferred from its
// extension (yaml, json, toml, ... — anything viper supports).
func Load(path string) (Defaults, error) {
	v := viper.New()
	v.SetConfigFile(path)

	var d Defaults
	if err := v.ReadInConfig(); err != nil {
		return d, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := v.Unmarshal(&d); err != nil {
		return d, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return d, nil
}
