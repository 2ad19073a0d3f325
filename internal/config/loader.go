package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const configFile = "hoops.yaml"

// Load loads the gameplay configuration.
// Search order: customPath -> ~/.hoops/configs/hoops.yaml -> ./configs/hoops.yaml -> embedded default
func Load(customPath string) (HoopsConfig, error) {
	// Try custom path first; errors here are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HoopsConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return HoopsConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultHoopsYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults, so partial files only override
// the keys they set, then validates the result.
func parse(data []byte) (HoopsConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HoopsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HoopsConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with.
func (c HoopsConfig) Validate() error {
	switch {
	case c.Difficulty.Easy <= 0 || c.Difficulty.Medium <= 0 || c.Difficulty.Hard <= 0:
		return fmt.Errorf("%w: difficulty durations must be positive", ErrInvalidConfig)
	case c.Player.MaxGrabDistance <= 0:
		return fmt.Errorf("%w: player.max_grab_distance must be positive", ErrInvalidConfig)
	case c.Throw.MaxChargeTicks <= 0:
		return fmt.Errorf("%w: throw.max_charge_ticks must be positive", ErrInvalidConfig)
	case c.Throw.ChargeScale <= 0:
		return fmt.Errorf("%w: throw.charge_scale must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0 || c.Ball.Mass <= 0:
		return fmt.Errorf("%w: ball radius and mass must be positive", ErrInvalidConfig)
	case c.Scoring.PointsPerBasket <= 0 || c.Scoring.ZoneRadius <= 0:
		return fmt.Errorf("%w: scoring values must be positive", ErrInvalidConfig)
	case c.Loading.TimeoutMS <= 0:
		return fmt.Errorf("%w: loading.timeout_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadTimeout returns the asset loading timeout.
func (c HoopsConfig) LoadTimeout() time.Duration {
	return time.Duration(c.Loading.TimeoutMS) * time.Millisecond
}

// ReleaseAfter returns how long a held throw key may go without a repeat
// before it counts as released.
func (c HoopsConfig) ReleaseAfter() time.Duration {
	return time.Duration(c.Throw.ReleaseAfterMS) * time.Millisecond
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hoops", "configs", filename)
}

// UserDir returns ~/.hoops, the directory for the score database and logs.
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".hoops"), nil
}
