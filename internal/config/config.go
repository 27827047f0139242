// Package config loads tagpicker settings from an optional YAML file and
// TAGPICKER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings for a picker session.
type Config struct {
	Tags      TagsConfig      `mapstructure:"tags"`
	Animation AnimationConfig `mapstructure:"animation"`
	UI        UIConfig        `mapstructure:"ui"`
	Log       LogConfig       `mapstructure:"log"`
}

// TagsConfig holds the seed of the suggested list.
type TagsConfig struct {
	Seed []string `mapstructure:"seed"`
}

// AnimationConfig holds slide and rotation timing.
type AnimationConfig struct {
	SlideDuration  time.Duration `mapstructure:"slide_duration"`
	RotateDuration time.Duration `mapstructure:"rotate_duration"`
	RotateAngle    float64       `mapstructure:"rotate_angle"`
	FPS            int           `mapstructure:"fps"`
}

type UIConfig struct {
	Mouse bool `mapstructure:"mouse"`
}

// LogConfig controls where slog output goes. An empty File discards logs.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tags: TagsConfig{
			Seed: []string{"Android", "Website", "AI/ML", "Cyber Security"},
		},
		Animation: AnimationConfig{
			SlideDuration:  400 * time.Millisecond,
			RotateDuration: 300 * time.Millisecond,
			RotateAngle:    45,
			FPS:            60,
		},
		UI:  UIConfig{Mouse: true},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration. An explicit path must exist; otherwise the user
// config dir and the working directory are searched and a missing file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TAGPICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(userConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
			if err := readProjectConfig(v); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that durations, frame rate and seed tags are usable.
func (c *Config) Validate() error {
	if c.Animation.SlideDuration <= 0 {
		return fmt.Errorf("%w: animation.slide_duration must be positive, got %v", ErrInvalidConfig, c.Animation.SlideDuration)
	}
	if c.Animation.RotateDuration <= 0 {
		return fmt.Errorf("%w: animation.rotate_duration must be positive, got %v", ErrInvalidConfig, c.Animation.RotateDuration)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("%w: animation.fps must be positive, got %d", ErrInvalidConfig, c.Animation.FPS)
	}
	if len(c.Tags.Seed) == 0 {
		return fmt.Errorf("%w: tags.seed must name at least one tag", ErrInvalidConfig)
	}
	for i, tag := range c.Tags.Seed {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tags.seed[%d] is empty", ErrInvalidConfig, i)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("tags.seed", d.Tags.Seed)

	v.SetDefault("animation.slide_duration", d.Animation.SlideDuration.String())
	v.SetDefault("animation.rotate_duration", d.Animation.RotateDuration.String())
	v.SetDefault("animation.rotate_angle", d.Animation.RotateAngle)
	v.SetDefault("animation.fps", d.Animation.FPS)

	v.SetDefault("ui.mouse", d.UI.Mouse)

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

func readProjectConfig(v *viper.Viper) error {
	path := "tagpicker.yaml"
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading project config: %w", err)
	}
	return nil
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tagpicker")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "tagpicker")
	}
	return filepath.Join(home, ".config", "tagpicker")
}
