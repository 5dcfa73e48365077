package twine

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds scheduler settings loadable from a file or the environment.
type Config struct {
	// TimeScale multiplies every tick's delta. 1 is real time. Must be positive.
	TimeScale float64 `mapstructure:"time_scale"`
	// MaxDelta caps a single tick's scaled delta in seconds. 0 disables the cap.
	MaxDelta float64 `mapstructure:"max_delta"`
	// Debug enables per-tick stats and logging of dropped tweens.
	Debug bool `mapstructure:"debug"`
	// DefaultEase names the ease used when a tween sets none.
	DefaultEase string `mapstructure:"default_ease"`
	// PresetsFile is an optional YAML file of named tween presets.
	PresetsFile string `mapstructure:"presets_file"`
}

// DefaultConfig returns the settings NewScheduler uses.
func DefaultConfig() Config {
	return Config{
		TimeScale:   1,
		DefaultEase: "linear",
	}
}

// LoadConfig reads a config file (YAML, TOML or JSON, chosen by extension).
// Any key can be overridden with a TWINE_ environment variable, for example
// TWINE_TIME_SCALE=0.5. An empty path reads the environment only. A relative
// presets_file is resolved against the config file's directory.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault("time_scale", def.TimeScale)
	v.SetDefault("max_delta", def.MaxDelta)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("default_ease", def.DefaultEase)
	v.SetDefault("presets_file", def.PresetsFile)
	v.SetEnvPrefix("TWINE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("twine: read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("twine: decode config: %w", err)
	}
	if path != "" && cfg.PresetsFile != "" && !filepath.IsAbs(cfg.PresetsFile) {
		cfg.PresetsFile = filepath.Join(filepath.Dir(path), cfg.PresetsFile)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TimeScale <= 0 {
		return fmt.Errorf("%w: time_scale %v must be positive", ErrInvalidConfig, c.TimeScale)
	}
	if c.MaxDelta < 0 {
		return fmt.Errorf("%w: max_delta %v is negative", ErrInvalidConfig, c.MaxDelta)
	}
	if _, err := EaseByName(c.DefaultEase); err != nil {
		return fmt.Errorf("%w: default_ease: %w", ErrInvalidConfig, err)
	}
	return nil
}
