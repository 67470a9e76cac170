// Package config loads and validates ambient settings via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Fetch modes.
const (
	FetchModeHeadless = "headless"
	FetchModeStatic   = "static"
	FetchModeAuto     = "auto"
)

// Config captures the knobs that do not change the printed report. The user agent,
// the implicit wait and the output format are fixed and deliberately absent.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Browser BrowserConfig `mapstructure:"browser"`
}

// LogConfig toggles zap development features and verbosity.
type LogConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// FetchConfig selects how pages are retrieved. PromotionThreshold only applies to
// auto mode.
type FetchConfig struct {
	Mode               string `mapstructure:"mode"`
	PromotionThreshold int    `mapstructure:"promotion_threshold"`
}

// BrowserConfig locates the Chrome binary.
type BrowserConfig struct {
	ExecPath string `mapstructure:"exec_path"`
}

// Load builds a Config from defaults and EXTRACTOR_* environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXTRACTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Fetch.Mode = strings.ToLower(strings.TrimSpace(cfg.Fetch.Mode))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.development", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("fetch.mode", FetchModeHeadless)
	v.SetDefault("fetch.promotion_threshold", 2048)
	v.SetDefault("browser.exec_path", "")
}

// Validate enforces the allowed values.
func (c Config) Validate() error {
	switch c.Fetch.Mode {
	case FetchModeHeadless, FetchModeStatic, FetchModeAuto:
	default:
		return fmt.Errorf("fetch.mode must be one of %q, %q, %q, got %q",
			FetchModeHeadless, FetchModeStatic, FetchModeAuto, c.Fetch.Mode)
	}
	if c.Fetch.PromotionThreshold < 0 {
		return fmt.Errorf("fetch.promotion_threshold must be >= 0")
	}
	if c.Log.Level == "" {
		return fmt.Errorf("log.level must be set")
	}
	return nil
}
