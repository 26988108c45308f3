// Package config loads the bridge configuration from file, environment and
// defaults via viper.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

// Config is the full application configuration.
type Config struct {
	Logger   LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Layout   topology.Layout `mapstructure:"layout" yaml:"layout"`
	Input    InputConfig     `mapstructure:"input" yaml:"input"`
	Scroll   ScrollConfig    `mapstructure:"scroll" yaml:"scroll"`
	Schedule ScheduleConfig  `mapstructure:"schedule" yaml:"schedule"`
	Cache    CacheConfig     `mapstructure:"cache" yaml:"cache"`
}

// LoggerConfig holds settings for the zap logger and its file sink.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// InputConfig tunes synthetic input pacing.
type InputConfig struct {
	PressDelay time.Duration `mapstructure:"press_delay" yaml:"press_delay"`
}

// ScrollConfig tunes the scroll-into-view loop.
type ScrollConfig struct {
	Delta       int `mapstructure:"delta" yaml:"delta"`
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`
}

// ScheduleConfig tunes the recording dialog interaction.
type ScheduleConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
	PollDelay   time.Duration `mapstructure:"poll_delay" yaml:"poll_delay"`
}

// CacheConfig locates the persisted hint store.
type CacheConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// DefaultConfigPath returns the config file location under the user config dir.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "captvty-bridge", "config.yaml")
}

// SetDefaults initializes default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 20)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	lay := topology.DefaultLayout()
	v.SetDefault("layout.channel_column_width", lay.ChannelColumnWidth)
	v.SetDefault("layout.mode_button_count", lay.ModeButtonCount)
	v.SetDefault("layout.mode_button_pane_depth", lay.ModeButtonPaneDepth)
	v.SetDefault("layout.button_index_hint", lay.ButtonIndexHint)
	v.SetDefault("layout.rattrapage_checkbox_climb", lay.RattrapageCheckboxClimb)
	v.SetDefault("layout.direct_button_climb", lay.DirectButtonClimb)
	v.SetDefault("layout.direct_pane_climb", lay.DirectPaneClimb)
	v.SetDefault("layout.rep_child_index", lay.RepChildIndex)
	v.SetDefault("layout.rep_sub_index", lay.RepSubIndex)
	v.SetDefault("layout.program_list_header_count", lay.ProgramListHeaderCount)

	v.SetDefault("input.press_delay", "30ms")

	v.SetDefault("scroll.delta", 120)
	v.SetDefault("scroll.max_attempts", 30)

	v.SetDefault("schedule.settle_delay", "100ms")
	v.SetDefault("schedule.poll_delay", "200ms")

	v.SetDefault("cache.path", "")
}

// New builds a Config from a viper instance, applying defaults first.
func New(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file at path (optional) into a fresh viper instance
// and builds the Config. Environment variables prefixed CAPTVTY_ override
// file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CAPTVTY")
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return New(v)
}

// Validate checks for sane values.
func (c *Config) Validate() error {
	if c.Layout.ChannelColumnWidth <= 0 {
		return fmt.Errorf("layout.channel_column_width must be a positive integer")
	}
	if c.Layout.ModeButtonCount <= 0 {
		return fmt.Errorf("layout.mode_button_count must be a positive integer")
	}
	if c.Scroll.Delta <= 0 {
		return fmt.Errorf("scroll.delta must be a positive integer")
	}
	if c.Scroll.MaxAttempts <= 0 {
		return fmt.Errorf("scroll.max_attempts must be a positive integer")
	}
	if c.Schedule.PollDelay <= 0 {
		return fmt.Errorf("schedule.poll_delay must be a positive duration")
	}
	return nil
}
