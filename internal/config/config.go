// Package config provides configuration management for Pomo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Pomo application.
type Config struct {
	Pomodoro      PomodoroConfig     `mapstructure:"pomodoro"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Git           GitConfig          `mapstructure:"git"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// PomodoroConfig holds the default interval settings. CLI flags override
// these per run.
type PomodoroConfig struct {
	FocusMinutes int `mapstructure:"focus_minutes"`
	BreakMinutes int `mapstructure:"break_minutes"`
	MaxIntervals int `mapstructure:"max_intervals"`
}

// NotificationConfig holds interval-end signaling settings.
type NotificationConfig struct {
	Sound   bool `mapstructure:"sound"`
	Desktop bool `mapstructure:"desktop"`
}

// GitConfig holds git context settings.
type GitConfig struct {
	ShowBranch bool `mapstructure:"show_branch"`
}

// ThemeConfig holds status-line color settings.
type ThemeConfig struct {
	ColorFocus  string `mapstructure:"color_focus"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorPrompt string `mapstructure:"color_prompt"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFocus:  "#7C6FE0",
		ColorBreak:  "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorPrompt: "#95A5A6",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pomodoro: PomodoroConfig{
			FocusMinutes: 25,
			BreakMinutes: 4,
			MaxIntervals: 4,
		},
		Notifications: NotificationConfig{
			Sound:   true,
			Desktop: false,
		},
		Git: GitConfig{
			ShowBranch: true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("pomodoro.focus_minutes", cfg.Pomodoro.FocusMinutes)
	viper.Set("pomodoro.break_minutes", cfg.Pomodoro.BreakMinutes)
	viper.Set("pomodoro.max_intervals", cfg.Pomodoro.MaxIntervals)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("notifications.desktop", cfg.Notifications.Desktop)
	viper.Set("git.show_branch", cfg.Git.ShowBranch)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_prompt", cfg.Theme.ColorPrompt)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomo", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("pomodoro.focus_minutes", 25)
	viper.SetDefault("pomodoro.break_minutes", 4)
	viper.SetDefault("pomodoro.max_intervals", 4)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("notifications.desktop", false)
	viper.SetDefault("git.show_branch", true)

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_focus", defaults.ColorFocus)
	viper.SetDefault("theme.color_break", defaults.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_prompt", defaults.ColorPrompt)
}
