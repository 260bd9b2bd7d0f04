// Package config resolves marklite settings with Viper: built-in
// defaults, then an optional config file, then MARKLITE_* environment
// variables.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/avelorn/marklite/internal/present"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated in place.
func Load(ctx context.Context, v *viper.Viper) error {
	// If SetConfigFile was provided upstream it takes precedence;
	// these search paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "marklite"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "marklite"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MARKLITE_* (highest among these sources)
	v.SetEnvPrefix("marklite")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "marklite", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. Single source of truth for defaults and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "render.mode", Default: "ansi", Comment: "Default output mode: ansi|html|json|plain|tui"},
		{Key: "render.variant", Default: "default", Comment: "Display variant: default (full document) or chat (compact)"},
		{Key: "render.width", Default: 0, Comment: "Wrap width for terminal output; 0 uses the terminal width"},
		{Key: "render.math", Default: "literal", Comment: "Math engine: literal (show TeX source) or deferred (MathJax delimiters, HTML only)"},

		{Key: "pager.enabled", Default: true, Comment: "Page terminal output through $PAGER when stdout is a tty"},
		{Key: "pager.command", Default: "", Comment: "Pager command override; empty falls back to $PAGER then less"},
	}
}

// CheckConfigValidity validates the merged configuration and returns a
// combined error listing every problem found.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if _, ok := present.ParseMode(v.GetString("render.mode")); !ok {
		problems = append(problems, fmt.Sprintf("render.mode %q is not one of ansi|html|json|plain|tui", v.GetString("render.mode")))
	}
	if _, ok := present.ParseVariant(v.GetString("render.variant")); !ok {
		problems = append(problems, fmt.Sprintf("render.variant %q is not one of default|chat", v.GetString("render.variant")))
	}
	if v.GetInt("render.width") < 0 {
		problems = append(problems, "render.width must not be negative")
	}
	switch v.GetString("render.math") {
	case "literal", "deferred":
	default:
		problems = append(problems, fmt.Sprintf("render.math %q is not one of literal|deferred", v.GetString("render.math")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
