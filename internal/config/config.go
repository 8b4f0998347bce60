// Package config provides centralized configuration for fibstudy
// runtime values.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/tmkelleher/fibstudy/internal/store"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// Planner configuration
	Planner PlannerConfig

	// Dashboard configuration
	Dashboard DashboardConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database file location.
	// Default: $XDG_DATA_HOME/fibstudy/db.json
	Path string
}

// PlannerConfig holds planning defaults applied by the CLI.
type PlannerConfig struct {
	// DefaultWeight is the weight offered for new subjects.
	// Default: 2.5
	DefaultWeight float64

	// DefaultBias is the bias offered for new subjects.
	// Default: 0
	DefaultBias int
}

// DashboardConfig holds dashboard-related configuration.
type DashboardConfig struct {
	// RefreshInterval is how often the dashboard recomputes due dates.
	// Default: 30s
	RefreshInterval time.Duration

	// MaxVisibleTopics caps the topic list height.
	// Default: 15
	MaxVisibleTopics int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			Path: store.DefaultPath(),
		},
		Planner: PlannerConfig{
			DefaultWeight: 2.5,
			DefaultBias:   0,
		},
		Dashboard: DashboardConfig{
			RefreshInterval:  30 * time.Second,
			MaxVisibleTopics: 15,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment
// variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("FIBSTUDY_DATA_FILE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("FIBSTUDY_DEFAULT_WEIGHT"); v != "" {
		if w, err := strconv.ParseFloat(v, 64); err == nil {
			c.Planner.DefaultWeight = w
		}
	}
	if v := os.Getenv("FIBSTUDY_DEFAULT_BIAS"); v != "" {
		if b, err := strconv.Atoi(v); err == nil {
			c.Planner.DefaultBias = b
		}
	}
	if v := os.Getenv("FIBSTUDY_DASHBOARD_REFRESH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Dashboard.RefreshInterval = d
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// Useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults. Primarily for tests.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
