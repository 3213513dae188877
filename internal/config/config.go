// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, an optional
// JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the settings of the outbound HTTP client talking to the
	// backend API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local schedule cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// UI holds terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// Server holds the development backend settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by the development server on /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the outbound HTTP client settings.
type Adapter struct {
	// BaseURL is the root address of the backend API, e.g.
	// "https://eightball.example.edu". A missing scheme defaults to http.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single request. Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionCookie is an optional "name=value" cookie seeded into the
	// client's cookie jar before the first request.
	// Env: ADAPTER_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the SQLite schedule cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite schedule cache.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the schedule list is re-fetched once the
	// application is ready.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// UI holds terminal UI settings.
type UI struct {
	// PrefsPath is the TOML preferences file. Empty uses the default path.
	// Env: UI_PREFS_PATH
	PrefsPath string `env:"PREFS_PATH"`
}

// Server holds the development backend settings.
type Server struct {
	// Address is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// FixturesPath is an optional JSON file with config, profile and
	// schedule fixtures.
	// Env: SERVER_FIXTURES
	FixturesPath string `env:"FIXTURES"`

	// RequireSession makes /api/user/profile answer 401 unless the session
	// cookie handed out by /api/config is presented.
	// Env: SERVER_REQUIRE_SESSION
	RequireSession bool `env:"REQUIRE_SESSION"`
}

// defaults is the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Version: "dev"},
		Adapter: Adapter{BaseURL: "http://localhost:8080"},
		Storage: Storage{DB: DB{DSN: "eightball.db"}},
		Workers: Workers{RefreshInterval: time.Minute},
		Server:  Server{Address: "localhost:8080"},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
