// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the development backend configuration view.
type ServerConfig struct {
	// Address is the listen address.
	Address string
	// FixturesPath is the optional fixtures file.
	FixturesPath string
	// RequireSession enables the session cookie check on the profile route.
	RequireSession bool
	// Version is reported on /api/version.
	Version string
}

// GetServerConfig builds and validates the development server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Address:        cfg.Server.Address,
		FixturesPath:   cfg.Server.FixturesPath,
		RequireSession: cfg.Server.RequireSession,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
