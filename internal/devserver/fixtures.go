// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-eightball/models"
)

// Fixtures is the seed data of a [Backend]. Missing sections of a fixtures
// file fall back to [DefaultFixtures].
type Fixtures struct {
	Config    models.RemoteConfig `json:"config"`
	Profile   models.UserProfile  `json:"profile"`
	Schedules []models.Schedule   `json:"schedules"`
}

// DefaultFixtures returns the data served when no fixtures file is given.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Config:  models.RemoteConfig{"theme": "dark"},
		Profile: models.UserProfile{"id": 7, "name": "Demo User"},
		Schedules: []models.Schedule{
			{"id": "morning", "name": "Morning oracle", "cron": "0 8 * * *", "enabled": true},
			{"id": "friday", "name": "Friday verdict", "cron": "0 17 * * 5", "enabled": false},
		},
	}
}

// LoadFixtures reads fixtures from a JSON file. An empty path yields
// [DefaultFixtures].
func LoadFixtures(path string) (Fixtures, error) {
	fixtures := DefaultFixtures()
	if path == "" {
		return fixtures, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}

	var loaded Fixtures
	if err = json.Unmarshal(data, &loaded); err != nil {
		return Fixtures{}, fmt.Errorf("%w: %w", ErrInvalidFixtures, err)
	}

	if loaded.Config != nil {
		fixtures.Config = loaded.Config
	}
	if loaded.Profile != nil {
		fixtures.Profile = loaded.Profile
	}
	if loaded.Schedules != nil {
		fixtures.Schedules = loaded.Schedules
	}

	for i, s := range fixtures.Schedules {
		if s.ID() == "" {
			return Fixtures{}, fmt.Errorf("%w: schedule #%d has no id", ErrInvalidFixtures, i)
		}
	}

	return fixtures, nil
}
