package bootstrap

import "github.com/MKhiriev/go-eightball/models"

// AppContext is built once by the [Sequencer] after the configuration and
// profile have been fetched. It is never mutated afterwards; accessors hand
// out copies.
type AppContext struct {
	config     models.RemoteConfig
	user       models.UserProfile
	apiBaseURL string
}

// NewAppContext copies config and user into a fresh context.
func NewAppContext(config models.RemoteConfig, user models.UserProfile, apiBaseURL string) *AppContext {
	return &AppContext{
		config:     models.RemoteConfig(models.Document(config).Clone()),
		user:       models.UserProfile(models.Document(user).Clone()),
		apiBaseURL: apiBaseURL,
	}
}

// Config returns a copy of the remote configuration.
func (c *AppContext) Config() models.RemoteConfig {
	return models.RemoteConfig(models.Document(c.config).Clone())
}

// User returns a copy of the current user's profile.
func (c *AppContext) User() models.UserProfile {
	return models.UserProfile(models.Document(c.user).Clone())
}

// APIBaseURL is the backend root the configuration was fetched from.
func (c *AppContext) APIBaseURL() string {
	return c.apiBaseURL
}
