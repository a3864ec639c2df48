// Package config loads runtime configuration from the environment,
// optionally seeded from a .env file for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIToken       = "TICKTICK_API_TOKEN"
	EnvInboxProjectID = "TICKTICK_INBOX_PROJECT_ID"
	EnvBaseURL        = "TICKTICK_BASE_URL"
)

// Config holds the TickTick connection settings.
type Config struct {
	// APIToken is the personal access token for the TickTick Open API.
	APIToken string

	// InboxProjectID is the id of the user's inbox project. The API has
	// no way to discover it, so it must be configured explicitly. When
	// empty, inbox-dependent behavior (default capture target, inbox in
	// listings) is disabled.
	InboxProjectID string

	// BaseURL overrides the API endpoint. Empty means production.
	BaseURL string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	// godotenv never overwrites variables that are already set
	_ = godotenv.Load()

	cfg := &Config{
		APIToken:       os.Getenv(EnvAPIToken),
		InboxProjectID: os.Getenv(EnvInboxProjectID),
		BaseURL:        os.Getenv(EnvBaseURL),
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("%s is required; create a token at https://developer.ticktick.com", EnvAPIToken)
	}

	return cfg, nil
}
