// Package config builds the runtime configuration for the indexer.
//
// Everything is resolved once at startup into an explicit Config value that
// is passed down to the service; nothing reads the environment after Load.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/discord-account-support-corp/answers-indexer/internal/core/domain"
)

// Compiled-in defaults. Organization and index name can be overridden with
// a TOML file (see ApplyFile); the secrets only ever come from the
// environment.
const (
	// DefaultOrganization is the GitHub organization scanned by default.
	DefaultOrganization = "Discord-Account-Support-Corp"

	// DefaultIndexName is the Meilisearch index receiving the documents.
	DefaultIndexName = "verified_answers"

	// DefaultMeiliURL is used when MEILI_URL is unset.
	DefaultMeiliURL = "http://localhost:7700"

	// DefaultMeiliKey is used when MEILI_KEY is unset.
	DefaultMeiliKey = "masterKey"
)

// Config carries everything the pipeline needs for one run.
type Config struct {
	// Organization is the GitHub organization whose repositories are
	// scanned.
	Organization string

	// GitHubToken authenticates requests to the GitHub API. Mandatory.
	GitHubToken string

	// MeiliURL addresses the Meilisearch instance.
	MeiliURL string

	// MeiliKey is the Meilisearch API key.
	MeiliKey string

	// IndexName is the Meilisearch index the documents are added to.
	IndexName string
}

// Load builds the configuration from the environment. GITHUB_TOKEN is
// mandatory and its absence is a fatal startup error, raised before any
// network activity. The Meilisearch settings fall back to local defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Organization: DefaultOrganization,
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		MeiliURL:     envOr("MEILI_URL", DefaultMeiliURL),
		MeiliKey:     envOr("MEILI_KEY", DefaultMeiliKey),
		IndexName:    DefaultIndexName,
	}

	if cfg.GitHubToken == "" {
		return nil, domain.ErrMissingToken
	}
	return cfg, nil
}

// fileOverlay holds the settings a config file may override. Secrets are
// deliberately absent.
type fileOverlay struct {
	Organization string `toml:"organization"`
	MeiliURL     string `toml:"meili_url"`
	IndexName    string `toml:"index_name"`
}

// ApplyFile overlays settings from a TOML file onto the loaded
// configuration. Only fields present in the file replace the current
// values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overlay fileOverlay
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if overlay.Organization != "" {
		c.Organization = overlay.Organization
	}
	if overlay.MeiliURL != "" {
		c.MeiliURL = overlay.MeiliURL
	}
	if overlay.IndexName != "" {
		c.IndexName = overlay.IndexName
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
