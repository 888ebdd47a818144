// Package file provides TOML-based configuration persistence.
//
// Configuration lives at ~/.insyte/config.toml. Missing files and missing
// keys fall back to defaults, so a fresh install works with no config at
// all. API keys are never stored in the file; the config names an
// environment variable to read them from instead.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// DefaultAPIKeyEnv is the environment variable consulted for cloud
// provider API keys when the config does not name one.
const DefaultAPIKeyEnv = "OPENAI_API_KEY"

// Config mirrors the TOML config file layout.
type Config struct {
	Search    SearchConfig    `toml:"search"`
	Embedding EmbeddingConfig `toml:"embedding"`
}

// SearchConfig holds the [search] section.
type SearchConfig struct {
	// MaxChunkSize is the passage size cap in characters.
	MaxChunkSize int `toml:"max_chunk_size"`

	// TopK caps how many results a search returns.
	TopK int `toml:"top_k"`

	// TopNPrimary is how many results land in the primary group.
	TopNPrimary int `toml:"top_n_primary"`

	// MinRelevance is the percentage threshold results must meet.
	MinRelevance int `toml:"min_relevance"`
}

// EmbeddingConfig holds the [embedding] section.
type EmbeddingConfig struct {
	// Provider selects the embedding backend: "ollama" or "openai".
	Provider string `toml:"provider"`

	// Model is the embedding model name.
	Model string `toml:"model"`

	// BaseURL overrides the provider's API endpoint.
	BaseURL string `toml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `toml:"api_key_env"`

	// Dimensions overrides the model's default vector size.
	Dimensions int `toml:"dimensions"`
}

// Default returns a config with all defaults applied.
func Default() *Config {
	settings := domain.DefaultAppSettings()
	return &Config{
		Search: SearchConfig{
			MaxChunkSize: settings.Search.MaxChunkSize,
			TopK:         settings.Search.TopK,
			TopNPrimary:  settings.Search.TopNPrimary,
			MinRelevance: settings.Search.MinRelevance,
		},
		Embedding: EmbeddingConfig{
			Provider:  settings.Embedding.Provider.String(),
			Model:     settings.Embedding.Model,
			APIKeyEnv: DefaultAPIKeyEnv,
		},
	}
}

// Dir returns the config directory, defaulting to ~/.insyte.
func Dir(configDir string) (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".insyte"), nil
}

// Path returns the config file path within configDir.
func Path(configDir string) (string, error) {
	dir, err := Dir(configDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file from configDir, applying defaults for any
// missing keys. A missing file yields pure defaults.
func Load(configDir string) (*Config, error) {
	path, err := Path(configDir)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Zero values from the file fall back to defaults
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the config to configDir with restricted permissions.
func (c *Config) Save(configDir string) error {
	dir, err := Dir(configDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// applyDefaults fills zero values with defaults.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Search.MaxChunkSize <= 0 {
		c.Search.MaxChunkSize = def.Search.MaxChunkSize
	}
	if c.Search.TopK <= 0 {
		c.Search.TopK = def.Search.TopK
	}
	if c.Search.TopNPrimary <= 0 {
		c.Search.TopNPrimary = def.Search.TopNPrimary
	}
	if c.Search.MinRelevance < 0 {
		c.Search.MinRelevance = def.Search.MinRelevance
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = def.Embedding.Provider
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = domain.DefaultEmbeddingModels()[domain.AIProvider(c.Embedding.Provider)]
	}
	if c.Embedding.APIKeyEnv == "" {
		c.Embedding.APIKeyEnv = def.Embedding.APIKeyEnv
	}
}

// Settings converts the config into domain settings, resolving the API
// key from the configured environment variable.
func (c *Config) Settings() domain.AppSettings {
	return domain.AppSettings{
		Search: domain.SearchSettings{
			MaxChunkSize: c.Search.MaxChunkSize,
			TopK:         c.Search.TopK,
			TopNPrimary:  c.Search.TopNPrimary,
			MinRelevance: c.Search.MinRelevance,
		},
		Embedding: domain.EmbeddingSettings{
			Provider:   domain.AIProvider(c.Embedding.Provider),
			Model:      c.Embedding.Model,
			BaseURL:    c.Embedding.BaseURL,
			APIKey:     os.Getenv(c.Embedding.APIKeyEnv),
			Dimensions: c.Embedding.Dimensions,
		},
	}
}
