package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// Config holds the tool's settings, loaded from a TOML file.
type Config struct {
	// OutputDir receives exported snapshots and CSV files.
	OutputDir string `toml:"output_dir"`

	// BaseURL overrides the catalog service endpoint.
	BaseURL string `toml:"base_url,omitempty"`

	// Timeout bounds every HTTP call to the catalog service.
	Timeout Duration `toml:"timeout"`

	// MaxDatasets and MaxIDBanksPerDataset are the default search limits.
	MaxDatasets          int `toml:"max_datasets"`
	MaxIDBanksPerDataset int `toml:"max_idbanks_per_dataset"`

	// FoldDiacritics strips accents when matching keywords.
	FoldDiacritics bool `toml:"fold_diacritics"`

	// CompressSnapshots gzips exported JSON snapshots.
	CompressSnapshots bool `toml:"compress_snapshots"`

	// History enables the SQLite export-run log in the output directory.
	History bool `toml:"history"`

	// Auth holds optional OAuth2 client credentials for api.insee.fr.
	Auth *AuthConfig `toml:"auth,omitempty"`
}

// AuthConfig configures OAuth2 client-credentials authentication.
type AuthConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	TokenURL     string `toml:"token_url,omitempty"`
}

// Duration is a time.Duration with TOML text marshaling ("30s", "2m").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// GetDefaultConfig returns the built-in defaults.
func GetDefaultConfig() *Config {
	return &Config{
		OutputDir:            "insee_results",
		Timeout:              Duration{30 * time.Second},
		MaxDatasets:          20,
		MaxIDBanksPerDataset: 100,
		History:              true,
	}
}

// LoadConfig reads the config file, filling unset fields with defaults. A
// missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := GetDefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.OutputDir == "" {
		config.OutputDir = "insee_results"
	}
	if config.Timeout.Duration == 0 {
		config.Timeout = Duration{30 * time.Second}
	}
	if config.MaxDatasets <= 0 {
		config.MaxDatasets = 20
	}
	if config.MaxIDBanksPerDataset <= 0 {
		config.MaxIDBanksPerDataset = 100
	}

	return config, nil
}

// SaveConfig writes the config as TOML, creating parent directories.
func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveTemplateConfig writes the commented sample config, creating parent
// directories.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0644)
}

// GetConfigDir returns the configuration directory, honoring XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "inseesearch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return dir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
