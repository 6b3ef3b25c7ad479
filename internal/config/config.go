package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"countryexplorer/internal/eventbus"
)

// DefaultBaseURL is the public REST Countries endpoint
const DefaultBaseURL = "https://restcountries.com/v3.1"

// Config represents the application configuration
type Config struct {
	Version     int         `toml:"version"`
	API         APISettings `toml:"api"`
	UISettings  UISettings  `toml:"ui"`
	MetricsAddr string      `toml:"metrics_addr,omitempty"` // debug server, disabled when empty
	LogFile     string      `toml:"log_file,omitempty"`
}

// APISettings configures the remote country data source
type APISettings struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMS int    `toml:"timeout_ms"` // 0 disables the per-request timeout
}

// UISettings represents UI-related configuration
type UISettings struct {
	DebounceMS     int    `toml:"debounce_ms"`
	Region         string `toml:"region"`          // region applied at start, "" for all
	RememberRegion bool   `toml:"remember_region"` // persist the last region on quit
	Sort           string `toml:"sort"`
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}

// Debounce returns the search quiescence window
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.UISettings.DebounceMS) * time.Millisecond
}

// Validate reports configuration values the application cannot run with
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.TimeoutMS < 0 {
		return fmt.Errorf("api.timeout_ms must not be negative, got %d", c.API.TimeoutMS)
	}
	if c.UISettings.DebounceMS <= 0 {
		return fmt.Errorf("ui.debounce_ms must be positive, got %d", c.UISettings.DebounceMS)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "countryexplorer", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus; Save then announces ConfigChanged
func WithBus(svc ConfigService, bus eventbus.EventBus) ConfigService {
	if cs, ok := svc.(*configService); ok {
		cs.bus = bus
	}
	return svc
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigChangedEvent{Region: config.UISettings.Region})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			TimeoutMS: 10000,
		},
		UISettings: UISettings{
			DebounceMS: 300,
			Sort:       "api",
		},
		LogFile: "countryexplorer.log",
	}
}
