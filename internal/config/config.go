package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const FileName = "mockdb.config.json"

var ErrAlreadyInitialized = errors.New("project already initialized")

type Config struct {
	Seed       int64          `json:"seed" mapstructure:"seed"` // 0 seeds from the clock
	Rows       int            `json:"rows" mapstructure:"rows"`
	Tables     map[string]int `json:"tables,omitempty" mapstructure:"tables"` // row count per table name
	OutputPath string         `json:"output_path" mapstructure:"output_path"`
	Format     string         `json:"format" mapstructure:"format"`
	PlanFile   string         `json:"plan_file,omitempty" mapstructure:"plan_file"`
	Batch      int            `json:"batch" mapstructure:"batch"`
	Database   Database       `json:"database" mapstructure:"database"`
	Log        Log            `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Log struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

var (
	supportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supportedFormats   = []string{"csv", "json", "sqlite"}
	supportedLevels    = []string{"debug", "info", "warn", "error"}
	supportedLogFormat = []string{"console", "json"}
)

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration collected by viper and fills in defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Rows == 0 {
		c.Rows = 100
	}
	if c.OutputPath == "" {
		c.OutputPath = "data_archive"
	}
	if c.Format == "" {
		c.Format = "csv"
	}
	if c.Batch == 0 {
		c.Batch = 500
	}
	if c.Database.Provider == "" {
		c.Database.Provider = "postgresql"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) EnsureDirectories() error {
	if c.OutputPath == "" || c.OutputPath == "." {
		return nil
	}
	if err := os.MkdirAll(c.OutputPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputPath, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if !slices.Contains(supportedProviders, c.Database.Provider) {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}
	if !slices.Contains(supportedFormats, c.Format) {
		return fmt.Errorf("unsupported format: %s. Supported formats: %v", c.Format, supportedFormats)
	}
	if !slices.Contains(supportedLevels, c.Log.Level) {
		return fmt.Errorf("unsupported log level: %s. Supported levels: %v", c.Log.Level, supportedLevels)
	}
	if !slices.Contains(supportedLogFormat, c.Log.Format) {
		return fmt.Errorf("unsupported log format: %s. Supported formats: %v", c.Log.Format, supportedLogFormat)
	}

	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}
	for name, rows := range c.Tables {
		if rows <= 0 {
			return fmt.Errorf("rows for table %q must be positive, got %d", name, rows)
		}
	}
	if c.Batch <= 0 {
		return fmt.Errorf("batch must be positive, got %d", c.Batch)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	return nil
}

// TableRows returns the row override for a table. Names match case-insensitively
// since viper lowercases map keys.
func (c *Config) TableRows(name string) (int, bool) {
	for key, n := range c.Tables {
		if strings.EqualFold(key, name) && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// RowsFor returns the configured row count for a table, falling back to Rows.
func (c *Config) RowsFor(name string) int {
	if n, ok := c.TableRows(name); ok {
		return n
	}
	return c.Rows
}

// WriteDefault creates a config file with default settings. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s exists", ErrAlreadyInitialized, path)
	}
	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
