// ABOUTME: Wellness configuration management with backend selection.
// ABOUTME: Loads settings with viper and builds storage, import options and fetchers.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/charm"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Backends lists the supported storage backends.
var Backends = []string{"sqlite", "badger", "charm", "memory"}

// Config stores wellness tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger",
	// "charm" or "memory".
	Backend string `json:"backend,omitempty" mapstructure:"backend"`

	// DataDir is the root directory for local backends.
	// Supports ~ expansion. Defaults to ~/.local/share/wellness.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	LogLevel  string `json:"log_level,omitempty" mapstructure:"log_level"`
	LogFormat string `json:"log_format,omitempty" mapstructure:"log_format"`

	// SheetURL is the default import source when none is given.
	SheetURL  string `json:"sheet_url,omitempty" mapstructure:"sheet_url"`
	SheetName string `json:"sheet_name,omitempty" mapstructure:"sheet_name"`

	DateScanRows   int    `json:"date_scan_rows,omitempty" mapstructure:"date_scan_rows"`
	HeaderScanRows int    `json:"header_scan_rows,omitempty" mapstructure:"header_scan_rows"`
	MaxNameLength  int    `json:"max_name_length,omitempty" mapstructure:"max_name_length"`
	VocabularyFile string `json:"vocabulary_file,omitempty" mapstructure:"vocabulary_file"`

	FetchTimeoutSeconds int `json:"fetch_timeout_seconds,omitempty" mapstructure:"fetch_timeout_seconds"`
	FetchRetries        int `json:"fetch_retries,omitempty" mapstructure:"fetch_retries"`
}

var defaults = map[string]any{
	"backend":               "sqlite",
	"data_dir":              "",
	"log_level":             "warn",
	"log_format":            "console",
	"sheet_url":             "",
	"sheet_name":            sheet.DefaultSheetName,
	"date_scan_rows":        sheet.DefaultDateScanRows,
	"header_scan_rows":      sheet.DefaultHeaderScanRows,
	"max_name_length":       sheet.DefaultMaxNameLength,
	"vocabulary_file":       "",
	"fetch_timeout_seconds": 30,
	"fetch_retries":         2,
}

// Keys returns the configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend opens a named backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (storage.Repository, error) {
	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "wellness.db"))
	case "badger":
		kv, err := storage.OpenBadger(filepath.Join(dataDir, "badger"))
		if err != nil {
			return nil, err
		}
		return storage.NewKVStore(kv), nil
	case "charm":
		client, err := charm.InitClient()
		if err != nil {
			return nil, fmt.Errorf("init charm: %w", err)
		}
		return storage.NewKVStore(client), nil
	case "memory":
		return storage.NewKVStore(storage.NewMemoryKV()), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// ImportOptions builds sheet import options from the configuration.
func (c *Config) ImportOptions(logger *zap.Logger) (sheet.Options, error) {
	opts := sheet.Options{
		DateScanRows:   c.DateScanRows,
		HeaderScanRows: c.HeaderScanRows,
		MaxNameLength:  c.MaxNameLength,
		Logger:         logger,
	}
	if c.VocabularyFile != "" {
		vocab, err := sheet.LoadVocabulary(ExpandPath(c.VocabularyFile))
		if err != nil {
			return opts, fmt.Errorf("load vocabulary: %w", err)
		}
		opts.Vocabulary = vocab
	}
	return opts, nil
}

// Fetcher builds a Google Sheets fetcher from the configuration.
func (c *Config) Fetcher(logger *zap.Logger) *sheet.Fetcher {
	return sheet.NewFetcher(sheet.FetchConfig{
		SheetName: c.SheetName,
		Timeout:   time.Duration(c.FetchTimeoutSeconds) * time.Second,
		Retries:   c.FetchRetries,
		Logger:    logger,
	})
}

// GetConfigDir returns the directory holding config.json.
func GetConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wellness")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.json")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AddConfigPath(GetConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetEnvPrefix("WELLNESS")
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

// Load reads config from disk, applying defaults and WELLNESS_* environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Set assigns a configuration key from its string form.
func (c *Config) Set(key, value string) error {
	atoi := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		return n, nil
	}

	var err error
	switch key {
	case "backend":
		if !isBackend(value) {
			return fmt.Errorf("unknown backend: %q (want one of %s)", value, strings.Join(Backends, ", "))
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "log_level":
		c.LogLevel = value
	case "log_format":
		if value != "console" && value != "json" {
			return fmt.Errorf("log_format must be console or json, got %q", value)
		}
		c.LogFormat = value
	case "sheet_url":
		c.SheetURL = value
	case "sheet_name":
		c.SheetName = value
	case "vocabulary_file":
		c.VocabularyFile = value
	case "date_scan_rows":
		c.DateScanRows, err = atoi()
	case "header_scan_rows":
		c.HeaderScanRows, err = atoi()
	case "max_name_length":
		c.MaxNameLength, err = atoi()
	case "fetch_timeout_seconds":
		c.FetchTimeoutSeconds, err = atoi()
	case "fetch_retries":
		c.FetchRetries, err = atoi()
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return err
}

func isBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
