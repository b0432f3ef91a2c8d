package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".skyedex"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .skyedex configuration file.
// Every field is optional; unset fields leave the defaults untouched.
type File struct {
	// APIURL overrides the PokeAPI base URL, e.g. for a self-hosted mirror.
	APIURL string `yaml:"api_url,omitempty"`

	// Timeout is a Go duration string such as "10s".
	Timeout string `yaml:"timeout,omitempty"`

	// Proxy is a proxy URL such as "socks5://127.0.0.1:9050".
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Cache holds response cache settings.
	Cache CacheFile `yaml:"cache,omitempty"`
}

// CacheFile holds the cache section of the configuration file.
type CacheFile struct {
	// Disabled turns the response cache off.
	Disabled bool `yaml:"disabled,omitempty"`

	// TTL is a Go duration string; "0s" keeps entries forever.
	TTL string `yaml:"ttl,omitempty"`

	// Dir overrides the cache directory.
	Dir string `yaml:"dir,omitempty"`
}

// Apply overlays the values set in the file onto cfg.
// Durations are parsed here so a malformed value names its key.
func (cf *File) Apply(cfg *Config) error {
	if cf.APIURL != "" {
		cfg.APIBaseURL = cf.APIURL
	}
	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return fmt.Errorf("config file: timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if cf.Proxy != "" {
		cfg.ProxyURL = cf.Proxy
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.Cache.Disabled {
		cfg.CacheEnabled = false
	}
	if cf.Cache.TTL != "" {
		d, err := time.ParseDuration(cf.Cache.TTL)
		if err != nil {
			return fmt.Errorf("config file: cache.ttl: %w", err)
		}
		cfg.CacheTTL = d
	}
	if cf.Cache.Dir != "" {
		cfg.CacheDir = expandHome(cf.Cache.Dir)
	}
	return nil
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers decide whether that is an error based on whether
// the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .skyedex in the current directory
// 3. Look for .skyedex in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
