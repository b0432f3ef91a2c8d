package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "skyedex"

	// DefaultAPIBaseURL is the public PokeAPI v2 endpoint.
	DefaultAPIBaseURL = "https://pokeapi.co/api/v2"

	// DefaultTimeout bounds each HTTP request to PokeAPI.
	// A lookup issues at most three requests, so 30 seconds each is generous.
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL is how long a cached response is served before it is
	// fetched again. PokeAPI data changes only with new game releases.
	DefaultCacheTTL = 7 * 24 * time.Hour

	// DefaultUserAgent identifies skyedex in HTTP requests.
	DefaultUserAgent = "skyedex (+https://github.com/nao1215/skyedex)"
)

// OutputFormat selects how lookup results are rendered.
type OutputFormat int

const (
	// OutputText is the plain text format printed by default.
	OutputText OutputFormat = iota
	// OutputJSON renders results as indented JSON.
	OutputJSON
	// OutputMarkdown renders results as GitHub Flavored Markdown.
	OutputMarkdown
)

// String returns the format name.
func (f OutputFormat) String() string {
	switch f {
	case OutputJSON:
		return "json"
	case OutputMarkdown:
		return "markdown"
	default:
		return "text"
	}
}

// Config holds all configuration options for skyedex.
// It is populated from defaults, the configuration file and CLI flags,
// in that order, and passed to the commands explicitly.
type Config struct {
	// APIBaseURL is the PokeAPI base URL, without a trailing slash.
	APIBaseURL string

	// Timeout is the timeout for each HTTP request.
	Timeout time.Duration

	// ProxyURL routes API traffic through a proxy.
	// Supported schemes are http, https, socks5 and socks5h.
	// Empty falls back to the HTTP_PROXY family of environment variables.
	ProxyURL string

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// CacheEnabled turns the SQLite response cache on or off.
	CacheEnabled bool

	// CacheTTL is the maximum age of a cached response. Zero never expires.
	CacheTTL time.Duration

	// CacheDir is the directory holding the cache database.
	// Defaults to the XDG cache directory (~/.cache/skyedex on Linux).
	CacheDir string

	// Verbose enables debug logging on stderr.
	Verbose bool

	// LogJSON writes logs as JSON lines instead of text.
	LogJSON bool

	// JSONOutput selects JSON output. Mutually exclusive with MarkdownOutput.
	JSONOutput bool

	// MarkdownOutput selects Markdown output. Mutually exclusive with JSONOutput.
	MarkdownOutput bool

	// ConfigFilePath is the path of the configuration file that was loaded,
	// or the explicit path requested with --config.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		APIBaseURL:   DefaultAPIBaseURL,
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		CacheEnabled: true,
		CacheTTL:     DefaultCacheTTL,
		CacheDir:     XDGCacheDir(),
	}
}

// OutputFormat returns the output format selected by the flags.
func (c *Config) OutputFormat() OutputFormat {
	switch {
	case c.JSONOutput:
		return OutputJSON
	case c.MarkdownOutput:
		return OutputMarkdown
	default:
		return OutputText
	}
}

// XDGConfigDir returns the XDG config directory for skyedex.
// On Linux: ~/.config/skyedex
// On macOS: ~/Library/Application Support/skyedex
// On Windows: %APPDATA%\skyedex
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for skyedex.
// On Linux: ~/.cache/skyedex
// On macOS: ~/Library/Caches/skyedex
// On Windows: %LOCALAPPDATA%\cache\skyedex
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONOutput && c.MarkdownOutput {
		return ErrConflictingOutputFormats
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIURL
	}

	if c.CacheTTL < 0 {
		return ErrInvalidCacheTTL
	}

	if c.ProxyURL != "" {
		p, err := url.Parse(c.ProxyURL)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProxyURL, err)
		}
		if p.Host == "" {
			return fmt.Errorf("%w: missing host", ErrInvalidProxyURL)
		}
	}

	return nil
}

// UserAgentFor returns the default User-Agent for a given build version.
func UserAgentFor(version string) string {
	if version == "" {
		return DefaultUserAgent
	}
	return fmt.Sprintf("skyedex/%s (+https://github.com/nao1215/skyedex)", version)
}
