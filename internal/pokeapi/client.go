package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nao1215/skyedex/internal/model"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// MaxBodySize caps how much of a response body is read. The largest
	// pokemon records are a few hundred kilobytes.
	MaxBodySize = 5 * 1024 * 1024
)

// Cache stores raw response bodies keyed by resource kind and name.
type Cache interface {
	// Get returns the body stored for kind/name if it is younger than maxAge.
	Get(ctx context.Context, kind, name string, maxAge time.Duration) ([]byte, bool, error)
	// Put stores body for kind/name, replacing any previous entry.
	Put(ctx context.Context, kind, name string, body []byte) error
}

// Client looks up PokeAPI records by name.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Trailing slashes are removed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithCache enables response caching. Entries older than ttl are refetched.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client. Without options it talks to DefaultBaseURL
// using http.DefaultClient and no cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindPokemon fetches a pokemon by name.
func (c *Client) FindPokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	return find(ctx, c, model.KindPokemon, name, (*pokemonResponse).toModel)
}

// FindType fetches a type by name.
func (c *Client) FindType(ctx context.Context, name string) (*model.Type, error) {
	return find(ctx, c, model.KindType, name, (*typeResponse).toModel)
}

// FindNature fetches a nature by name.
func (c *Client) FindNature(ctx context.Context, name string) (*model.Nature, error) {
	return find(ctx, c, model.KindNature, name, (*natureResponse).toModel)
}

// find loads kind/name from the cache or the API, decodes it into R and
// converts it with toModel. A fetched body is cached only once it has
// decoded and converted cleanly.
func find[R, M any](ctx context.Context, c *Client, kind model.Kind, name string, toModel func(*R) (*M, error)) (*M, error) {
	key := resourceKey(name)
	if key == "" {
		return nil, fmt.Errorf("%s with empty name: %w", kind, ErrNotFound)
	}

	body, cached, err := c.load(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	var resp R
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode %s %s: %v", ErrMalformedResponse, kind, key, err)
	}
	m, err := toModel(&resp)
	if err != nil {
		return nil, err
	}

	if !cached {
		c.store(ctx, kind, key, body)
	}
	return m, nil
}

// load returns the raw body for kind/key and whether it came from the cache.
// Cache read failures are logged and otherwise ignored.
func (c *Client) load(ctx context.Context, kind model.Kind, key string) ([]byte, bool, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, kind.String(), key, c.cacheTTL)
		switch {
		case err != nil:
			c.logger.Warn("cache read failed", "kind", kind, "name", key, "error", err)
		case ok:
			c.logger.Debug("cache hit", "kind", kind, "name", key)
			return body, true, nil
		default:
			c.logger.Debug("cache miss", "kind", kind, "name", key)
		}
	}

	body, err := c.get(ctx, c.resourceURL(kind, key))
	if err != nil {
		return nil, false, err
	}
	return body, false, nil
}

// store writes body to the cache, logging any failure.
func (c *Client) store(ctx context.Context, kind model.Kind, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Put(ctx, kind.String(), key, body); err != nil {
		c.logger.Warn("cache write failed", "kind", kind, "name", key, "error", err)
	}
}

// get performs a GET request and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		"url", rawURL,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode == http.StatusNotFound {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, fmt.Errorf("%s: %w", rawURL, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("pokeapi: read body: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, ErrResponseTooLarge
	}
	return body, nil
}

// resourceURL builds {base}/{kind}/{name}.
func (c *Client) resourceURL(kind model.Kind, name string) string {
	return c.baseURL + "/" + kind.String() + "/" + url.PathEscape(name)
}

// resourceKey turns a lookup name into the PokeAPI path key.
// PokeAPI names are hyphenated, so runs of spaces become one hyphen.
func resourceKey(name string) string {
	return strings.Join(strings.Fields(name), "-")
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
