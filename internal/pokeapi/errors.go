package pokeapi

import (
	"errors"
	"fmt"

	"github.com/nao1215/skyedex/internal/dex"
)

var (
	// ErrNotFound is returned when PokeAPI has no record with the requested
	// name. It matches dex.ErrProviderNotFound with errors.Is.
	ErrNotFound = fmt.Errorf("pokeapi: %w", dex.ErrProviderNotFound)

	// ErrMalformedResponse is returned when a response body cannot be decoded
	// or violates the shape the engine relies on.
	ErrMalformedResponse = errors.New("pokeapi: malformed response")

	// ErrResponseTooLarge is returned when a response body exceeds MaxBodySize.
	ErrResponseTooLarge = errors.New("pokeapi: response body too large")

	// ErrUnsupportedProxy is returned by NewHTTPClient for proxy URLs whose
	// scheme is not http, https, socks5 or socks5h.
	ErrUnsupportedProxy = errors.New("pokeapi: unsupported proxy scheme")
)

// StatusError reports an unexpected HTTP status from PokeAPI.
type StatusError struct {
	StatusCode int
	URL        string
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi: unexpected status %d for %s", e.StatusCode, e.URL)
}
