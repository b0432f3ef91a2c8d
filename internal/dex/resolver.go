package dex

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/skyedex/internal/model"
)

// ErrProviderNotFound is the error a Provider returns when the requested
// record does not exist. Providers may wrap it.
var ErrProviderNotFound = errors.New("record not found")

// Provider is the name-keyed lookup service backing the engine.
// Names passed to a Provider are already lower-cased. Returned values must
// have every sub-reference resolved.
type Provider interface {
	FindPokemon(ctx context.Context, name string) (*model.Pokemon, error)
	FindType(ctx context.Context, name string) (*model.Type, error)
	FindNature(ctx context.Context, name string) (*model.Nature, error)
}

// Resolver looks up entities by name and maps provider failures to the
// engine's error kinds.
type Resolver struct {
	provider Provider
	logger   *slog.Logger
}

// NewResolver creates a Resolver on top of provider.
// If logger is nil, slog.Default() is used.
func NewResolver(provider Provider, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{provider: provider, logger: logger}
}

// Pokemon resolves a Pokemon by name, case-insensitively.
func (r *Resolver) Pokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	p, err := r.provider.FindPokemon(ctx, normalizeName(name))
	if err != nil {
		return nil, r.classify(model.KindPokemon, name, err, ErrPokemonNotFound)
	}
	return p, nil
}

// Type resolves a type by name, case-insensitively.
func (r *Resolver) Type(ctx context.Context, name string) (*model.Type, error) {
	t, err := r.provider.FindType(ctx, normalizeName(name))
	if err != nil {
		return nil, r.classify(model.KindType, name, err, ErrTypeNotFound)
	}
	return t, nil
}

// Nature resolves a nature by name, case-insensitively.
func (r *Resolver) Nature(ctx context.Context, name string) (*model.Nature, error) {
	n, err := r.provider.FindNature(ctx, normalizeName(name))
	if err != nil {
		return nil, r.classify(model.KindNature, name, err, ErrNatureNotFound)
	}
	return n, nil
}

// Matchup resolves the move type and the defending types of req and
// computes the combined multiplier.
//
// The move type is resolved first. A primary type that is absent or fails
// to resolve for any reason yields ErrMissingPrimaryType. An absent
// secondary contributes a factor of 1.
func (r *Resolver) Matchup(ctx context.Context, req model.TypeRequest) (*MatchupResult, error) {
	move, err := r.Type(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	if !req.HasPrimary() {
		return nil, ErrMissingPrimaryType
	}
	primary, err := r.Type(ctx, req.Primary)
	if err != nil {
		r.logger.Debug("primary type lookup failed", "name", req.Primary, "error", err)
		return nil, ErrMissingPrimaryType
	}

	var secondary *model.Type
	if req.HasSecondary() {
		secondary, err = r.Type(ctx, req.Secondary)
		if err != nil {
			return nil, err
		}
	}

	return Matchup(req.Name, move, primary, secondary), nil
}

// classify converts a provider error into a not-found or dependency error.
func (r *Resolver) classify(kind model.Kind, name string, err, notFound error) error {
	if errors.Is(err, ErrProviderNotFound) {
		r.logger.Debug("lookup miss", "kind", kind, "name", name)
		return notFound
	}
	r.logger.Debug("lookup failed", "kind", kind, "name", name, "error", err)
	return &DependencyError{Cause: err}
}

// normalizeName lower-cases and trims a user-supplied name.
func normalizeName(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}
