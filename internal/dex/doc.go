// Package dex is the lookup and formatting engine of skyedex.
//
// A Resolver turns user-supplied names into resolved model values through a
// Provider and collapses every provider failure into one of a few
// user-facing errors:
//   - ErrPokemonNotFound, ErrTypeNotFound, ErrNatureNotFound for unknown names
//   - ErrMissingPrimaryType when a matchup has no usable primary type
//   - DependencyError for anything else the provider reports
//
// The pure parts of the engine live here as well: Effectiveness scans the
// damage relations of a defending type, Matchup combines two defending
// types, and TypeSections selects and labels the relation categories that
// the report package prints.
package dex
