// Package model defines the data structures shared by skyedex.
//
// This package contains the following main types:
//   - Pokemon, Type, Nature: read-only views of PokeAPI records with every
//     sub-reference already resolved to a name
//   - PokemonRequest, TypeRequest, NatureRequest: the three lookup requests
//     the CLI can build from its arguments
//   - Effectiveness: the closed set of damage multipliers
//
// The models carry JSON tags so the report package can emit them directly.
package model
