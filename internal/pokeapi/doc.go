// Package pokeapi is the data provider of skyedex: a small client for the
// PokeAPI REST service (https://pokeapi.co).
//
// The Client fetches pokemon, type and nature records by name and converts
// them into model values with every named reference already resolved, so
// rendering never has to go back to the network. It implements
// dex.Provider.
//
// Responses can be stored in a Cache (see package cache) to avoid hitting
// the API for records that never change between game releases.
//
// # Usage
//
//	httpClient, err := pokeapi.NewHTTPClient(pokeapi.TransportOptions{Timeout: 30 * time.Second})
//	client := pokeapi.NewClient(
//	    pokeapi.WithHTTPClient(httpClient),
//	    pokeapi.WithLogger(logger),
//	)
//	mon, err := client.FindPokemon(ctx, "pikachu")
package pokeapi
