// Package main provides the entry point for the skyedex CLI.
//
// skyedex looks up Pokemon, elemental types and natures on PokeAPI and
// prints them in the terminal.
//
// Usage:
//
//	skyedex pokemon <name> [--stat] [--ability] [--no-basic] [--all]
//	skyedex type <name> [--defense] [--offense]
//	skyedex type <move-type> --against <primary> [<secondary>]
//	skyedex nature <name>
//
// See --help for all available options.
package main

// main is the entry point for skyedex.
func main() {
	Execute()
}
