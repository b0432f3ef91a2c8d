package main

import (
	"github.com/nao1215/skyedex/internal/model"
	"github.com/spf13/cobra"
)

// NewPokemonCmd creates the pokemon command.
func NewPokemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokemon <name>",
		Short: "Show a Pokemon's types, abilities and base stats",
		Long: `Pokemon prints the types of a Pokemon, and optionally its abilities and
base stats. Names are case-insensitive.

Examples:
  # Name and types
  skyedex pokemon pikachu

  # Everything
  skyedex pokemon garchomp --all

  # Base stats only
  skyedex pokemon mew --stat --no-basic`,
		Args: cobra.ExactArgs(1),
		RunE: runPokemonCmd,
	}

	cmd.Flags().BoolP("stat", "s", false, "Show base stats")
	cmd.Flags().BoolP("ability", "b", false, "Show abilities")
	cmd.Flags().Bool("no-basic", false, "Hide the name and type line")
	cmd.Flags().BoolP("all", "a", false, "Show everything (implies --stat and --ability)")

	return cmd
}

// buildPokemonRequest creates a PokemonRequest from flags and arguments.
func buildPokemonRequest(cmd *cobra.Command, args []string) (model.PokemonRequest, error) {
	req := model.PokemonRequest{Name: args[0]}

	var err error
	if req.ShowStats, err = cmd.Flags().GetBool("stat"); err != nil {
		return req, err
	}
	if req.ShowAbility, err = cmd.Flags().GetBool("ability"); err != nil {
		return req, err
	}
	noBasic, err := cmd.Flags().GetBool("no-basic")
	if err != nil {
		return req, err
	}
	req.ShowBasic = !noBasic
	if req.ShowAll, err = cmd.Flags().GetBool("all"); err != nil {
		return req, err
	}
	return req, nil
}

// runPokemonCmd executes the pokemon command.
func runPokemonCmd(cmd *cobra.Command, args []string) (err error) {
	req, err := buildPokemonRequest(cmd, args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(a, &err)

	p, err := a.resolver.Pokemon(cmd.Context(), req.Name)
	if err != nil {
		return err
	}
	_, err = a.writer.WritePokemon(p, req)
	return err
}
