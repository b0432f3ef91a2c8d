package main

import (
	"fmt"

	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/model"
	"github.com/spf13/cobra"
)

// NewTypeCmd creates the type command.
func NewTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <name> [primary [secondary]]",
		Short: "Show a type's damage relations or a move's matchup",
		Long: `Type prints the damage a type takes and deals.

With --against, <name> is the type of a move and the command prints the
damage multiplier of that move against a Pokemon of the given primary and
optional secondary type.

Examples:
  # Defense and offense relations
  skyedex type dragon

  # Only what fire is strong and weak against
  skyedex type fire --offense

  # A water move against a rock/ground Pokemon
  skyedex type water --against rock ground`,
		Args: typeArgs,
		RunE: runTypeCmd,
	}

	cmd.Flags().BoolP("defense", "d", false, "Show only defensive relations")
	cmd.Flags().BoolP("offense", "o", false, "Show only offensive relations")
	cmd.Flags().BoolP("against", "a", false, "Compare a move of this type against primary [secondary]")

	return cmd
}

// typeArgs requires the type name and accepts the defending types only
// together with --against.
func typeArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 3)(cmd, args); err != nil {
		return err
	}
	against, err := cmd.Flags().GetBool("against")
	if err != nil {
		return err
	}
	if !against && len(args) > 1 {
		return fmt.Errorf("unexpected arguments %v: defending types require --against", args[1:])
	}
	return nil
}

// buildTypeRequest creates a TypeRequest from flags and arguments.
// Missing defending types are left empty.
func buildTypeRequest(cmd *cobra.Command, args []string) (model.TypeRequest, error) {
	req := model.TypeRequest{Name: args[0]}

	var err error
	if req.ShowDefense, err = cmd.Flags().GetBool("defense"); err != nil {
		return req, err
	}
	if req.ShowOffense, err = cmd.Flags().GetBool("offense"); err != nil {
		return req, err
	}
	if req.Compare, err = cmd.Flags().GetBool("against"); err != nil {
		return req, err
	}
	if len(args) > 1 {
		req.Primary = args[1]
	}
	if len(args) > 2 {
		req.Secondary = args[2]
	}
	return req, nil
}

// runTypeCmd executes the type command.
func runTypeCmd(cmd *cobra.Command, args []string) (err error) {
	req, err := buildTypeRequest(cmd, args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(a, &err)

	if req.Compare {
		m, err := a.resolver.Matchup(cmd.Context(), req)
		if err != nil {
			return err
		}
		_, err = a.writer.WriteMatchup(m)
		return err
	}

	t, err := a.resolver.Type(cmd.Context(), req.Name)
	if err != nil {
		return err
	}
	_, err = a.writer.WriteType(t, dex.TypeSections(t, req.ShowDefense, req.ShowOffense))
	return err
}
