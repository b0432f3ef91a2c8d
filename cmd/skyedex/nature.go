package main

import (
	"github.com/nao1215/skyedex/internal/model"
	"github.com/spf13/cobra"
)

// NewNatureCmd creates the nature command.
func NewNatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nature <name>",
		Short: "Show the stats a nature lowers and raises",
		Long: `Nature prints the stat a nature decreases and the stat it increases,
as "-<decreased>, +<increased>". Neutral natures print None.

Examples:
  skyedex nature adamant
  skyedex nature hardy`,
		Args: cobra.ExactArgs(1),
		RunE: runNatureCmd,
	}
}

// buildNatureRequest creates a NatureRequest from arguments.
func buildNatureRequest(args []string) model.NatureRequest {
	return model.NatureRequest{Name: args[0]}
}

// runNatureCmd executes the nature command.
func runNatureCmd(cmd *cobra.Command, args []string) (err error) {
	req := buildNatureRequest(args)

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(a, &err)

	n, err := a.resolver.Nature(cmd.Context(), req.Name)
	if err != nil {
		return err
	}
	_, err = a.writer.WriteNature(n)
	return err
}
