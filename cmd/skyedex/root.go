package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/skyedex/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for skyedex.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skyedex",
		Short: "Look up Pokemon, types and natures from the terminal",
		Long: `skyedex is a Pokedex for the terminal. It queries PokeAPI and prints
Pokemon types, abilities and base stats, type damage relations, type
matchups and nature stat changes.

Responses are cached in a local SQLite database (~/.cache/skyedex on Linux)
for a week. Use --no-cache to always query the API.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("log-json", false, "Write logs to stderr as JSON")
	pf.StringP("config", "c", "",
		"Configuration file path (default: .skyedex in current or home directory)")
	pf.String("api-url", config.DefaultAPIBaseURL, "PokeAPI base URL")
	pf.Duration("timeout", config.DefaultTimeout, "Timeout for each API request")
	pf.String("proxy", "", "Proxy URL (http, https, socks5 or socks5h)")
	pf.Bool("no-cache", false, "Do not read or write the response cache")
	pf.BoolP("json", "j", false, "Output JSON (mutually exclusive with --markdown)")
	pf.BoolP("markdown", "m", false, "Output Markdown (mutually exclusive with --json)")

	// Add subcommands
	cmd.AddCommand(NewPokemonCmd())
	cmd.AddCommand(NewTypeCmd())
	cmd.AddCommand(NewNatureCmd())
	cmd.AddCommand(NewCacheCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// errMissingSubcommand is returned when skyedex runs without a subcommand.
var errMissingSubcommand = errors.New("missing subcommand: expected one of pokemon, type, nature (see skyedex --help)")

// runRootCmd runs when no subcommand is given. That is a usage error.
func runRootCmd(_ *cobra.Command, _ []string) error {
	return errMissingSubcommand
}

// Execute runs the root command. SIGINT and SIGTERM cancel in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
