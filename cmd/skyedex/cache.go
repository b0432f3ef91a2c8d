package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/skyedex/internal/cache"
	"github.com/nao1215/skyedex/internal/config"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command and its subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the response cache",
		Long: `Cache manages the local SQLite database holding PokeAPI responses.

The database lives in the XDG cache directory (~/.cache/skyedex/cache.db on
Linux) unless cache.dir is set in the configuration file.`,
		Args: cobra.NoArgs,
	}

	cmd.AddCommand(newCacheStatsCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the number, size and age of cached responses",
		Args:  cobra.NoArgs,
		RunE:  runCacheStatsCmd,
	}
}

func newCacheClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached responses",
		Long: `Clear deletes every cached response. With --expired it only deletes
responses older than the cache TTL.`,
		Args: cobra.NoArgs,
		RunE: runCacheClearCmd,
	}
	cmd.Flags().Bool("expired", false, "Only delete responses older than the cache TTL")
	return cmd
}

// openCache opens the existing cache database. store is nil when no
// database has been created yet.
func openCache(cmd *cobra.Command) (*cache.Store, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	store, err := cache.Open(cfg.CacheDir, cache.Options{CreateIfNotExists: false, EnableWAL: true})
	if errors.Is(err, cache.ErrNotExist) {
		return nil, cfg, nil
	}
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

// runCacheStatsCmd executes the cache stats command.
func runCacheStatsCmd(cmd *cobra.Command, _ []string) error {
	store, cfg, err := openCache(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if store == nil {
		fmt.Fprintf(out, "No cache database in %s\n", cfg.CacheDir)
		return nil
	}
	defer store.Close()

	st, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Database: %s\n", store.Path())
	fmt.Fprintf(out, "Entries:  %d\n", st.Entries)
	kinds := make([]string, 0, len(st.ByKind))
	for kind := range st.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-8s%d\n", kind+":", st.ByKind[kind])
	}
	fmt.Fprintf(out, "Size:     %s\n", humanize.Bytes(uint64(st.Bytes))) //nolint:gosec // sum of lengths is non-negative
	if !st.Oldest.IsZero() {
		fmt.Fprintf(out, "Oldest:   %s\n", humanize.Time(st.Oldest))
	}
	return nil
}

// runCacheClearCmd executes the cache clear command.
func runCacheClearCmd(cmd *cobra.Command, _ []string) error {
	expired, err := cmd.Flags().GetBool("expired")
	if err != nil {
		return err
	}

	store, cfg, err := openCache(cmd)
	if err != nil {
		return err
	}
	if store == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No cache database in %s\n", cfg.CacheDir)
		return nil
	}
	defer store.Close()

	if expired && cfg.CacheTTL <= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Cache entries never expire (cache.ttl is 0); nothing removed")
		return nil
	}

	var n int64
	if expired {
		n, err = store.Prune(cmd.Context(), cfg.CacheTTL)
	} else {
		n, err = store.Clear(cmd.Context())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached %s\n", n, plural(n, "response", "responses"))
	return nil
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
