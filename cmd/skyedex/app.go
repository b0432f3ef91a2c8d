package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/skyedex/internal/cache"
	"github.com/nao1215/skyedex/internal/config"
	"github.com/nao1215/skyedex/internal/dex"
	"github.com/nao1215/skyedex/internal/log"
	"github.com/nao1215/skyedex/internal/pokeapi"
	"github.com/nao1215/skyedex/internal/report"
	"github.com/spf13/cobra"
)

// app holds the components shared by the lookup commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *dex.Resolver
	writer   report.Writer

	// store is nil when the cache is disabled or could not be opened.
	store *cache.Store
}

// newApp builds the configuration from flags and wires the lookup pipeline:
// HTTP transport, response cache, PokeAPI client, resolver and writer.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.LogJSON {
		logger = log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	if cfg.ConfigFilePath != "" {
		logger.Debug("loaded configuration file", "path", cfg.ConfigFilePath)
	}

	httpClient, err := pokeapi.NewHTTPClient(pokeapi.TransportOptions{
		Timeout:   cfg.Timeout,
		ProxyURL:  cfg.ProxyURL,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	if cfg.ProxyURL != "" {
		logger.Debug("using proxy", "proxy", cfg.ProxyURL)
	}

	opts := []pokeapi.Option{
		pokeapi.WithBaseURL(cfg.APIBaseURL),
		pokeapi.WithHTTPClient(httpClient),
		pokeapi.WithLogger(logger),
	}

	a := &app{cfg: cfg, logger: logger}
	if cfg.CacheEnabled {
		store, err := cache.Open(cfg.CacheDir, cache.DefaultOptions())
		if err != nil {
			// Lookups still work against the API.
			logger.Warn("response cache unavailable", "dir", cfg.CacheDir, "error", err)
		} else {
			a.store = store
			opts = append(opts, pokeapi.WithCache(store, cfg.CacheTTL))
		}
	}

	a.resolver = dex.NewResolver(pokeapi.NewClient(opts...), logger)
	a.writer = newWriter(cfg, cmd.OutOrStdout())
	return a, nil
}

// Close releases the cache database.
func (a *app) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// newWriter selects the report writer for the configured output format.
func newWriter(cfg *config.Config, w io.Writer) report.Writer {
	switch cfg.OutputFormat() {
	case config.OutputJSON:
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	case config.OutputMarkdown:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewTextWriter(w)
	}
}

// buildConfig creates a Config from defaults, the configuration file and
// the global flags. Flags override the file only when set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.UserAgent = config.UserAgentFor(getVersion())
	flags := cmd.Flags()

	explicitPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently use defaults if no file is found.
	if path := config.FindConfigFile(explicitPath); path != "" {
		cf, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFilePath = path
	} else if explicitPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, explicitPath)
	}

	if flags.Changed("api-url") {
		if cfg.APIBaseURL, err = flags.GetString("api-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyURL, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.CacheEnabled = false
	}

	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, err
	}
	if cfg.LogJSON, err = flags.GetBool("log-json"); err != nil {
		return nil, err
	}
	if cfg.JSONOutput, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownOutput, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// closeApp closes a and joins any close error into err.
func closeApp(a *app, err *error) {
	if cerr := a.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("failed to close cache: %w", cerr))
	}
}
