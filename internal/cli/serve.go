package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/config"
	"github.com/matzehuels/daygrid/pkg/observability"
	"github.com/matzehuels/daygrid/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		timeout  time.Duration
		maxBody  int64
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and renders over HTTP",
		Long: `Serve layouts and renders over HTTP.

Endpoints:
  GET  /health
  POST /api/layout               day + options → layout JSON
  POST /api/render?format=svg    day + options → svg, png, pdf or json

Request defaults come from the config file. With --redis the cache is shared
between server replicas; otherwise the configured backend is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("timeout") {
				cfg.Server.TimeoutSeconds = int(timeout / time.Second)
			}
			if flags.Changed("max-body") {
				cfg.Server.MaxBodyBytes = maxBody
			}
			if redisURL != "" {
				cfg.Cache = config.Cache{Backend: config.BackendRedis, RedisURL: redisURL}
			}
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	defaults := config.Default().Server
	cmd.Flags().StringVar(&addr, "addr", defaults.Addr, "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Duration(defaults.TimeoutSeconds)*time.Second, "per-request timeout")
	cmd.Flags().Int64Var(&maxBody, "max-body", defaults.MaxBodyBytes, "maximum request body size in bytes")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.File, noCache bool) error {
	runner, err := c.newRunner(ctx, cfg.Cache, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if c.Logger.GetLevel() <= LogDebug {
		observability.NewLogHooks(c.Logger).Install()
		defer observability.Reset()
	}

	srv := server.New(runner, c.Logger,
		server.WithDefaults(cfg.Options()),
		server.WithTimeout(time.Duration(cfg.Server.TimeoutSeconds)*time.Second),
		server.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)

	printInfo("Serving on %s", StyleNumber.Render(cfg.Server.Addr))
	printDetail("cache: %s", cacheLabel(cfg.Cache, noCache))

	err = srv.ListenAndServe(ctx, cfg.Server.Addr)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, http.ErrServerClosed):
		printSuccess("Server stopped")
		return nil
	default:
		return err
	}
}

func cacheLabel(cc config.Cache, noCache bool) string {
	if noCache {
		return config.BackendNone
	}
	return cc.Backend
}
