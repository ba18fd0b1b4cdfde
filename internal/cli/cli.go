// Package cli implements the daygrid command-line interface.
//
// # Commands
//
//   - render: lay out a day file and write SVG, PNG, PDF or JSON
//   - layout: write the computed layout as JSON
//   - pack: print the column packing as a table
//   - conflicts: draw the overlap graph with Graphviz
//   - view: interactive terminal preview of a day
//   - serve: run the HTTP API
//   - config: create or inspect the configuration file
//   - cache: manage the local cache
//
// Defaults come from the TOML config file (see package config); flags
// override them. All commands support --verbose (-v) for debug logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/buildinfo"
	"github.com/matzehuels/daygrid/pkg/cache"
	"github.com/matzehuels/daygrid/pkg/config"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "daygrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides the default config file location (--config).
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "daygrid lays out a day's events on an hour grid",
		Long: `daygrid places a day's timed events on a vertical hour grid. Overlapping
events share the width in side-by-side columns; each event widens into free
columns to its right.

Day files are JSON, YAML or iCalendar (.ics); iCalendar feeds can also be
fetched over http(s).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/daygrid/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.packCommand())
	root.AddCommand(c.conflictsCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// resolveConfigPath returns --config or the default location.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads and normalizes the config file. A grid fallback is
// logged and the adjusted config is used.
func (c *CLI) loadConfig() (config.File, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg, err = cfg.Normalize()
	if errors.Fatal(err) {
		return cfg, err
	}
	if err != nil {
		c.Logger.Warn("config adjusted", "path", path, "reason", errors.UserMessage(err))
	}
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg config.Cache, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(ctx context.Context, cfg config.Cache, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	}
	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/daygrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

// dayFlags are the load and layout flags shared by every command that
// reads a day file. Only flags the user set override the config file.
type dayFlags struct {
	date      string
	timezone  string
	startHour int
	endHour   int
	width     int
	direction string
	refresh   bool
	noCache   bool
}

func (f *dayFlags) register(cmd *cobra.Command) {
	defaults := pipeline.DefaultOptions()
	flags := cmd.Flags()
	flags.StringVar(&f.date, "date", "", "day to extract from an iCalendar feed (YYYY-MM-DD, default: earliest event)")
	flags.StringVar(&f.timezone, "tz", "", "IANA time zone for iCalendar feeds (default: local)")
	flags.IntVar(&f.startHour, "start", defaults.Grid.StartHour, "first visible hour")
	flags.IntVar(&f.endHour, "end", defaults.Grid.EndHour, "end of the visible window (exclusive hour)")
	flags.IntVar(&f.width, "width", defaults.Width, "container width in pixels")
	flags.StringVar(&f.direction, "dir", defaults.Direction, "layout direction: ltr, rtl")
	flags.BoolVar(&f.refresh, "refresh", false, "ignore cached results")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

func (f *dayFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("date") {
		opts.Date = f.date
	}
	if changed("tz") {
		opts.Timezone = f.timezone
	}
	if changed("start") {
		opts.Grid.StartHour = f.startHour
	}
	if changed("end") {
		opts.Grid.EndHour = f.endHour
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("dir") {
		opts.Direction = f.direction
	}
	opts.Refresh = f.refresh
}

// dayOptions merges the config file and flags into pipeline options for input.
func (c *CLI) dayOptions(cmd *cobra.Command, input string, f *dayFlags) (pipeline.Options, config.File, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, cfg, err
	}
	opts := cfg.Options()
	opts.Path = input
	opts.Logger = c.Logger
	f.apply(cmd, &opts)
	return opts, cfg, nil
}
