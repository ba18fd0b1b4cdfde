// Package config loads and writes the daygrid TOML configuration file.
//
// The file holds defaults for the CLI and the HTTP server. Flags given on
// the command line override file values. A missing file is not an error:
// [Load] returns [Default] in that case.
//
//	[grid]
//	start_hour = 8
//	end_hour = 18
//	half_hour_height = 24
//
//	[grid.padding]
//	top = 8
//
//	[render]
//	width = 480
//	direction = "ltr"
//	style = "simple"
//	formats = ["svg"]
//
//	[cache]
//	backend = "file"
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/pipeline"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

// appName names the configuration directory.
const appName = "daygrid"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// File is the on-disk configuration.
type File struct {
	Grid   layout.Config `toml:"grid"`
	Render Render        `toml:"render"`
	Cache  Cache         `toml:"cache"`
	Server Server        `toml:"server"`
}

// Render holds rendering defaults.
type Render struct {
	Width       int      `toml:"width"`
	Direction   string   `toml:"direction"`
	Style       string   `toml:"style"`
	Formats     []string `toml:"formats"`
	Scale       float64  `toml:"scale"`
	LabelHeight int      `toml:"label_height"`
	Timezone    string   `toml:"timezone,omitempty"`
}

// Cache selects the cache backend.
type Cache struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir,omitempty"`
	RedisURL string `toml:"redis_url,omitempty"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr           string `toml:"addr"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxBodyBytes   int64  `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() File {
	opts := pipeline.DefaultOptions()
	return File{
		Grid: opts.Grid,
		Render: Render{
			Width:       opts.Width,
			Direction:   opts.Direction,
			Style:       opts.Style,
			Formats:     opts.Formats,
			Scale:       opts.Scale,
			LabelHeight: opts.LabelHeight,
		},
		Cache: Cache{Backend: BackendFile},
		Server: Server{
			Addr:           ":8080",
			TimeoutSeconds: 30,
			MaxBodyBytes:   1 << 20,
		},
	}
}

// DefaultPath returns the config file location using XDG conventions
// (~/.config/daygrid/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path on top of [Default], so keys the file omits
// keep their defaults. Unknown keys are rejected to catch typos.
func Load(path string) (File, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Default(), errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes cfg as TOML to w.
func Encode(w io.Writer, cfg File) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg File) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create config dir")
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Normalize validates the file and clamps the grid. An empty hour window
// falls back to the full day; that substitution is returned as a non-fatal
// INVALID_CONFIG error alongside the usable File.
func (f File) Normalize() (File, error) {
	switch f.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if f.Cache.RedisURL == "" {
			return f, errors.New(errors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
		}
	default:
		return f, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", f.Cache.Backend)
	}
	if f.Server.TimeoutSeconds < 0 || f.Server.MaxBodyBytes < 0 {
		return f, errors.New(errors.ErrCodeInvalidInput, "server limits must not be negative")
	}

	opts := f.Options()
	if err := opts.ValidateForRender(); err != nil {
		return f, err
	}

	grid, err := f.Grid.Normalize()
	f.Grid = grid
	return f, err
}

// Options converts the file to pipeline options.
func (f File) Options() pipeline.Options {
	return pipeline.Options{
		Grid:        f.Grid,
		Width:       f.Render.Width,
		Direction:   f.Render.Direction,
		LabelHeight: f.Render.LabelHeight,
		Formats:     append([]string(nil), f.Render.Formats...),
		Style:       f.Render.Style,
		Scale:       f.Render.Scale,
		Timezone:    f.Render.Timezone,
	}
}
