package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/pipeline"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(missing) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[grid]
start_hour = 8
end_hour = 18

[grid.padding]
top = 20

[render]
direction = "rtl"
formats = ["svg", "png"]

[cache]
backend = "none"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Grid.StartHour = 8
	want.Grid.EndHour = 18
	want.Grid.Padding.Top = 20
	want.Render.Direction = "rtl"
	want.Render.Formats = []string{"svg", "png"}
	want.Cache.Backend = BackendNone
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[grid]\nstart_hours = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "grid.start_hours") {
		t.Errorf("Load() error = %v, want unknown key grid.start_hours", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[grid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Load() error = %v, want INVALID_INPUT", err)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Grid.StartHour = 7
	cfg.Render.Style = "mono"
	cfg.Cache = Cache{Backend: BackendRedis, RedisURL: "redis://localhost:6379/0"}

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*File)
		code    errors.Code
		fatal   bool
		checkFn func(*testing.T, File)
	}{
		{name: "default", mutate: func(*File) {}},
		{
			name:   "empty window",
			mutate: func(f *File) { f.Grid.StartHour, f.Grid.EndHour = 10, 10 },
			code:   errors.ErrCodeInvalidConfig,
			checkFn: func(t *testing.T, f File) {
				if f.Grid.StartHour != 0 || f.Grid.EndHour != 24 {
					t.Errorf("window = %d-%d, want 0-24", f.Grid.StartHour, f.Grid.EndHour)
				}
			},
		},
		{name: "bad style", mutate: func(f *File) { f.Render.Style = "neon" }, code: errors.ErrCodeInvalidStyle, fatal: true},
		{name: "bad direction", mutate: func(f *File) { f.Render.Direction = "down" }, code: errors.ErrCodeInvalidDirection, fatal: true},
		{name: "redis without url", mutate: func(f *File) { f.Cache.Backend = BackendRedis }, code: errors.ErrCodeInvalidInput, fatal: true},
		{name: "unknown backend", mutate: func(f *File) { f.Cache.Backend = "memcached" }, code: errors.ErrCodeInvalidInput, fatal: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.mutate(&f)
			got, err := f.Normalize()
			if errors.GetCode(err) != tt.code {
				t.Fatalf("Normalize() error = %v, want code %q", err, tt.code)
			}
			if errors.Fatal(err) != tt.fatal {
				t.Errorf("Fatal() = %v, want %v", errors.Fatal(err), tt.fatal)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, got)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	f := Default()
	f.Render.Width = 640
	opts := f.Options()
	if opts.Width != 640 || opts.Style != pipeline.DefaultStyle || opts.Grid != f.Grid {
		t.Errorf("Options() = %+v", opts)
	}

	// Formats are copied so callers can append flags safely.
	opts.Formats[0] = "png"
	if f.Render.Formats[0] != "svg" {
		t.Error("Options() aliases the formats slice")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/tmp/xdg", "daygrid", "config.toml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}
