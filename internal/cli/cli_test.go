package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const testDayYAML = `date: "2024-03-14"
title: Thursday
events:
  - title: Planning
    start: "08:30"
    end: "11:00"
  - title: Sync
    start: "09:30"
    end: "10:00"
  - title: Review
    start: "10:30"
    end: "13:00"
  - title: Night shift
    start: "22:00"
    end: "23:00"
`

// newTestCLI isolates config and cache directories and captures UI output.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })

	return New(io.Discard, LogInfo), &buf
}

// writeTestDay writes testDayYAML into a temp dir and returns its path.
func writeTestDay(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day.yaml")
	if err := os.WriteFile(path, []byte(testDayYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,pdf,png", []string{"svg", "pdf", "png"}},
		{" PNG , json ,", []string{"png", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()
	for _, name := range []string{"render", "layout", "pack", "conflicts", "view", "serve", "config", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestConfigErrorsSurface(t *testing.T) {
	c, _ := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[render]\nwidht = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, c, "--config", path, "pack", writeTestDay(t)); err == nil {
		t.Error("expected error for unknown config key")
	}
}
