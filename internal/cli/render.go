package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/config"
	"github.com/matzehuels/daygrid/pkg/httputil"
	"github.com/matzehuels/daygrid/pkg/pipeline"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// renderCommand creates the render command: day file → image(s).
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      dayFlags
		formatsStr string
		output     string
		style      string
		title      string
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "render [day-file|url]",
		Short: "Render a day to SVG, PNG, PDF or JSON",
		Long: `Render a day to SVG, PNG, PDF or JSON.

The day file may be JSON, YAML or iCalendar. An http(s) URL is fetched as an
iCalendar feed. With --date, the feed is reduced to that day; otherwise the
day of the earliest timed event is used.

Output files are named after the input unless -o is given. Use -o - to write
a single format to standard output.

Results are cached locally for faster subsequent runs.`,
		Example: `  daygrid render today.yaml
  daygrid render team.ics --date 2024-03-14 --start 8 --end 18 -f svg,png
  daygrid render https://example.com/team.ics --dir rtl -o - > day.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := c.dayOptions(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				opts.Formats = parseFormats(formatsStr)
			}
			if cmd.Flags().Changed("style") {
				opts.Style = style
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			opts.Title = title
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if output == stdoutPath && len(opts.Formats) != 1 {
				return fmt.Errorf("-o - needs exactly one format, got %d", len(opts.Formats))
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cfg.Cache, opts, output, flags.noCache, "Render")
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVar(&style, "style", pipeline.DefaultStyle, "visual style: simple, mono")
	cmd.Flags().StringVar(&title, "title", "", "title drawn into the output (default: the day's title)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG pixel scale")

	return cmd
}

// runRender executes the pipeline and writes one artifact per format.
// label names the operation in progress and summary output.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, cc config.Cache, opts pipeline.Options, output string, noCache bool, label string) error {
	runner, err := c.newRunner(ctx, cc, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, label+" "+opts.Path+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError(label + " failed")
		return err
	}
	spinner.Stop()

	if output == stdoutPath {
		_, err := stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(output, opts.Path, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Wrote %s", plural(len(opts.Formats), "file")))

	printSuccess("%s complete", label)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats.EventCount, result.Stats.VisibleCount, result.Stats.ColumnCount, result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path from the output and input paths.
// Known format extensions are stripped from output; remote inputs are named
// after the application.
func basePath(output, input string) string {
	if output == "" {
		if httputil.IsURL(input) {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single
// format with an explicit output uses that path verbatim. JSON gets a
// ".layout.json" suffix so a JSON day file is never overwritten.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		if f == pipeline.FormatJSON {
			paths[f] = base + ".layout.json"
			continue
		}
		paths[f] = base + "." + f
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
