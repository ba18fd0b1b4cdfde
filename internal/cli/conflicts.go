package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/conflicts"
)

const formatDOT = "dot"

// conflictsCommand creates the conflicts command, which draws the overlap
// graph of a day with Graphviz.
func (c *CLI) conflictsCommand() *cobra.Command {
	var (
		flags  dayFlags
		format string
		output string
		opts   conflicts.Options
	)

	cmd := &cobra.Command{
		Use:   "conflicts [day-file|url]",
		Short: "Draw the overlap graph of a day",
		Long: `Draw the overlap graph of a day.

Every event is a node; two events are joined when their time ranges
overlap. Nodes are grouped by connected component, which is exactly the
set of events that compete for the same columns. The default output is
Graphviz DOT on standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case formatDOT, "svg", "png", "pdf":
			default:
				return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, pdf)", format)
			}

			pipeOpts, cfg, err := c.dayOptions(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), cfg.Cache, flags.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			day, err := runner.Load(cmd.Context(), pipeOpts)
			if err != nil {
				return err
			}
			return c.runConflicts(cmd.Context(), cmd.OutOrStdout(), day, opts, format, args[0], output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, png, pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.conflicts.<format> otherwise)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "add time ranges and column spans to node labels")
	cmd.Flags().BoolVar(&opts.HideIsolated, "hide-isolated", false, "omit events that overlap nothing")

	return cmd
}

func (c *CLI) runConflicts(ctx context.Context, stdout io.Writer, day calendar.Day, opts conflicts.Options, format, input, output string) error {
	dot := conflicts.ToDOT(day, opts)
	c.Logger.Debug("conflict graph", "events", len(day.Events), "edges", len(conflicts.Edges(day.Ranges())))

	data, err := renderConflicts(ctx, dot, format)
	if err != nil {
		return err
	}

	if output == stdoutPath || (output == "" && format == formatDOT) {
		_, err := stdout.Write(data)
		return err
	}
	if output == "" {
		output = basePath("", input) + ".conflicts." + format
	}
	if err := writeArtifact(output, data); err != nil {
		return err
	}
	printSuccess("Conflict graph written")
	printFile(output)
	return nil
}

func renderConflicts(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case "svg":
		return conflicts.RenderSVG(ctx, dot)
	case "png":
		return conflicts.RenderPNG(ctx, dot, 2.0)
	case "pdf":
		return conflicts.RenderPDF(ctx, dot)
	default:
		return []byte(dot), nil
	}
}
