package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/config"
	"github.com/matzehuels/daygrid/pkg/pipeline"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

// maxBarColumns caps the column strip drawn per row.
const maxBarColumns = 32

// packCommand creates the pack command, which prints the column packing.
func (c *CLI) packCommand() *cobra.Command {
	var flags dayFlags

	cmd := &cobra.Command{
		Use:   "pack [day-file|url]",
		Short: "Print how a day's events are packed into columns",
		Long: `Print how a day's events are packed into columns.

Each visible event is listed with its time range and column span. The strip
shows which of the day's columns the event occupies after expanding into
free columns to its right. Events outside the visible window are counted
but not listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := c.dayOptions(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			day, res, cached, err := c.loadAndLayout(cmd.Context(), cfg.Cache, opts, flags.noCache)
			if err != nil {
				return err
			}

			printInfo("%s", dayHeading(day, res))
			fmt.Fprintln(out, packTable(day, res))
			if hidden := len(day.Events) - len(res.Events); hidden > 0 {
				printDetail("%s outside %s", plural(hidden, "event"), windowLabel(res.Config))
			}
			printStats(len(day.Events), len(res.Events), res.ColumnCount, cached)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// loadAndLayout loads the day for opts and computes its layout.
func (c *CLI) loadAndLayout(ctx context.Context, cc config.Cache, opts pipeline.Options, noCache bool) (calendar.Day, *layout.Result, bool, error) {
	runner, err := c.newRunner(ctx, cc, noCache)
	if err != nil {
		return calendar.Day{}, nil, false, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	day, err := runner.Load(ctx, opts)
	if err != nil {
		return calendar.Day{}, nil, false, err
	}
	res, cached, err := runner.LayoutWithCacheInfo(ctx, day, opts)
	if err != nil {
		return calendar.Day{}, nil, false, err
	}
	return day, res, cached, nil
}

// packTable renders one row per visible event.
func packTable(day calendar.Day, res *layout.Result) string {
	rows := make([][]string, 0, len(res.Events))
	for i, orig := range res.EventIndex {
		ev := day.Events[orig]
		span := res.Spans[i]
		rows = append(rows, []string{
			strconv.Itoa(orig + 1),
			ev.Range.String(),
			fmt.Sprintf("%d–%d", span.Start, span.End),
			columnBar(span.Start, span.End, res.ColumnCount),
			ev.Title,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Time", "Cols", "Layout", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Inherit(styleHeader)
			case col == 0 || col == 2:
				return base.Foreground(colorGray)
			case col == 3:
				return base.Foreground(colorCyan)
			}
			return base
		}).
		String()
}

// columnBar draws cols cells, filled for [start, end).
func columnBar(start, end, cols int) string {
	n := min(cols, maxBarColumns)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i >= start && i < end {
			b.WriteString(iconBlock)
		} else {
			b.WriteString(iconFree)
		}
	}
	if cols > n {
		b.WriteString("…")
	}
	return b.String()
}

// dayHeading summarizes the day and its window, e.g.
// "2024-03-14 · Thursday · 08:00–18:00".
func dayHeading(day calendar.Day, res *layout.Result) string {
	var parts []string
	if day.Date != "" {
		parts = append(parts, day.Date)
	}
	if day.Title != "" {
		parts = append(parts, day.Title)
	}
	parts = append(parts, windowLabel(res.Config))
	return strings.Join(parts, " · ")
}

func windowLabel(cfg layout.Config) string {
	return calendar.FormatClock(cfg.StartHour*60) + "–" + calendar.FormatClock(cfg.EndHour*60)
}
