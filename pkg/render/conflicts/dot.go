package conflicts

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/render"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/columns"
)

// Options configures conflict graph generation.
type Options struct {
	// Detailed adds the time range and column span to node labels.
	// When false, only the event title is shown.
	Detailed bool

	// HideIsolated omits events that overlap nothing.
	HideIsolated bool
}

// columnFills colors nodes by their first column.
var columnFills = []string{"#dbeafe", "#dcfce7", "#fef3c7", "#fce7f3", "#ede9fe", "#e0f2fe"}

// Edges returns every conflicting pair (i, j) with i < j, in index order.
func Edges(ranges []calendar.TimeRange) [][2]int {
	var out [][2]int
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Conflicts(ranges[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// ToDOT converts a day's events to an undirected Graphviz graph.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(day calendar.Day, opts Options) string {
	ranges := day.Ranges()
	p := columns.Pack(ranges)
	edges := Edges(ranges)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#94a3b8\"];\n")
	if day.Title != "" || day.Date != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", strings.TrimSpace(day.Date+" "+day.Title))
	}
	buf.WriteString("\n")

	for gi, group := range columns.Groups(ranges) {
		if len(group) == 1 && opts.HideIsolated {
			continue
		}
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", gi)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("%d column(s)", groupColumns(p, group)))
		buf.WriteString("    style=dashed;\n")
		for _, i := range group {
			attrs := fmtAttrs(day, p, i, opts.Detailed)
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(i), strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(e[0]), nodeID(e[1]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "e" + strconv.Itoa(i) }

// groupColumns is the number of distinct columns a cluster touches.
func groupColumns(p columns.Packing, group []int) int {
	maxEnd := 0
	minStart := p.ColumnCount
	for _, i := range group {
		minStart = min(minStart, p.Spans[i].Start)
		maxEnd = max(maxEnd, p.Spans[i].End)
	}
	return max(0, maxEnd-minStart)
}

func fmtLabel(ev calendar.Event, span columns.Span, detailed bool) string {
	title := ev.Title
	if title == "" {
		title = "(untitled)"
	}
	if !detailed {
		return title
	}
	return fmt.Sprintf("%s\n%s\ncols: [%d, %d)", title, ev.Range, span.Start, span.End)
}

func fmtAttrs(day calendar.Day, p columns.Packing, i int, detailed bool) []string {
	span := p.Spans[i]
	ev := day.Events[i]
	fill := ev.Color
	if fill == "" {
		fill = columnFills[span.Start%len(columnFills)]
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(ev, span, detailed)),
		fmt.Sprintf("fillcolor=%q", fill),
	}
	if span.Width() > 1 {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render conflict graph")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based root element with one
// sized in user units, so the graph scales like the day-grid SVGs.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
