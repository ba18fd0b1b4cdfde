// Package conflicts renders the conflict graph of a day as a node-link diagram.
//
// # Overview
//
// Each event becomes a node and every pair of overlapping events is joined
// by an edge. Nodes are filled by the column the packer assigned them, and
// events that transitively overlap are grouped into one cluster, so the
// diagram shows at a glance why a cluster needed as many columns as it did.
//
// # Usage
//
//	dot := conflicts.ToDOT(day, conflicts.Options{Detailed: true})
//	svg, err := conflicts.RenderSVG(ctx, dot)
//
// Events that conflict with nothing are drawn as isolated nodes unless
// [Options.HideIsolated] is set.
//
// # Rendering
//
// [RenderSVG] lays the graph out with the embedded Graphviz engine, so no
// external binary is needed. [RenderPDF] and [RenderPNG] convert that SVG
// with rsvg-convert.
package conflicts
