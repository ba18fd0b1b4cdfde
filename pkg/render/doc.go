// Package render provides the output side of daygrid.
//
// # Overview
//
// A laid-out day is turned into artifacts by the subpackages:
//
//   - [daygrid/columns]: overlap packing of events into columns
//   - [daygrid/layout]: the hour grid and per-event rectangles
//   - [daygrid/styles]: colors and typography for a rendered day
//   - [daygrid/sink]: SVG, PNG, PDF and JSON writers
//   - [conflicts]: the overlap graph of a day, drawn with Graphviz
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). The PDF sink and the conflict graph
// both go through them.
//
//	svg := sink.RenderSVG(res, day)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// When rsvg-convert is not installed both functions return an error with
// code UNSUPPORTED; SVG and JSON output do not need it.
//
// [daygrid/columns]: github.com/matzehuels/daygrid/pkg/render/daygrid/columns
// [daygrid/layout]: github.com/matzehuels/daygrid/pkg/render/daygrid/layout
// [daygrid/styles]: github.com/matzehuels/daygrid/pkg/render/daygrid/styles
// [daygrid/sink]: github.com/matzehuels/daygrid/pkg/render/daygrid/sink
// [conflicts]: github.com/matzehuels/daygrid/pkg/render/conflicts
package render
