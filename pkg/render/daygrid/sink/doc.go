// Package sink renders a computed day-grid layout to output formats.
//
// Every renderer takes a [layout.Result] and the [calendar.Day] it was
// computed from. The day supplies titles and colors; the result supplies
// positions. Events are matched to their boxes through Result.EventIndex,
// so events outside the visible window are simply absent from the output.
//
// Formats:
//
//   - [RenderSVG]: standalone SVG, drawn by a [styles.Style]
//   - [RenderPNG]: raster image drawn directly with fogleman/gg
//   - [RenderPDF]: the SVG converted by rsvg-convert
//   - [RenderJSON]: the layout as pretty-printed JSON for other tools
package sink
