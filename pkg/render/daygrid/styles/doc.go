// Package styles defines the visual styles for day-grid rendering.
//
// A [Style] writes SVG fragments for each drawable element of a day grid
// (dividers, hour labels, event boxes) and exposes its [Palette] so raster
// renderers can draw the same colors without going through SVG.
//
// Two styles are built in:
//
//   - [Simple]: soft colors, rounded event boxes, dimmed half-hour lines
//   - [Mono]: black on white with dashed half-hour lines, for printing
//
// Use [Lookup] to resolve a style by name.
package styles
