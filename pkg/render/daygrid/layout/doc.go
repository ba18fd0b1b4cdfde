// Package layout turns a day's configuration and events into pixel
// rectangles for a day-grid view.
//
// # Overview
//
// A day grid is a vertical timeline: one hour divider per hour boundary, a
// half-hour divider between each pair, an hour label centered on every hour
// divider, and events drawn as boxes between the dividers. Overlapping
// events sit side by side in columns computed by package columns.
//
// The package has two layers:
//
//   - Pure geometry: [Measure], [DividerRects], [HourLabelRects] and
//     [EventRects] map a [Config] and a [Frame] to rectangles. They hold no
//     state and never fail.
//   - [Grid]: the state object a host drives through Configure, SetEvents
//     and ComputeLayout. It filters events to the visible window, packs
//     them, validates the host's inputs and answers scroll queries
//     (HourTop, FirstEventTop, ...).
//
// # Coordinates
//
// All rectangles share one coordinate space with the origin at the top-left
// of the container. Horizontal positions are computed along the logical
// start-to-end axis and mirrored once, in [NewRect], when the direction is
// right-to-left. Nothing downstream needs to know the direction.
//
// # Vertical scale
//
// A half-hour slot is HalfHourHeight plus DividerHeight pixels tall. The
// minute height is the total usable height divided by the number of visible
// minutes, so event boxes line up with the dividers regardless of the
// configured window. Event boxes shorter than 15 minutes are stretched to 15
// minutes and anchored to the end of the visible window.
//
// # Usage
//
//	g := layout.NewGrid()
//	g.Configure(layout.DefaultConfig())
//	g.SetEvents(day.Ranges())
//	res, err := g.ComputeLayout(layout.Pass{
//	    ContainerWidth: 360,
//	    Direction:      layout.LTR,
//	    LabelHeights:   heights,          // one per hour label
//	    EventViews:     len(g.Filtered()), // one per visible event
//	})
package layout
