package pipeline

import (
	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout runs one layout pass for day.
//
// The grid is configured from opts.Grid. An unusable hour window is not an
// error here: the grid falls back to the full day and the substitution is
// logged as a warning. Every hour label is given opts.LabelHeight, and the
// pipeline positions exactly the events the grid keeps.
func ComputeLayout(day calendar.Day, opts Options) (*layout.Result, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}

	g := layout.NewGrid()
	if err := g.Configure(opts.Grid); err != nil {
		if errors.Fatal(err) {
			return nil, err
		}
		opts.Logger.Warn("grid config adjusted", "reason", errors.UserMessage(err))
	}
	g.SetEvents(day.Ranges())

	heights := make([]int, g.Counts().HourLabels)
	for i := range heights {
		heights[i] = opts.LabelHeight
	}

	return g.ComputeLayout(layout.Pass{
		ContainerWidth: opts.Width,
		Direction:      opts.LayoutDirection(),
		LabelHeights:   heights,
		EventViews:     len(g.Filtered()),
	})
}
