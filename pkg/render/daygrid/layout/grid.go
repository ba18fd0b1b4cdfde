package layout

import (
	"math"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/columns"
)

// State is the lifecycle stage of a Grid.
type State int

const (
	Uninitialized State = iota
	Configured
	LaidOut
)

func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case LaidOut:
		return "laid out"
	default:
		return "uninitialized"
	}
}

// Pass carries the host's inputs for one layout computation.
type Pass struct {
	ContainerWidth int
	Direction      Direction

	// LabelHeights holds the measured height of each hour label view and
	// must have exactly Counts().HourLabels entries.
	LabelHeights []int

	// EventViews is the number of event views the host will position and
	// must equal len(Filtered()).
	EventViews int
}

// Result is the output of a layout pass. Every slice is index-aligned with
// the corresponding host list: HourLabels with the label views, Events with
// the filtered events.
type Result struct {
	Config Config `json:"config"`
	Frame  Frame  `json:"frame"`
	Height int    `json:"height"`

	HourDividers     []Rect `json:"hour_dividers"`
	HalfHourDividers []Rect `json:"half_hour_dividers"`
	HourLabels       []Rect `json:"hour_labels"`
	Events           []Rect `json:"events"`

	// EventIndex maps each entry of Events to its position in the input
	// passed to SetEvents.
	EventIndex  []int          `json:"event_index"`
	Spans       []columns.Span `json:"spans"`
	ColumnCount int            `json:"column_count"`
}

// Hours returns the hour of day for each label.
func (r *Result) Hours() []int {
	out := make([]int, len(r.HourLabels))
	for i := range out {
		out[i] = r.Config.StartHour + i
	}
	return out
}

// MinuteAt maps a vertical pixel offset back to a minute of the day,
// clamped to the visible window.
func (r *Result) MinuteAt(y int) int {
	if r.Frame.MinuteHeight <= 0 {
		return r.Config.StartMinute()
	}
	offset := float64(y-r.Frame.FirstDividerTop-r.Config.DividerHeight) / r.Frame.MinuteHeight
	m := r.Config.StartMinute() + int(math.Round(offset))
	return clamp(m, r.Config.StartMinute(), r.Config.EndMinute())
}

// Grid holds the configuration, events and most recent layout of one day
// view. A Grid is not safe for concurrent use.
type Grid struct {
	cfg   Config
	state State

	events   []calendar.TimeRange
	filtered []calendar.TimeRange
	index    []int
	packing  columns.Packing

	result *Result
}

// NewGrid returns an unconfigured grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Configure sets the window and metrics, re-filters and re-packs the
// current events and discards any previous layout. It never rejects a
// config: invalid values are clamped, and an empty window falls back to the
// full day. The returned error is non-nil only to report that fallback.
func (g *Grid) Configure(cfg Config) error {
	norm, err := cfg.Normalize()
	g.cfg = norm
	g.state = Configured
	g.refilter()
	return err
}

// SetEvents replaces the event set. The slice is copied.
func (g *Grid) SetEvents(ranges []calendar.TimeRange) {
	g.events = append([]calendar.TimeRange(nil), ranges...)
	if g.state != Uninitialized {
		g.state = Configured
		g.refilter()
	}
}

func (g *Grid) refilter() {
	lo, hi := g.cfg.StartMinute(), g.cfg.EndMinute()
	g.filtered = g.filtered[:0]
	g.index = g.index[:0]
	for i, r := range g.events {
		if r.Within(lo, hi) {
			g.filtered = append(g.filtered, r)
			g.index = append(g.index, i)
		}
	}
	g.packing = columns.Pack(g.filtered)
	g.result = nil
}

// State returns the grid's lifecycle stage.
func (g *Grid) State() State { return g.state }

// Config returns the normalized configuration.
func (g *Grid) Config() Config { return g.cfg }

// Counts returns the divider and label counts for the current window.
func (g *Grid) Counts() Counts { return g.cfg.Counts() }

// Filtered returns the events inside the visible window, in input order.
func (g *Grid) Filtered() []calendar.TimeRange {
	return append([]calendar.TimeRange(nil), g.filtered...)
}

// Packing returns the column packing of the filtered events.
func (g *Grid) Packing() columns.Packing { return g.packing }

// Result returns the most recent layout, or nil if the grid is not laid out.
func (g *Grid) Result() *Result { return g.result }

// ComputeLayout computes every rect for the pass. It fails with
// PRECONDITION_FAILED if the grid is unconfigured or the host's label or
// event-view counts do not match the grid.
func (g *Grid) ComputeLayout(p Pass) (*Result, error) {
	if g.state == Uninitialized {
		return nil, errors.New(errors.ErrCodePreconditionFailed, "grid must be configured before layout")
	}
	counts := g.cfg.Counts()
	if len(p.LabelHeights) != counts.HourLabels {
		return nil, errors.New(errors.ErrCodePreconditionFailed,
			"got %d hour label heights, want %d", len(p.LabelHeights), counts.HourLabels)
	}
	if p.EventViews != len(g.filtered) {
		return nil, errors.New(errors.ErrCodePreconditionFailed,
			"got %d event views for %d visible events", p.EventViews, len(g.filtered))
	}

	frame, height := Measure(g.cfg, p.ContainerWidth, p.Direction, p.LabelHeights)
	hour, half := DividerRects(g.cfg, frame)

	res := &Result{
		Config:           g.cfg,
		Frame:            frame,
		Height:           height,
		HourDividers:     hour,
		HalfHourDividers: half,
		HourLabels:       HourLabelRects(g.cfg, frame, p.LabelHeights),
		Events:           EventRects(g.cfg, frame, g.filtered, g.packing),
		EventIndex:       append([]int{}, g.index...),
		Spans:            append([]columns.Span{}, g.packing.Spans...),
		ColumnCount:      g.packing.ColumnCount,
	}
	g.result = res
	g.state = LaidOut
	return res, nil
}

// HourTop returns the y offset just below the divider of the given hour of
// day. hour must lie in [StartHour, EndHour].
func (g *Grid) HourTop(hour int) (int, error) {
	idx, err := g.hourIndex(hour)
	if err != nil {
		return 0, err
	}
	return g.result.HourDividers[idx].Bottom, nil
}

// HourBottom returns the y offset where the given hour ends: the top of the
// next hour's divider, or the bottom of the last divider for EndHour.
func (g *Grid) HourBottom(hour int) (int, error) {
	idx, err := g.hourIndex(hour)
	if err != nil {
		return 0, err
	}
	if idx == g.cfg.Counts().HourLabels-1 {
		return g.result.HourDividers[idx].Bottom, nil
	}
	return g.result.HourDividers[idx+1].Top, nil
}

func (g *Grid) hourIndex(hour int) (int, error) {
	if g.state != LaidOut {
		return 0, errors.New(errors.ErrCodePreconditionFailed, "grid is %s, not laid out", g.state)
	}
	labels := g.cfg.Counts().HourLabels
	if hour < 0 || hour >= labels+g.cfg.StartHour || hour < g.cfg.StartHour {
		return 0, errors.New(errors.ErrCodeOutOfRange,
			"hour %d outside visible window [%d, %d]", hour, g.cfg.StartHour, g.cfg.EndHour)
	}
	return hour - g.cfg.StartHour, nil
}

// FirstEventTop returns the top of the first laid-out event, or 0.
func (g *Grid) FirstEventTop() int { return g.eventEdge(0, true) }

// FirstEventBottom returns the bottom of the first laid-out event, or 0.
func (g *Grid) FirstEventBottom() int { return g.eventEdge(0, false) }

// LastEventTop returns the top of the last laid-out event, or 0.
func (g *Grid) LastEventTop() int { return g.eventEdge(-1, true) }

// LastEventBottom returns the bottom of the last laid-out event, or 0.
func (g *Grid) LastEventBottom() int { return g.eventEdge(-1, false) }

func (g *Grid) eventEdge(i int, top bool) int {
	if g.result == nil || len(g.result.Events) == 0 {
		return 0
	}
	if i < 0 {
		i = len(g.result.Events) - 1
	}
	if top {
		return g.result.Events[i].Top
	}
	return g.result.Events[i].Bottom
}
