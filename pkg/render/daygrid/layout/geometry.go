package layout

import (
	"math"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/columns"
)

// Frame holds the per-pass positions every rect is computed from.
type Frame struct {
	Width           int       `json:"width"`
	Direction       Direction `json:"direction"`
	FirstDividerTop int       `json:"first_divider_top"`
	LabelStart      int       `json:"label_start"`
	LabelEnd        int       `json:"label_end"`
	DividerStart    int       `json:"divider_start"`
	DividerEnd      int       `json:"divider_end"`
	MinuteHeight    float64   `json:"minute_height"`
}

// Measure computes the frame for a container of the given width and the
// total height the grid needs. labelHeights must hold one entry per hour
// label; only the first and last are used, to keep those labels inside the
// container.
func Measure(cfg Config, width int, dir Direction, labelHeights []int) (Frame, int) {
	counts := cfg.Counts()

	firstDividerTop, lastMarginBottom := 0, 0
	if n := len(labelHeights); n > 0 {
		firstDividerTop = labelHeights[0] / 2
		lastMarginBottom = labelHeights[n-1] / 2
	}
	firstDividerTop += cfg.Padding.Top

	usableHeight := (counts.HourDividers + counts.HalfHourDividers - 1) * cfg.UsableHalfHourHeight()
	minuteHeight := 0.0
	if counts.Minutes > 0 {
		minuteHeight = float64(usableHeight) / float64(counts.Minutes)
	}
	height := usableHeight + firstDividerTop + lastMarginBottom + cfg.Padding.Bottom + cfg.DividerHeight

	labelStart := cfg.Padding.Start
	labelEnd := labelStart + cfg.HourLabelWidth
	f := Frame{
		Width:           width,
		Direction:       dir,
		FirstDividerTop: firstDividerTop,
		LabelStart:      labelStart,
		LabelEnd:        labelEnd,
		DividerStart:    labelEnd + cfg.HourLabelMarginEnd,
		DividerEnd:      width - cfg.Padding.End,
		MinuteHeight:    minuteHeight,
	}
	return f, height
}

// DividerRects returns the hour and half-hour divider rects.
func DividerRects(cfg Config, f Frame) (hour, halfHour []Rect) {
	counts := cfg.Counts()
	usable := cfg.UsableHalfHourHeight()

	hour = make([]Rect, counts.HourDividers)
	for i := range hour {
		top := f.FirstDividerTop + i*2*usable
		hour[i] = NewRect(f.Direction, f.Width, f.DividerStart, top, f.DividerEnd, top+cfg.DividerHeight)
	}
	halfHour = make([]Rect, counts.HalfHourDividers)
	for i := range halfHour {
		top := f.FirstDividerTop + (2*i+1)*usable
		halfHour[i] = NewRect(f.Direction, f.Width, f.DividerStart, top, f.DividerEnd, top+cfg.DividerHeight)
	}
	return hour, halfHour
}

// HourLabelRects returns one rect per label height, each vertically
// centered on its hour divider.
func HourLabelRects(cfg Config, f Frame, heights []int) []Rect {
	usable := cfg.UsableHalfHourHeight()
	out := make([]Rect, len(heights))
	for i, h := range heights {
		top := f.FirstDividerTop + usable*2*i - h/2
		out[i] = NewRect(f.Direction, f.Width, f.LabelStart, top, f.LabelEnd, top+h)
	}
	return out
}

// ClipEvent restricts r to the visible window and returns the minute the
// box starts at and its duration. Durations under MinDurationMinutes are
// stretched to the minimum and anchored to the end of the window.
func ClipEvent(cfg Config, r calendar.TimeRange) (start, duration int) {
	start = max(cfg.StartMinute(), r.Start)
	duration = min(cfg.EndMinute(), r.End) - start
	if duration < MinDurationMinutes {
		duration = MinDurationMinutes
		start = cfg.EndMinute() - duration
	}
	return start, duration
}

// EventRects returns one rect per range, positioned by the packing spans.
// ranges and p.Spans must be index-aligned.
//
// Rects are not normalized: when 2*EventMargin exceeds a column's width the
// rect has Right < Left, and when the margins exceed the event's pixel
// height it has Bottom < Top. Such rects report [Rect.Empty] and the sinks
// skip them.
func EventRects(cfg Config, f Frame, ranges []calendar.TimeRange, p columns.Packing) []Rect {
	colWidth := 0
	if p.ColumnCount > 0 {
		colWidth = (f.DividerEnd - f.DividerStart) / p.ColumnCount
	}

	out := make([]Rect, len(ranges))
	for i, r := range ranges {
		span := p.Spans[i]
		start := span.Start*colWidth + f.DividerStart + cfg.EventMargin
		end := start + span.Width()*colWidth - 2*cfg.EventMargin

		clipped, duration := ClipEvent(cfg, r)
		offset := int(math.Round(float64(clipped-cfg.StartMinute()) * f.MinuteHeight))
		top := f.FirstDividerTop + offset + cfg.DividerHeight + cfg.EventMargin
		bottom := top + int(math.Round(float64(duration)*f.MinuteHeight)) - 2*cfg.EventMargin - cfg.DividerHeight

		out[i] = NewRect(f.Direction, f.Width, start, top, end, bottom)
	}
	return out
}
