// Package calendar defines the day-level domain types shared by the readers,
// the layout engine and the renderers.
//
// Times are integer minutes from the start of the rendered day. A day file
// always describes a single calendar date; readers pre-clip anything that
// spills past midnight so the engine never sees ranges outside [0, 1440].
package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/daygrid/pkg/errors"
)

// MinutesPerHour and MinutesPerDay bound the minute domain.
const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// =============================================================================
// TimeRange
// =============================================================================

// TimeRange is a half-open span of minutes [Start, End).
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Conflicts reports whether r and o overlap. Ranges that only touch at an
// endpoint do not conflict; every non-empty range conflicts with itself.
func (r TimeRange) Conflicts(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Duration returns End - Start.
func (r TimeRange) Duration() int { return r.End - r.Start }

// Valid reports whether End is after Start.
func (r TimeRange) Valid() bool { return r.End > r.Start }

// Within reports whether r intersects the window [lo, hi).
func (r TimeRange) Within(lo, hi int) bool {
	return r.End > lo && r.Start < hi
}

// Clip returns r restricted to [lo, hi) and whether anything remains.
func (r TimeRange) Clip(lo, hi int) (TimeRange, bool) {
	c := TimeRange{Start: max(r.Start, lo), End: min(r.End, hi)}
	return c, c.Valid()
}

// String formats the range as "HH:MM-HH:MM".
func (r TimeRange) String() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}

// ParseClock parses "H:MM" or "HH:MM" into minutes from midnight.
// "24:00" is accepted as the end of the day.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || len(hh) == 0 || len(hh) > 2 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid minute in %q", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "time %q out of range", s)
	}
	return h*MinutesPerHour + m, nil
}

// FormatClock formats minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// =============================================================================
// Event and Day
// =============================================================================

// Event is a single time-bounded entry on a day.
type Event struct {
	ID       string    `json:"id,omitempty"`
	Title    string    `json:"title"`
	Range    TimeRange `json:"range"`
	Color    string    `json:"color,omitempty"`
	Location string    `json:"location,omitempty"`
}

// Day is the unit of input to the pipeline: one date and its events in
// display order. Event order matters; the column packer is order-dependent.
type Day struct {
	Date   string  `json:"date,omitempty"`
	Title  string  `json:"title,omitempty"`
	Events []Event `json:"events"`
}

// Ranges returns the events' time ranges in order.
func (d Day) Ranges() []TimeRange {
	out := make([]TimeRange, len(d.Events))
	for i, ev := range d.Events {
		out[i] = ev.Range
	}
	return out
}

// Validate checks every event range and title.
func (d Day) Validate() error {
	for i, ev := range d.Events {
		if err := errors.ValidateMinuteRange(ev.Range.Start, ev.Range.End, MinutesPerDay); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d (%q)", i, ev.Title)
		}
		if err := errors.ValidateTitle(ev.Title); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d", i)
		}
	}
	return nil
}
