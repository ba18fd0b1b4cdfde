package layout

import (
	"github.com/matzehuels/daygrid/pkg/errors"
)

// Hour bounds and event clamp.
const (
	MinStartHour       = 0
	MaxEndHour         = 24
	MinDurationMinutes = 15
)

// Padding insets the grid inside its container. Start and End are logical
// edges: Start is the left edge for LTR and the right edge for RTL.
type Padding struct {
	Top    int `json:"top" toml:"top"`
	Bottom int `json:"bottom" toml:"bottom"`
	Start  int `json:"start" toml:"start"`
	End    int `json:"end" toml:"end"`
}

// Config is the day's visible window and pixel metrics.
type Config struct {
	StartHour          int     `json:"start_hour" toml:"start_hour"`
	EndHour            int     `json:"end_hour" toml:"end_hour"`
	DividerHeight      int     `json:"divider_height" toml:"divider_height"`
	HalfHourHeight     int     `json:"half_hour_height" toml:"half_hour_height"`
	HourLabelWidth     int     `json:"hour_label_width" toml:"hour_label_width"`
	HourLabelMarginEnd int     `json:"hour_label_margin_end" toml:"hour_label_margin_end"`
	EventMargin        int     `json:"event_margin" toml:"event_margin"`
	Padding            Padding `json:"padding" toml:"padding"`
}

// DefaultConfig returns a full-day grid with compact metrics.
func DefaultConfig() Config {
	return Config{
		StartHour:          MinStartHour,
		EndHour:            MaxEndHour,
		DividerHeight:      1,
		HalfHourHeight:     24,
		HourLabelWidth:     48,
		HourLabelMarginEnd: 8,
		EventMargin:        2,
		Padding:            Padding{Top: 8, Bottom: 8, Start: 8, End: 8},
	}
}

// Normalize clamps the hours to [0, 24] and every pixel metric to >= 0. If
// the window is still empty it falls back to the full day and returns an
// INVALID_CONFIG error describing the substitution; the returned Config is
// usable either way.
func (c Config) Normalize() (Config, error) {
	c.StartHour = clamp(c.StartHour, MinStartHour, MaxEndHour)
	c.EndHour = clamp(c.EndHour, MinStartHour, MaxEndHour)
	c.DividerHeight = max(c.DividerHeight, 0)
	c.HalfHourHeight = max(c.HalfHourHeight, 0)
	c.HourLabelWidth = max(c.HourLabelWidth, 0)
	c.HourLabelMarginEnd = max(c.HourLabelMarginEnd, 0)
	c.EventMargin = max(c.EventMargin, 0)
	c.Padding.Top = max(c.Padding.Top, 0)
	c.Padding.Bottom = max(c.Padding.Bottom, 0)
	c.Padding.Start = max(c.Padding.Start, 0)
	c.Padding.End = max(c.Padding.End, 0)

	if c.StartHour >= c.EndHour {
		err := errors.New(errors.ErrCodeInvalidConfig,
			"empty hour window [%d, %d), using [%d, %d)", c.StartHour, c.EndHour, MinStartHour, MaxEndHour)
		c.StartHour, c.EndHour = MinStartHour, MaxEndHour
		return c, err
	}
	return c, nil
}

// UsableHalfHourHeight is the height of one half-hour slot including its divider.
func (c Config) UsableHalfHourHeight() int { return c.HalfHourHeight + c.DividerHeight }

// StartMinute returns the first visible minute.
func (c Config) StartMinute() int { return c.StartHour * 60 }

// EndMinute returns the end of the visible window.
func (c Config) EndMinute() int { return c.EndHour * 60 }

// Counts holds values derived from the hour window.
type Counts struct {
	Hours            int `json:"hours"`
	HourDividers     int `json:"hour_dividers"`
	HalfHourDividers int `json:"half_hour_dividers"`
	HourLabels       int `json:"hour_labels"`
	Minutes          int `json:"minutes"`
}

// Counts derives the divider and label counts. It is computed on every call
// so it can never go stale after the window changes.
func (c Config) Counts() Counts {
	hours := c.EndHour - c.StartHour
	return Counts{
		Hours:            hours,
		HourDividers:     hours + 1,
		HalfHourDividers: hours,
		HourLabels:       hours + 1,
		Minutes:          hours * 60,
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
