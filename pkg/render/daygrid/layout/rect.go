package layout

import (
	"strings"

	"github.com/matzehuels/daygrid/pkg/errors"
)

// Direction is the horizontal reading direction of a layout pass.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDirection parses "ltr" or "rtl" (case-insensitive). The empty string
// is LTR.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q (want ltr or rtl)", s)
}

// Rect is an axis-aligned rectangle in container pixels.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() int { return r.Bottom - r.Top }

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 { return float64(r.Left+r.Right) / 2 }

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 { return float64(r.Top+r.Bottom) / 2 }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Mirror maps the logical horizontal extent [start, end] to screen
// [left, right] within a container of the given width.
func Mirror(dir Direction, width, start, end int) (left, right int) {
	if dir == RTL {
		return width - end, width - start
	}
	return start, end
}

// NewRect builds a screen rect from logical start/end coordinates. This is
// the only place the layout consults the direction.
func NewRect(dir Direction, width, start, top, end, bottom int) Rect {
	left, right := Mirror(dir, width, start, end)
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}
