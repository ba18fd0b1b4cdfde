package styles

import (
	"bytes"
	"slices"

	"github.com/matzehuels/daygrid/pkg/errors"
)

// Style names.
const (
	NameSimple = "simple"
	NameMono   = "mono"
)

// Style defines the visual appearance of a day grid.
type Style interface {
	// Name returns the style's lookup name.
	Name() string
	// Palette returns the colors used by the style.
	Palette() Palette
	// RenderDefs writes SVG <defs> content (filters, markers).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the full-canvas background.
	RenderBackground(buf *bytes.Buffer, width, height int)
	// RenderDivider writes one hour or half-hour divider.
	RenderDivider(buf *bytes.Buffer, d Divider)
	// RenderLabel writes one hour label.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderEvent writes one event box and its text.
	RenderEvent(buf *bytes.Buffer, e Event)
}

// Palette lists a style's colors as hex strings.
type Palette struct {
	Background      string
	HourDivider     string
	HalfHourDivider string
	Label           string
	EventFills      []string
	EventStroke     string
	EventText       string
}

// EventFill returns the fill for the i-th event, cycling through EventFills.
func (p Palette) EventFill(i int) string {
	if len(p.EventFills) == 0 {
		return "#cccccc"
	}
	return p.EventFills[i%len(p.EventFills)]
}

// Divider is a horizontal grid line.
type Divider struct {
	X, Y, W, H float64
	Half       bool // half-hour divider
}

// Label is an hour label positioned in the label column.
type Label struct {
	Text       string
	X, Y, W, H float64
	CX, CY     float64
	RTL        bool // text anchors to the right edge
}

// Event is a positioned event box.
type Event struct {
	ID         string
	Title      string
	Time       string // formatted time range, e.g. "09:00-10:30"
	X, Y, W, H float64
	Color      string
	RTL        bool
}

var registry = map[string]Style{
	NameSimple: Simple{},
	NameMono:   Mono{},
}

// Lookup returns the style registered under name. The empty name resolves
// to Simple.
func Lookup(name string) (Style, error) {
	if name == "" {
		return Simple{}, nil
	}
	if s, ok := registry[name]; ok {
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (available: %v)", name, Names())
}

// Names returns the registered style names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
