package styles

import (
	"bytes"
	"fmt"
)

// Mono draws black outlines on white, for printing.
type Mono struct{}

func (Mono) Name() string { return NameMono }

func (Mono) Palette() Palette {
	return Palette{
		Background:      "#ffffff",
		HourDivider:     "#000000",
		HalfHourDivider: "#888888",
		Label:           "#000000",
		EventFills:      []string{"#ffffff", "#f2f2f2"},
		EventStroke:     "#000000",
		EventText:       "#000000",
	}
}

func (Mono) RenderDefs(*bytes.Buffer) {}

func (m Mono) RenderBackground(buf *bytes.Buffer, width, height int) {
	fmt.Fprintf(buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", width, height, m.Palette().Background)
}

func (m Mono) RenderDivider(buf *bytes.Buffer, d Divider) {
	p := m.Palette()
	if d.Half {
		y := d.Y + d.H/2
		fmt.Fprintf(buf, `  <line class="divider half-hour" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-dasharray="4 3"/>`+"\n",
			d.X, y, d.X+d.W, y, p.HalfHourDivider, max(d.H, 0.5))
		return
	}
	fmt.Fprintf(buf, `  <rect class="divider hour" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		d.X, d.Y, d.W, d.H, p.HourDivider)
}

func (m Mono) RenderLabel(buf *bytes.Buffer, l Label) {
	renderLabel(buf, l, m.Palette().Label, "monospace")
}

func (m Mono) RenderEvent(buf *bytes.Buffer, e Event) {
	p := m.Palette()
	fmt.Fprintf(buf, `  <g class="event" id="event-%s">`+"\n", e.ID)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		e.X, e.Y, e.W, e.H, p.EventFill(0), p.EventStroke)
	renderEventText(buf, e, p.EventText, "monospace")
	buf.WriteString("  </g>\n")
}
