package styles

import (
	"bytes"
	"fmt"
)

// Simple draws soft colored event boxes with rounded corners.
type Simple struct{}

func (Simple) Name() string { return NameSimple }

func (Simple) Palette() Palette {
	return Palette{
		Background:      "#ffffff",
		HourDivider:     "#d0d4da",
		HalfHourDivider: "#eceef1",
		Label:           "#6b7280",
		EventFills:      []string{"#dbeafe", "#dcfce7", "#fef3c7", "#fce7f3", "#ede9fe"},
		EventStroke:     "#94a3b8",
		EventText:       "#1f2937",
	}
}

func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="lift" x="-5%" y="-5%" width="110%" height="120%">
      <feDropShadow dx="0" dy="1" stdDeviation="0.8" flood-opacity="0.18"/>
    </filter>
  </defs>
`)
}

func (s Simple) RenderBackground(buf *bytes.Buffer, width, height int) {
	fmt.Fprintf(buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", width, height, s.Palette().Background)
}

func (s Simple) RenderDivider(buf *bytes.Buffer, d Divider) {
	color := s.Palette().HourDivider
	class := "hour"
	if d.Half {
		color = s.Palette().HalfHourDivider
		class = "half-hour"
	}
	fmt.Fprintf(buf, `  <rect class="divider %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		class, d.X, d.Y, d.W, d.H, color)
}

func (s Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	renderLabel(buf, l, s.Palette().Label, "sans-serif")
}

func (s Simple) RenderEvent(buf *bytes.Buffer, e Event) {
	p := s.Palette()
	fill := e.Color
	if fill == "" {
		fill = p.EventFill(0)
	}
	fmt.Fprintf(buf, `  <g class="event" id="event-%s">`+"\n", e.ID)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" ry="3" fill="%s" stroke="%s" stroke-width="0.5" filter="url(#lift)"/>`+"\n",
		e.X, e.Y, e.W, e.H, fill, p.EventStroke)
	renderEventText(buf, e, p.EventText, "sans-serif")
	buf.WriteString("  </g>\n")
}

// renderLabel writes hour-label text anchored at the label column edge
// nearest the grid.
func renderLabel(buf *bytes.Buffer, l Label, color, family string) {
	x, anchor := l.X+l.W, "end"
	if l.RTL {
		x, anchor = l.X, "start"
	}
	size := max(fontSizeMin, min(fontSizeMax, l.H*0.8))
	fmt.Fprintf(buf, `  <text class="hour-label" x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="central">`,
		x, l.CY, family, size, color, anchor)
	escape(buf, l.Text)
	buf.WriteString("</text>\n")
}

// renderEventText writes the title line and, when it fits, the time line.
func renderEventText(buf *bytes.Buffer, e Event, color, family string) {
	size := EventFontSize(e)
	if e.H < size || e.W < 3*size*fontCharWidth {
		return
	}
	x, anchor := e.X+4, "start"
	if e.RTL {
		x, anchor = e.X+e.W-4, "end"
	}
	avail := e.W - 8
	y := e.Y + size + 1

	fmt.Fprintf(buf, `    <text class="event-title" x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" font-weight="600" fill="%s" text-anchor="%s">`,
		x, y, family, size, color, anchor)
	escape(buf, Truncate(e.Title, avail, size))
	buf.WriteString("</text>\n")

	if ShowTime(e) && e.Time != "" {
		fmt.Fprintf(buf, `    <text class="event-time" x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" fill-opacity="0.75" text-anchor="%s">`,
			x, y+size*lineGap, family, size*0.9, color, anchor)
		escape(buf, Truncate(e.Time, avail, size*0.9))
		buf.WriteString("</text>\n")
	}
}
