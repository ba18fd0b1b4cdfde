package sink

import (
	"strconv"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/styles"
)

// scene is the style-ready form of a layout: every rect paired with the
// text and color it is drawn with.
type scene struct {
	width, height int
	dividers      []styles.Divider
	labels        []styles.Label
	events        []styles.Event
}

func buildScene(res *layout.Result, day calendar.Day, palette styles.Palette) scene {
	rtl := res.Frame.Direction == layout.RTL
	s := scene{width: res.Frame.Width, height: res.Height}

	for _, r := range res.HourDividers {
		s.dividers = append(s.dividers, divider(r, false))
	}
	for _, r := range res.HalfHourDividers {
		s.dividers = append(s.dividers, divider(r, true))
	}

	for i, r := range res.HourLabels {
		s.labels = append(s.labels, styles.Label{
			Text: calendar.FormatClock((res.Config.StartHour + i) * calendar.MinutesPerHour),
			X:    float64(r.Left), Y: float64(r.Top),
			W: float64(r.Width()), H: float64(r.Height()),
			CX: r.CenterX(), CY: r.CenterY(),
			RTL: rtl,
		})
	}

	// Empty or inverted event rects stay in the layout but are not drawn.
	for k, r := range res.Events {
		if r.Empty() {
			continue
		}
		orig := res.EventIndex[k]
		ev := styles.Event{
			ID: strconv.Itoa(orig),
			X:  float64(r.Left), Y: float64(r.Top),
			W: float64(r.Width()), H: float64(r.Height()),
			Color: palette.EventFill(k),
			RTL:   rtl,
		}
		if orig < len(day.Events) {
			src := day.Events[orig]
			ev.Title = src.Title
			ev.Time = src.Range.String()
			if src.Color != "" {
				ev.Color = src.Color
			}
		}
		s.events = append(s.events, ev)
	}
	return s
}

func divider(r layout.Rect, half bool) styles.Divider {
	return styles.Divider{
		X: float64(r.Left), Y: float64(r.Top),
		W: float64(r.Width()), H: float64(r.Height()),
		Half: half,
	}
}
