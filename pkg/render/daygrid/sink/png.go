package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style styles.Style
	scale float64
}

// WithPNGStyle sets the palette source (default styles.Simple).
func WithPNGStyle(s styles.Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// WithScale sets the pixel scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG rasterizes the layout in-process. Text uses the rasterizer's
// built-in bitmap face, so no font files or external tools are needed.
func RenderPNG(res *layout.Result, day calendar.Day, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Simple{}, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	p := r.style.Palette()
	sc := buildScene(res, day, p)

	w := max(1, int(float64(sc.width)*r.scale))
	h := max(1, int(float64(sc.height)*r.scale))
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	dc.SetHexColor(p.Background)
	dc.Clear()

	for _, d := range sc.dividers {
		if d.Half {
			dc.SetHexColor(p.HalfHourDivider)
		} else {
			dc.SetHexColor(p.HourDivider)
		}
		dc.DrawRectangle(d.X, d.Y, d.W, max(d.H, 0.5))
		dc.Fill()
	}

	dc.SetHexColor(p.Label)
	for _, l := range sc.labels {
		if l.RTL {
			dc.DrawStringAnchored(l.Text, l.X, l.CY, 0, 0.35)
		} else {
			dc.DrawStringAnchored(l.Text, l.X+l.W, l.CY, 1, 0.35)
		}
	}

	for _, e := range sc.events {
		dc.DrawRoundedRectangle(e.X, e.Y, e.W, e.H, 3)
		dc.SetHexColor(e.Color)
		dc.FillPreserve()
		dc.SetHexColor(p.EventStroke)
		dc.SetLineWidth(0.5)
		dc.Stroke()

		if e.H < 14 {
			continue
		}
		dc.SetHexColor(p.EventText)
		title := styles.Truncate(e.Title, e.W-8, 13)
		if e.RTL {
			dc.DrawStringAnchored(title, e.X+e.W-4, e.Y+4, 1, 1)
		} else {
			dc.DrawStringAnchored(title, e.X+4, e.Y+4, 0, 1)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
