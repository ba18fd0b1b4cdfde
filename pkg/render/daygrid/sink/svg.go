package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	title string
}

// WithStyle sets the visual style (default styles.Simple).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle adds a <title> element, shown by browsers as a tooltip.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws the layout as a standalone SVG document. Dividers are
// drawn first, then labels, then events, so events sit on top of the grid.
func RenderSVG(res *layout.Result, day calendar.Day, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	sc := buildScene(res, day, r.style.Palette())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" direction="%s">`+"\n",
		sc.width, sc.height, sc.width, sc.height, res.Frame.Direction)
	if r.title != "" {
		buf.WriteString("  <title>")
		_ = xml.EscapeText(&buf, []byte(r.title))
		buf.WriteString("</title>\n")
	}

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, sc.width, sc.height)
	for _, d := range sc.dividers {
		r.style.RenderDivider(&buf, d)
	}
	for _, l := range sc.labels {
		r.style.RenderLabel(&buf, l)
	}
	for _, e := range sc.events {
		r.style.RenderEvent(&buf, e)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
