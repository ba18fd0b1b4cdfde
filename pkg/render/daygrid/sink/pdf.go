package sink

import (
	"context"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, res *layout.Result, day calendar.Day, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(res, day, opts...))
}
