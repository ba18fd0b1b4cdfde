package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/sink"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/styles"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, res *layout.Result, day calendar.Day, opts Options) (map[string][]byte, error) {
	if res == nil {
		return nil, errors.New(errors.ErrCodePreconditionFailed, "render requires a computed layout")
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(style, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(res, day, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(res, day, sink.WithPNGStyle(style), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, res, day, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(res, day, sink.WithJSONStyle(style.Name()))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	return svgOpts
}
