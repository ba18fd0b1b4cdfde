// Package pipeline provides the load → layout → render pipeline for daygrid.
//
// This package implements the complete pipeline used by the CLI and the HTTP
// API. By centralizing this logic, both entry points produce identical
// layouts and artifacts for the same inputs and share one cache.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a day file (JSON, YAML or iCalendar) into a calendar.Day
//  2. Layout: Filter, pack and position the events on a day grid
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Path = "today.yaml"
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	day, err := runner.Load(ctx, opts)
//	res, err := runner.Layout(ctx, day, opts)
//	artifacts, err := runner.Render(ctx, res, day, opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/daygrid/pkg/cache"
	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default container width in pixels.
	DefaultWidth = 480

	// DefaultLabelHeight is the height reserved for each hour label. The
	// renderers draw labels as single lines of text, so every label gets
	// the same measured height.
	DefaultLabelHeight = 14

	// DefaultScale is the PNG pixel scale.
	DefaultScale = 2.0

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameSimple

	// MaxWidth bounds the container width accepted from callers.
	MaxWidth = 8192

	// MaxMetric bounds every grid pixel metric and the label height.
	MaxMetric = 1024

	// MaxHeight bounds the measured grid height in pixels.
	MaxHeight = 32768

	// MaxPixels bounds the scaled PNG canvas (width × height × scale²).
	MaxPixels = 1 << 26
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests. Decode requests
// into [DefaultOptions] so omitted grid metrics keep their defaults.
type Options struct {
	// Load options
	Path     string `json:"-"`
	Date     string `json:"date,omitempty"`     // YYYY-MM-DD, selects the day of an iCalendar feed
	Timezone string `json:"timezone,omitempty"` // IANA zone for iCalendar feeds
	Refresh  bool   `json:"refresh,omitempty"`

	// Layout options
	Grid        layout.Config `json:"grid"`
	Width       int           `json:"width,omitempty"`
	Direction   string        `json:"direction,omitempty"`
	LabelHeight int           `json:"label_height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Title   string   `json:"title,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	var o Options
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	return o
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Day is the loaded day.
	Day calendar.Day

	// DayHash is the content hash of the day.
	DayHash string

	// Layout is the computed grid layout.
	Layout *layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EventCount   int
	VisibleCount int
	ColumnCount  int
	LoadTime     time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the parsed day came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is registered.
func ValidateStyle(style string) error {
	if style == "" {
		return errors.New(errors.ErrCodeInvalidStyle, "style is required")
	}
	_, err := styles.Lookup(style)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the fields used to read a day file.
func (o *Options) ValidateForLoad() error {
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "day file path is required")
	}
	if _, err := o.loadDate(); err != nil {
		return err
	}
	if _, err := o.location(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Grid == (layout.Config{}) {
		o.Grid = layout.DefaultConfig()
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Direction == "" {
		o.Direction = layout.LTR.String()
	}
	if o.LabelHeight == 0 {
		o.LabelHeight = DefaultLabelHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Width < 0 || o.Width > MaxWidth {
		return errors.New(errors.ErrCodeInvalidInput, "width %d outside [0, %d]", o.Width, MaxWidth)
	}
	if o.LabelHeight < 0 || o.LabelHeight > MaxMetric {
		return errors.New(errors.ErrCodeInvalidInput, "label height %d outside [0, %d]", o.LabelHeight, MaxMetric)
	}
	if err := validateMetrics(o.Grid); err != nil {
		return err
	}
	if h := o.measuredHeight(); h > MaxHeight {
		return errors.New(errors.ErrCodeInvalidInput, "grid height %dpx exceeds %dpx", h, MaxHeight)
	}
	_, err := layout.ParseDirection(o.Direction)
	return err
}

// validateMetrics rejects pixel metrics above MaxMetric. Negative values are
// left to the grid, which clamps them to zero.
func validateMetrics(cfg layout.Config) error {
	metrics := []struct {
		name  string
		value int
	}{
		{"divider_height", cfg.DividerHeight},
		{"half_hour_height", cfg.HalfHourHeight},
		{"hour_label_width", cfg.HourLabelWidth},
		{"hour_label_margin_end", cfg.HourLabelMarginEnd},
		{"event_margin", cfg.EventMargin},
		{"padding.top", cfg.Padding.Top},
		{"padding.bottom", cfg.Padding.Bottom},
		{"padding.start", cfg.Padding.Start},
		{"padding.end", cfg.Padding.End},
	}
	for _, m := range metrics {
		if m.value > MaxMetric {
			return errors.New(errors.ErrCodeInvalidInput, "grid %s %d exceeds %d", m.name, m.value, MaxMetric)
		}
	}
	return nil
}

// measuredHeight is the grid height the layout pass will produce. Call after
// the metrics are bounded.
func (o *Options) measuredHeight() int {
	cfg, _ := o.Grid.Normalize()
	_, h := layout.Measure(cfg, o.Width, layout.LTR, []int{o.LabelHeight, o.LabelHeight})
	return h
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "scale %.2f outside (0, 8]", o.Scale)
	}
	if slices.Contains(o.Formats, FormatPNG) {
		px := float64(o.Width) * float64(o.measuredHeight()) * o.Scale * o.Scale
		if px > MaxPixels {
			return errors.New(errors.ErrCodeInvalidInput,
				"png of %.0f pixels exceeds %d; lower width, grid metrics or scale", px, MaxPixels)
		}
	}
	if err := errors.ValidateTitle(o.Title); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// LayoutDirection returns the parsed direction. Call after ValidateForLayout.
func (o *Options) LayoutDirection() layout.Direction {
	d, _ := layout.ParseDirection(o.Direction)
	return d
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	g := o.Grid
	return cache.LayoutKeyOpts{
		StartHour:      g.StartHour,
		EndHour:        g.EndHour,
		Width:          o.Width,
		Direction:      o.Direction,
		DividerHeight:  g.DividerHeight,
		HalfHourHeight: g.HalfHourHeight,
		LabelWidth:     g.HourLabelWidth,
		LabelHeight:    o.LabelHeight,
		LabelMarginEnd: g.HourLabelMarginEnd,
		EventMargin:    g.EventMargin,
		Padding:        [4]int{g.Padding.Top, g.Padding.Bottom, g.Padding.Start, g.Padding.End},
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Title:  o.Title,
	}
	if format == FormatPNG {
		opts.Style = fmt.Sprintf("%s@%.2fx", o.Style, o.Scale)
	}
	return opts
}

func (o *Options) loadDate() (time.Time, error) {
	if o.Date == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", o.Date)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid date %q (want YYYY-MM-DD)", o.Date)
	}
	return t, nil
}

func (o *Options) location() (*time.Location, error) {
	if o.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "unknown timezone %q", o.Timezone)
	}
	return loc, nil
}
