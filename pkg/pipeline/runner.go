package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/daygrid/pkg/cache"
	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/httputil"
	"github.com/matzehuels/daygrid/pkg/observability"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Every layout builds its own grid, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Feeds  *httputil.Client
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Feeds:  httputil.NewClient(c, cache.TTLFeed),
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	day, dayHash, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	r.Logger.Info("loaded day",
		"date", day.Date,
		"events", len(day.Events),
		"duration", loadTime)

	result, err := r.execute(ctx, day, dayHash, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	result.CacheInfo.LoadHit = loadHit
	return result, nil
}

// ExecuteDay runs the layout → render stages for an already loaded day.
// The HTTP API uses this for days posted in request bodies.
func (r *Runner) ExecuteDay(ctx context.Context, day calendar.Day, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := day.Validate(); err != nil {
		return nil, err
	}

	dayHash, err := cache.HashJSON(day)
	if err != nil {
		return nil, fmt.Errorf("hash day: %w", err)
	}
	return r.execute(ctx, day, dayHash, opts)
}

func (r *Runner) execute(ctx context.Context, day calendar.Day, dayHash string, opts Options) (*Result, error) {
	result := &Result{
		Day:       day,
		DayHash:   dayHash,
		Artifacts: make(map[string][]byte),
	}
	result.Stats.EventCount = len(day.Events)

	layoutStart := time.Now()
	res, layoutHit, err := r.layout(ctx, day, dayHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.VisibleCount = len(res.Events)
	result.Stats.ColumnCount = res.ColumnCount
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"visible", len(res.Events),
		"columns", res.ColumnCount,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, day, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads the day file with caching. It returns the day,
// the hash of the file contents and whether the parsed day came from cache.
// The file is always read so that edits invalidate the cache; only decoding
// is skipped on a hit.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (calendar.Day, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return calendar.Day{}, "", false, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnLoadStart(ctx, opts.Path)

	day, hash, hit, err := r.load(ctx, opts)
	hooks.OnLoadComplete(ctx, opts.Path, len(day.Events), time.Since(start), err)
	return day, hash, hit, err
}

func (r *Runner) load(ctx context.Context, opts Options) (calendar.Day, string, bool, error) {
	data, err := readSource(ctx, r.Feeds, opts)
	if err != nil {
		return calendar.Day{}, "", false, err
	}
	hash := cache.Hash(data)
	// Date and zone change how an iCalendar feed is reduced to a day.
	cacheKey := r.Keyer.DayKey(opts.Path+"|"+opts.Date+"|"+opts.Timezone, hash)

	if !opts.Refresh {
		if cached, ok := r.cacheGet(ctx, "day", cacheKey); ok {
			var day calendar.Day
			if err := json.Unmarshal(cached, &day); err == nil {
				return day, hash, true, nil
			}
		}
	}

	day, err := decodeDay(data, opts)
	if err != nil {
		return calendar.Day{}, "", false, err
	}
	if encoded, err := json.Marshal(day); err == nil {
		r.cacheSet(ctx, "day", cacheKey, encoded, cache.TTLLayout)
	}
	return day, hash, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (calendar.Day, error) {
	day, _, _, err := r.LoadWithCacheInfo(ctx, opts)
	return day, err
}

// LayoutWithCacheInfo computes a layout with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, day calendar.Day, opts Options) (*layout.Result, bool, error) {
	dayHash, err := cache.HashJSON(day)
	if err != nil {
		return nil, false, fmt.Errorf("hash day: %w", err)
	}
	return r.layout(ctx, day, dayHash, opts)
}

func (r *Runner) layout(ctx context.Context, day calendar.Day, dayHash string, opts Options) (*layout.Result, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnLayoutStart(ctx, len(day.Events))

	cacheKey := r.Keyer.LayoutKey(dayHash, opts.LayoutKeyOpts())
	if !opts.Refresh {
		if data, ok := r.cacheGet(ctx, "layout", cacheKey); ok {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				hooks.OnLayoutComplete(ctx, cached.ColumnCount, time.Since(start), nil)
				return &cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}

	res, err := ComputeLayout(day, opts)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnLayoutComplete(ctx, res.ColumnCount, time.Since(start), nil)

	if data, err := json.Marshal(res); err == nil {
		r.cacheSet(ctx, "layout", cacheKey, data, cache.TTLLayout)
	}
	return res, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, day calendar.Day, opts Options) (*layout.Result, error) {
	res, _, err := r.LayoutWithCacheInfo(ctx, day, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Artifacts are keyed by both the layout and the day, since titles and
// colors come from the day rather than the layout.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *layout.Result, day calendar.Day, opts Options) (map[string][]byte, bool, error) {
	if res == nil {
		return nil, false, errors.New(errors.ErrCodePreconditionFailed, "render requires a computed layout")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hash, err := cache.HashJSON(struct {
		Day    calendar.Day   `json:"day"`
		Layout *layout.Result `json:"layout"`
	}{day, res})
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte)
		for _, format := range opts.Formats {
			data, ok := r.cacheGet(ctx, "artifact", r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)))
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	rendered, err := Render(ctx, res, day, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		r.cacheSet(ctx, "artifact", r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res *layout.Result, day calendar.Day, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, day, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheGet reads a key and reports the hit or miss. Backend errors count as
// misses; the pipeline never fails because a cache is unavailable.
func (r *Runner) cacheGet(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) cacheSet(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
