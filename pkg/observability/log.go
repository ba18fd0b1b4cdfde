package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level
// structured records to a charm logger. The serve command registers it when
// running with --verbose.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger. A nil logger uses log.Default().
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Install registers h for all hook categories.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("load start", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, eventCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "source", source, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("load complete", "source", source, "events", eventCount, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, eventCount int) {
	h.Logger.Debug("layout start", "events", eventCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, columnCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("layout failed", "duration", d, "err", err)
		return
	}
	h.Logger.Debug("layout complete", "columns", columnCount, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "formats", formats, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, requestID, method, path string) {
	h.Logger.Debug("request", "id", requestID, "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, requestID, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "id", requestID, "method", method, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, requestID, method, path string, err error) {
	h.Logger.Warn("request failed", "id", requestID, "method", method, "path", path, "err", err)
}
