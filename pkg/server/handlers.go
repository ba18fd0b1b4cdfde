package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	dayio "github.com/matzehuels/daygrid/pkg/io"
	"github.com/matzehuels/daygrid/pkg/observability"
	"github.com/matzehuels/daygrid/pkg/pipeline"
)

// request is the body of both POST endpoints.
type request struct {
	Day     json.RawMessage `json:"day"`
	Options json.RawMessage `json:"options,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, pipeline.FormatJSON)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serve(w, r, format)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, format string) {
	day, opts, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = s.logger.With("request_id", RequestIDFrom(r.Context()))

	res, err := s.runner.ExecuteDay(r.Context(), day, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Layout-Columns", strconv.Itoa(res.Stats.ColumnCount))
	w.Header().Set("X-Cache", cacheHeader(res.CacheInfo))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// decode reads the body into a validated day and options applied over the
// server defaults.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (calendar.Day, pipeline.Options, error) {
	opts := s.defaults
	body := http.MaxBytesReader(w, r.Body, s.maxBody)

	var req request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return calendar.Day{}, opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if len(req.Day) == 0 {
		return calendar.Day{}, opts, errors.New(errors.ErrCodeInvalidInput, "request body must contain a day")
	}
	day, err := dayio.ReadJSON(bytes.NewReader(req.Day))
	if err != nil {
		return calendar.Day{}, opts, err
	}
	if len(req.Options) > 0 {
		if err := json.Unmarshal(req.Options, &opts); err != nil {
			return calendar.Day{}, opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options")
		}
	}
	// Copy so requests never share the defaults' backing array.
	opts.Formats = append([]string(nil), opts.Formats...)
	return day, opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	id := RequestIDFrom(ctx)
	observability.HTTP().OnError(ctx, id, r.Method, r.URL.Path, err)

	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", id, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: id,
	})
}

func notFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

func cacheHeader(ci pipeline.CacheInfo) string {
	switch {
	case ci.RenderHit:
		return "hit"
	case ci.LayoutHit:
		return "layout-hit"
	default:
		return "miss"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
