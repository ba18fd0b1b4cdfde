package sink

import (
	"encoding/json"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

type jsonOutput struct {
	Date        string        `json:"date,omitempty"`
	Title       string        `json:"title,omitempty"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Direction   string        `json:"direction"`
	StartHour   int           `json:"start_hour"`
	EndHour     int           `json:"end_hour"`
	ColumnCount int           `json:"column_count"`
	Style       string        `json:"style,omitempty"`
	Labels      []jsonLabel   `json:"labels"`
	Dividers    []jsonDivider `json:"dividers"`
	Events      []jsonEvent   `json:"events"`
	Frame       layout.Frame  `json:"frame"`
	Config      layout.Config `json:"config"`
}

type jsonLabel struct {
	Hour int         `json:"hour"`
	Text string      `json:"text"`
	Rect layout.Rect `json:"rect"`
}

type jsonDivider struct {
	Kind string      `json:"kind"` // "hour" or "half_hour"
	Rect layout.Rect `json:"rect"`
}

type jsonEvent struct {
	Index       int         `json:"index"`
	ID          string      `json:"id,omitempty"`
	Title       string      `json:"title"`
	Start       string      `json:"start"`
	End         string      `json:"end"`
	StartColumn int         `json:"start_column"`
	EndColumn   int         `json:"end_column"`
	Color       string      `json:"color,omitempty"`
	Rect        layout.Rect `json:"rect"`
}

// JSONOption configures JSON rendering.
type JSONOption func(*jsonOutput)

// WithJSONStyle records the style name in the output.
func WithJSONStyle(name string) JSONOption { return func(o *jsonOutput) { o.Style = name } }

// RenderJSON exports the layout as pretty-printed JSON. Events carry their
// index into day.Events, their column span and their rect, so consumers can
// position their own views without repeating any geometry.
func RenderJSON(res *layout.Result, day calendar.Day, opts ...JSONOption) ([]byte, error) {
	out := jsonOutput{
		Date:        day.Date,
		Title:       day.Title,
		Width:       res.Frame.Width,
		Height:      res.Height,
		Direction:   res.Frame.Direction.String(),
		StartHour:   res.Config.StartHour,
		EndHour:     res.Config.EndHour,
		ColumnCount: res.ColumnCount,
		Frame:       res.Frame,
		Config:      res.Config,
		Labels:      make([]jsonLabel, len(res.HourLabels)),
		Dividers:    make([]jsonDivider, 0, len(res.HourDividers)+len(res.HalfHourDividers)),
		Events:      make([]jsonEvent, len(res.Events)),
	}
	for _, opt := range opts {
		opt(&out)
	}

	for i, r := range res.HourLabels {
		hour := res.Config.StartHour + i
		out.Labels[i] = jsonLabel{Hour: hour, Text: calendar.FormatClock(hour * 60), Rect: r}
	}
	for _, r := range res.HourDividers {
		out.Dividers = append(out.Dividers, jsonDivider{Kind: "hour", Rect: r})
	}
	for _, r := range res.HalfHourDividers {
		out.Dividers = append(out.Dividers, jsonDivider{Kind: "half_hour", Rect: r})
	}
	for k, r := range res.Events {
		idx := res.EventIndex[k]
		je := jsonEvent{
			Index:       idx,
			StartColumn: res.Spans[k].Start,
			EndColumn:   res.Spans[k].End,
			Rect:        r,
		}
		if idx < len(day.Events) {
			ev := day.Events[idx]
			je.ID, je.Title, je.Color = ev.ID, ev.Title, ev.Color
			je.Start = calendar.FormatClock(ev.Range.Start)
			je.End = calendar.FormatClock(ev.Range.End)
		}
		out.Events[k] = je
	}

	return json.MarshalIndent(out, "", "  ")
}
