package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
)

type dayFile struct {
	Date   string      `json:"date,omitempty" yaml:"date,omitempty"`
	Title  string      `json:"title,omitempty" yaml:"title,omitempty"`
	Events []eventFile `json:"events" yaml:"events"`
}

type eventFile struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string `json:"title" yaml:"title"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

func (df dayFile) toDay() (calendar.Day, error) {
	day := calendar.Day{
		Date:   df.Date,
		Title:  df.Title,
		Events: make([]calendar.Event, 0, len(df.Events)),
	}
	for i, e := range df.Events {
		start, err := calendar.ParseClock(e.Start)
		if err != nil {
			return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d start", i)
		}
		end, err := calendar.ParseClock(e.End)
		if err != nil {
			return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d end", i)
		}
		if err := errors.ValidateMinuteRange(start, end, calendar.MinutesPerDay); err != nil {
			return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidRange, err, "event %d (%s)", i, e.Title)
		}
		if err := errors.ValidateTitle(e.Title); err != nil {
			return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "event %d", i)
		}
		day.Events = append(day.Events, calendar.Event{
			ID:       e.ID,
			Title:    e.Title,
			Range:    calendar.TimeRange{Start: start, End: end},
			Color:    e.Color,
			Location: e.Location,
		})
	}
	return day, nil
}

func fromDay(day calendar.Day) dayFile {
	df := dayFile{Date: day.Date, Title: day.Title, Events: make([]eventFile, len(day.Events))}
	for i, e := range day.Events {
		df.Events[i] = eventFile{
			ID:       e.ID,
			Title:    e.Title,
			Start:    calendar.FormatClock(e.Range.Start),
			End:      calendar.FormatClock(e.Range.End),
			Color:    e.Color,
			Location: e.Location,
		}
	}
	return df
}

// WriteJSON encodes a day as indented JSON. The output can be re-imported
// with [ReadJSON].
func WriteJSON(day calendar.Day, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromDay(day)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes a day as YAML. The output can be re-imported with [ReadYAML].
func WriteYAML(day calendar.Day, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromDay(day)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportDay writes a day to path, choosing JSON or YAML by extension.
func ExportDay(day calendar.Day, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatICS {
		return errors.New(errors.ErrCodeUnsupported, "writing iCalendar files is not supported")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatYAML {
		return WriteYAML(day, f)
	}
	return WriteJSON(day, f)
}
