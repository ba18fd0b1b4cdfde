package io

import (
	"encoding/json"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/io/ics"
)

// ImportOptions controls how iCalendar files are reduced to a single day.
// JSON and YAML files ignore it.
type ImportOptions = ics.Options

// ReadJSON decodes a JSON day file from r.
//
// ReadJSON returns an error if the JSON is malformed, a time is not "HH:MM",
// a range is empty or reversed, or a title is unusable. Errors name the
// offending event by position. ReadJSON does not close r.
func ReadJSON(r io.Reader) (calendar.Day, error) {
	var df dayFile
	if err := json.NewDecoder(r).Decode(&df); err != nil {
		return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON")
	}
	return df.toDay()
}

// ReadYAML decodes a YAML day file from r. Validation matches [ReadJSON].
func ReadYAML(r io.Reader) (calendar.Day, error) {
	var df dayFile
	if err := yaml.NewDecoder(r).Decode(&df); err != nil {
		if err == io.EOF {
			return calendar.Day{Events: []calendar.Event{}}, nil
		}
		return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode YAML")
	}
	return df.toDay()
}

// ReadDay decodes r in the given format.
func ReadDay(r io.Reader, format Format, opts ImportOptions) (calendar.Day, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatICS:
		day, _, err := ics.Read(r, opts)
		return day, err
	default:
		return calendar.Day{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported day format %q", format)
	}
}

// ImportDay reads the day file at path, choosing the decoder by extension.
func ImportDay(path string, opts ImportOptions) (calendar.Day, error) {
	if err := errors.ValidatePath(path); err != nil {
		return calendar.Day{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return calendar.Day{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return calendar.Day{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return calendar.Day{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	day, err := ReadDay(f, format, opts)
	if err != nil {
		return calendar.Day{}, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return day, nil
}
