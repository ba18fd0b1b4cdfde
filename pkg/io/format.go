package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/daygrid/pkg/errors"
)

// Format identifies a day file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ics", ".ical":
		return FormatICS, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unrecognized day file extension %q (want .json, .yaml, .yml or .ics)", filepath.Ext(path))
	}
}
