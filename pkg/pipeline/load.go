package pipeline

import (
	"bytes"
	"context"
	"os"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
	"github.com/matzehuels/daygrid/pkg/httputil"
	dayio "github.com/matzehuels/daygrid/pkg/io"
)

// readSource returns the raw bytes of the day file named by opts.Path.
// URLs are downloaded through feeds.
func readSource(ctx context.Context, feeds *httputil.Client, opts Options) ([]byte, error) {
	if httputil.IsURL(opts.Path) {
		return feeds.Fetch(ctx, opts.Path, opts.Refresh)
	}
	if err := errors.ValidatePath(opts.Path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", opts.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.Path)
	}
	return data, nil
}

// decodeDay decodes day file bytes using the format implied by opts.Path.
// Remote feeds are always iCalendar.
func decodeDay(data []byte, opts Options) (calendar.Day, error) {
	format := dayio.FormatICS
	if !httputil.IsURL(opts.Path) {
		var err error
		if format, err = dayio.FormatFromPath(opts.Path); err != nil {
			return calendar.Day{}, err
		}
	}
	date, err := opts.loadDate()
	if err != nil {
		return calendar.Day{}, err
	}
	loc, err := opts.location()
	if err != nil {
		return calendar.Day{}, err
	}
	day, err := dayio.ReadDay(bytes.NewReader(data), format, dayio.ImportOptions{Date: date, Location: loc})
	if err != nil {
		return calendar.Day{}, errors.Wrap(errors.GetCode(err), err, "read %s", opts.Path)
	}
	if err := day.Validate(); err != nil {
		return calendar.Day{}, err
	}
	return day, nil
}
