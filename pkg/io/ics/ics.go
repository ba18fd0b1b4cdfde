// Package ics reduces an iCalendar feed to the events of a single day.
//
// Timed VEVENTs are converted to the display location, clipped to the
// requested date and expressed as wall-clock minutes of that date. An event
// without DTEND ends at DTSTART plus its DURATION. All-day events and events
// that end before they start are skipped. Recurrence rules are not
// expanded: only the first occurrence of a recurring event is considered.
package ics

import (
	"io"
	"sort"
	"strings"
	"time"
	"unicode"

	ical "github.com/arran4/golang-ical"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/errors"
)

// Options selects the day to extract.
type Options struct {
	// Date is the calendar day to extract. Only its year, month and day are
	// used. The zero value selects the day of the earliest timed event.
	Date time.Time

	// Location is the display time zone. Nil means time.Local.
	Location *time.Location
}

// Stats reports what the reader did with each VEVENT.
type Stats struct {
	Total     int // VEVENTs in the feed
	Kept      int // events overlapping the requested day
	AllDay    int // skipped all-day events
	Invalid   int // skipped events with missing or reversed times
	Recurring int // kept or skipped events carrying an RRULE
}

type parsed struct {
	uid, summary, location string
	start, end             time.Time
}

// Read parses an iCalendar stream and returns the events on the selected day,
// sorted by start then end. Read does not close r.
func Read(r io.Reader, opts Options) (calendar.Day, Stats, error) {
	var st Stats
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return calendar.Day{}, st, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse iCalendar")
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	var timed []parsed
	for _, ve := range cal.Events() {
		st.Total++
		if ve.GetProperty(ical.ComponentPropertyRrule) != nil {
			st.Recurring++
		}
		if isAllDay(ve) {
			st.AllDay++
			continue
		}
		start, err := ve.GetStartAt()
		if err != nil {
			st.Invalid++
			continue
		}
		end, err := endAt(ve, start)
		if err != nil || !end.After(start) {
			st.Invalid++
			continue
		}
		timed = append(timed, parsed{
			uid:      propValue(ve, ical.ComponentPropertyUniqueId),
			summary:  propValue(ve, ical.ComponentPropertySummary),
			location: propValue(ve, ical.ComponentPropertyLocation),
			start:    start.In(loc),
			end:      end.In(loc),
		})
	}

	date := opts.Date
	if date.IsZero() {
		if len(timed) == 0 {
			return calendar.Day{Events: []calendar.Event{}}, st, nil
		}
		date = timed[0].start
		for _, p := range timed[1:] {
			if p.start.Before(date) {
				date = p.start
			}
		}
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	day := calendar.Day{Date: dayStart.Format("2006-01-02"), Events: []calendar.Event{}}
	for _, p := range timed {
		if !p.start.Before(dayEnd) || !p.end.After(dayStart) {
			continue
		}
		start := clockMinutes(maxTime(p.start, dayStart), dayEnd)
		end := clockMinutes(minTime(p.end, dayEnd), dayEnd)
		if end <= start {
			st.Invalid++
			continue
		}
		day.Events = append(day.Events, calendar.Event{
			ID:       p.uid,
			Title:    sanitize(p.summary),
			Range:    calendar.TimeRange{Start: start, End: end},
			Location: p.location,
		})
		st.Kept++
	}

	sort.SliceStable(day.Events, func(i, j int) bool {
		a, b := day.Events[i].Range, day.Events[j].Range
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
	return day, st, nil
}

// isAllDay reports DATE-valued starts, either by VALUE=DATE or by a value
// without a time part.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func propValue(ve *ical.VEvent, prop ical.ComponentProperty) string {
	if p := ve.GetProperty(prop); p != nil {
		return p.Value
	}
	return ""
}

// clockMinutes is the wall-clock minute of t in its location, or the end of
// the day for t at or after dayEnd. On 23- and 25-hour days this differs
// from the minutes elapsed since midnight.
func clockMinutes(t, dayEnd time.Time) int {
	if !t.Before(dayEnd) {
		return calendar.MinutesPerDay
	}
	return t.Hour()*60 + t.Minute()
}

// endAt reads DTEND, falling back to DTSTART plus DURATION.
func endAt(ve *ical.VEvent, start time.Time) (time.Time, error) {
	if ve.GetProperty(ical.ComponentPropertyDtEnd) != nil {
		return ve.GetEndAt()
	}
	p := ve.GetProperty(ical.ComponentPropertyDuration)
	if p == nil {
		return time.Time{}, errors.New(errors.ErrCodeInvalidInput, "event has neither DTEND nor DURATION")
	}
	days, d, err := parseDuration(p.Value)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, days).Add(d), nil
}

// parseDuration parses an RFC 5545 dur-value such as "PT1H30M", "P1D" or
// "-P2W". Days and weeks are returned separately as nominal days so they
// follow the wall clock across DST changes.
func parseDuration(v string) (days int, d time.Duration, err error) {
	s := strings.ToUpper(strings.TrimSpace(v))
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || len(s) < 3 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid DURATION %q", v)
	}
	s = s[1:]

	inTime := false
	n, digits := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + int(r-'0')
			digits++
			if digits > 9 {
				return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid DURATION %q", v)
			}
			continue
		case r == 'T' && !inTime && digits == 0:
			inTime = true
			continue
		}
		if digits == 0 {
			return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid DURATION %q", v)
		}
		switch {
		case r == 'W' && !inTime:
			days += 7 * n
		case r == 'D' && !inTime:
			days += n
		case r == 'H' && inTime:
			d += time.Duration(n) * time.Hour
		case r == 'M' && inTime:
			d += time.Duration(n) * time.Minute
		case r == 'S' && inTime:
			d += time.Duration(n) * time.Second
		default:
			return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid DURATION %q", v)
		}
		n, digits = 0, 0
	}
	if digits != 0 || strings.HasSuffix(s, "T") {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid DURATION %q", v)
	}
	return sign * days, time.Duration(sign) * d, nil
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// sanitize drops control characters and caps the length so feed titles pass
// the same checks as hand-written day files.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r != '\t' && unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	r := []rune(strings.TrimSpace(s))
	if len(r) > 200 {
		r = r[:200]
	}
	for len(string(r)) > 256 {
		r = r[:len(r)-1]
	}
	return string(r)
}
