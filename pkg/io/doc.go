// Package io reads and writes day files.
//
// # Overview
//
// A day file describes one calendar day and the events on it. Three input
// formats are supported:
//
//   - JSON (.json)
//   - YAML (.yaml, .yml)
//   - iCalendar (.ics), handled by the [ics] subpackage
//
// JSON and YAML share one schema and can be written back with
// [ExportDay]. iCalendar files are read only.
//
// # Day File Format
//
//	{
//	  "date": "2024-03-14",
//	  "title": "Thursday",
//	  "events": [
//	    {"title": "Standup", "start": "09:00", "end": "09:15"},
//	    {"title": "Design review", "start": "10:30", "end": "12:00", "color": "#fde68a"}
//	  ]
//	}
//
// The same document in YAML:
//
//	date: "2024-03-14"
//	events:
//	  - title: Standup
//	    start: "09:00"
//	    end: "09:15"
//
// # Event Fields
//
// Required:
//   - start, end: wall-clock times as "HH:MM"; "24:00" marks the end of the day
//
// Optional:
//   - id: stable identifier carried through to JSON layouts and SVG ids
//   - title: display text (max 256 characters, no control characters)
//   - color: fill color used instead of the style palette
//   - location: free text, shown by the terminal preview
//
// Events keep their file order. An event whose end is not after its start is
// rejected with INVALID_RANGE so a typo is reported rather than silently
// dropped by the layout.
package io
