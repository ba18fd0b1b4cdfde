package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontCharWidth = 0.55
	fontSizeMin   = 7.0
	fontSizeMax   = 13.0
	lineGap       = 1.25
)

// EventFontSize picks a font size that fits the box height, leaving room for
// a second line (the time) when the box is tall enough.
func EventFontSize(e Event) float64 {
	return max(fontSizeMin, min(fontSizeMax, e.H*0.45))
}

// ShowTime reports whether the box has room for the time line.
func ShowTime(e Event) bool {
	return e.H >= 2*lineGap*EventFontSize(e)+4
}

// Truncate shortens s to fit width at fontSize, appending "..".
func Truncate(s string, width, fontSize float64) string {
	maxChars := int(width / (fontSize * fontCharWidth))
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	if maxChars < 3 {
		return ""
	}
	return string(r[:maxChars-2]) + ".."
}

// escape writes s as XML character data.
func escape(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}
