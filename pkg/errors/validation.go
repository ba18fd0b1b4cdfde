package errors

import (
	"strings"
	"unicode"
)

// maxTitleLength bounds event titles read from untrusted input.
const maxTitleLength = 256

// ValidateMinuteRange validates an event's minute range as read from input.
//
// Validation rules:
//   - Both ends within [0, limit]
//   - End strictly after start
//
// The layout engine itself never rejects ranges; readers call this so that
// malformed files are reported to the user instead of silently dropped.
func ValidateMinuteRange(start, end, limit int) error {
	if start < 0 || start > limit {
		return New(ErrCodeInvalidRange, "start minute %d outside [0, %d]", start, limit)
	}
	if end < 0 || end > limit {
		return New(ErrCodeInvalidRange, "end minute %d outside [0, %d]", end, limit)
	}
	if end <= start {
		return New(ErrCodeInvalidRange, "end minute %d must be after start minute %d", end, start)
	}
	return nil
}

// ValidateTitle validates an event title for rendering.
// It rejects control characters (other than tab) and overly long titles,
// since titles are written verbatim into SVG text nodes and terminal output.
func ValidateTitle(title string) error {
	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "event title too long (max %d characters)", maxTitleLength)
	}
	for _, r := range title {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "event title contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes
//   - No path traversal sequences (..) in relative paths
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "path contains invalid characters")
	}
	if !strings.HasPrefix(path, "/") && strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}
	return nil
}
