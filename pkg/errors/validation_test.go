package errors

import (
	"strings"
	"testing"
)

func TestValidateMinuteRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantErr    bool
	}{
		{"whole day", 0, 1440, false},
		{"morning", 540, 600, false},
		{"one minute", 10, 11, false},

		{"empty", 60, 60, true},
		{"reversed", 120, 60, true},
		{"negative start", -5, 60, true},
		{"past midnight", 1380, 1500, true},
		{"end at limit", 1380, 1440, false},
		{"end past limit", 1380, 1441, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMinuteRange(tt.start, tt.end, 24*60)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMinuteRange(%d, %d) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRange) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidRange)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"plain", "Standup", false},
		{"unicode", "Réunion d'équipe", false},
		{"tab", "Lunch\twith team", false},

		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"too long", strings.Repeat("a", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "days/monday.yaml", false},
		{"absolute", "/tmp/day.json", false},

		{"empty", "", true},
		{"null byte", "day\x00.json", true},
		{"traversal", "../etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
