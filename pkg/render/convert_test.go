package render

import (
	"context"
	"testing"

	"github.com/matzehuels/daygrid/pkg/errors"
)

func TestConvertMissingBinary(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "daygrid-no-such-converter"
	defer func() { rsvgBinary = old }()

	if Available() {
		t.Fatal("Available() = true for missing binary")
	}
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("ToPDF error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPNG(context.Background(), []byte("<svg/>"), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("ToPNG error = %v, want UNSUPPORTED", err)
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	out, err := ToPDF(context.Background(), svg)
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if len(out) < 4 || string(out[:4]) != "%PDF" {
		t.Fatalf("output does not start with %%PDF: %q", out[:min(len(out), 8)])
	}
}
