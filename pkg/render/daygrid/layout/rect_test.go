package layout

import (
	"testing"

	"github.com/matzehuels/daygrid/pkg/errors"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Rect
	}{
		{"ltr", LTR, Rect{1, 2, 3, 4}},
		{"rtl", RTL, Rect{17, 2, 19, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRect(tt.dir, 20, 1, 2, 3, 4); got != tt.want {
				t.Errorf("NewRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMirrorRoundTrip(t *testing.T) {
	const width = 360
	for _, c := range [][2]int{{0, 360}, {8, 65}, {71, 191}, {180, 181}} {
		l, r := Mirror(RTL, width, c[0], c[1])
		if l >= r {
			t.Errorf("Mirror(%v) = [%d, %d], want left < right", c, l, r)
		}
		s, e := Mirror(RTL, width, l, r)
		if s != c[0] || e != c[1] {
			t.Errorf("double mirror of %v = [%d, %d]", c, s, e)
		}
		if l2, r2 := Mirror(LTR, width, c[0], c[1]); l2 != c[0] || r2 != c[1] {
			t.Errorf("LTR mirror should be identity, got [%d, %d]", l2, r2)
		}
	}
}

func TestRectMetrics(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 50, Bottom: 80}
	if r.Width() != 40 || r.Height() != 60 {
		t.Errorf("size = %dx%d, want 40x60", r.Width(), r.Height())
	}
	if r.CenterX() != 30 || r.CenterY() != 50 {
		t.Errorf("center = (%v, %v), want (30, 50)", r.CenterX(), r.CenterY())
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !(Rect{Left: 5, Right: 5, Top: 0, Bottom: 10}).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", LTR, false},
		{"ltr", LTR, false},
		{"RTL", RTL, false},
		{" rtl ", RTL, false},
		{"up", LTR, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v", tt.in, err)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidDirection) {
				t.Errorf("error code = %v", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionText(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte("rtl")); err != nil || d != RTL {
		t.Fatalf("UnmarshalText = %v, %v", d, err)
	}
	b, _ := d.MarshalText()
	if string(b) != "rtl" {
		t.Errorf("MarshalText = %s", b)
	}
}
