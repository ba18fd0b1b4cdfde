package calendar

import (
	"testing"

	"github.com/matzehuels/daygrid/pkg/errors"
)

func TestConflicts(t *testing.T) {
	base := TimeRange{Start: 20, End: 40}

	tests := []struct {
		name  string
		other TimeRange
		want  bool
	}{
		{"entirely before", TimeRange{5, 15}, false},
		{"entirely after", TimeRange{50, 90}, false},
		{"touches start", TimeRange{5, 20}, false},
		{"touches end", TimeRange{40, 90}, false},
		{"identical", TimeRange{20, 40}, true},
		{"contains", TimeRange{10, 60}, true},
		{"contained", TimeRange{25, 35}, true},
		{"overlaps start", TimeRange{10, 35}, true},
		{"overlaps end", TimeRange{25, 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Conflicts(tt.other); got != tt.want {
				t.Errorf("%v.Conflicts(%v) = %v, want %v", base, tt.other, got, tt.want)
			}
			if got := tt.other.Conflicts(base); got != tt.want {
				t.Errorf("conflict should be symmetric: %v.Conflicts(%v) = %v", tt.other, base, got)
			}
		})
	}

	if !base.Conflicts(base) {
		t.Error("a range should conflict with itself")
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name   string
		r      TimeRange
		lo, hi int
		want   TimeRange
		ok     bool
	}{
		{"inside", TimeRange{600, 660}, 480, 1080, TimeRange{600, 660}, true},
		{"straddles start", TimeRange{450, 510}, 480, 1080, TimeRange{480, 510}, true},
		{"straddles end", TimeRange{1050, 1200}, 480, 1080, TimeRange{1050, 1080}, true},
		{"before", TimeRange{400, 480}, 480, 1080, TimeRange{480, 480}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.Clip(tt.lo, tt.hi)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Clip() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	lo, hi := 480, 1080
	if (TimeRange{470, 480}).Within(lo, hi) {
		t.Error("range ending at window start should be outside")
	}
	if !(TimeRange{470, 481}).Within(lo, hi) {
		t.Error("range ending one minute into window should be inside")
	}
	if (TimeRange{1080, 1100}).Within(lo, hi) {
		t.Error("range starting at window end should be outside")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"9:30", 570, false},
		{"13:05", 785, false},
		{" 23:59 ", 1439, false},
		{"24:00", 1440, false},

		{"24:01", 0, true},
		{"25:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %v", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeRangeString(t *testing.T) {
	if got := (TimeRange{Start: 570, End: 1440}).String(); got != "09:30-24:00" {
		t.Errorf("String() = %q", got)
	}
}

func TestDayValidate(t *testing.T) {
	ok := Day{Events: []Event{
		{Title: "Standup", Range: TimeRange{540, 555}},
		{Title: "Lunch", Range: TimeRange{720, 780}},
	}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	bad := Day{Events: []Event{{Title: "Backwards", Range: TimeRange{600, 540}}}}
	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() should reject reversed range")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v", errors.GetCode(err))
	}

	if got := ok.Ranges(); len(got) != 2 || got[1] != (TimeRange{720, 780}) {
		t.Errorf("Ranges() = %v", got)
	}
}
