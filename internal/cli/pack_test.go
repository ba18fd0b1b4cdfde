package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/pipeline"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
)

func testLayout(t *testing.T) (calendar.Day, *layout.Result) {
	t.Helper()
	day := calendar.Day{
		Date:  "2024-03-14",
		Title: "Thursday",
		Events: []calendar.Event{
			{Title: "Planning", Range: calendar.TimeRange{Start: 8*60 + 30, End: 11 * 60}},
			{Title: "Sync", Range: calendar.TimeRange{Start: 9*60 + 30, End: 10 * 60}, Location: "Room 4"},
			{Title: "Review", Range: calendar.TimeRange{Start: 10*60 + 30, End: 13 * 60}, Color: "#ff8800"},
			{Title: "Night shift", Range: calendar.TimeRange{Start: 22 * 60, End: 23 * 60}},
		},
	}
	opts := pipeline.DefaultOptions()
	opts.Grid.StartHour, opts.Grid.EndHour = 8, 18
	res, err := pipeline.ComputeLayout(day, opts)
	if err != nil {
		t.Fatal(err)
	}
	return day, res
}

func TestColumnBar(t *testing.T) {
	tests := []struct {
		start, end, cols int
		want             string
	}{
		{0, 1, 1, "█"},
		{0, 1, 3, "█··"},
		{1, 3, 3, "·██"},
		{0, 0, 0, ""},
		{0, 40, 40, strings.Repeat("█", maxBarColumns) + "…"},
	}
	for _, tt := range tests {
		if got := columnBar(tt.start, tt.end, tt.cols); got != tt.want {
			t.Errorf("columnBar(%d, %d, %d) = %q, want %q", tt.start, tt.end, tt.cols, got, tt.want)
		}
	}
}

func TestPackTable(t *testing.T) {
	day, res := testLayout(t)
	table := packTable(day, res)

	for _, want := range []string{"Planning", "Sync", "Review", "08:30-11:00", "█·", "·█"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
	if strings.Contains(table, "Night shift") {
		t.Error("table lists an event outside the window")
	}
}

func TestDayHeading(t *testing.T) {
	day, res := testLayout(t)
	if got, want := dayHeading(day, res), "2024-03-14 · Thursday · 08:00–18:00"; got != want {
		t.Errorf("dayHeading = %q, want %q", got, want)
	}
}

func TestPackCommand(t *testing.T) {
	c, ui := newTestCLI(t)
	if _, err := run(t, c, "pack", writeTestDay(t), "--start", "8", "--end", "18"); err != nil {
		t.Fatalf("pack: %v", err)
	}
	got := ui.String()
	for _, want := range []string{"Planning", "1 event outside 08:00–18:00", "2 columns"} {
		if !strings.Contains(got, want) {
			t.Errorf("pack output missing %q:\n%s", want, got)
		}
	}
}
