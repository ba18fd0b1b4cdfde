package columns

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/daygrid/pkg/calendar"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name   string
		ranges []calendar.TimeRange
		want   Packing
	}{
		{
			name:   "empty",
			ranges: nil,
			want:   Packing{Spans: []Span{}},
		},
		{
			name:   "single",
			ranges: []calendar.TimeRange{{Start: 55, End: 133}},
			want:   Packing{Spans: []Span{{0, 1}}, ColumnCount: 1},
		},
		{
			name: "overlapping cluster",
			ranges: []calendar.TimeRange{
				{Start: 30, End: 180},
				{Start: 90, End: 120},
				{Start: 150, End: 300},
				{Start: 150, End: 300},
			},
			want: Packing{Spans: []Span{{0, 1}, {1, 3}, {1, 2}, {2, 3}}, ColumnCount: 3},
		},
		{
			name: "disjoint share one column",
			ranges: []calendar.TimeRange{
				{Start: 0, End: 60},
				{Start: 60, End: 120},
				{Start: 300, End: 330},
			},
			want: Packing{Spans: []Span{{0, 1}, {0, 1}, {0, 1}}, ColumnCount: 1},
		},
		{
			name: "duplicates get disjoint spans",
			ranges: []calendar.TimeRange{
				{Start: 600, End: 660},
				{Start: 600, End: 660},
			},
			want: Packing{Spans: []Span{{0, 1}, {1, 2}}, ColumnCount: 2},
		},
		{
			name: "later short event expands",
			ranges: []calendar.TimeRange{
				{Start: 0, End: 120},
				{Start: 0, End: 60},
				{Start: 0, End: 30},
				{Start: 90, End: 150},
			},
			want: Packing{Spans: []Span{{0, 1}, {1, 2}, {2, 3}, {1, 3}}, ColumnCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pack(tt.ranges)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pack() mismatch (-want +got):\n%s", diff)
			}
			if !got.Valid(tt.ranges) {
				t.Error("packing places conflicting ranges in the same column")
			}
		})
	}
}

func TestPackProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(12)
		ranges := make([]calendar.TimeRange, n)
		for i := range ranges {
			start := rng.Intn(24*60 - 15)
			ranges[i] = calendar.TimeRange{Start: start, End: start + 15 + rng.Intn(180)}
		}

		p := Pack(ranges)
		if len(p.Spans) != n {
			t.Fatalf("len(Spans) = %d, want %d", len(p.Spans), n)
		}
		if !p.Valid(ranges) {
			t.Fatalf("invalid packing for %v: %v", ranges, p.Spans)
		}
		for i, s := range p.Spans {
			if s.Start < 0 || s.End > p.ColumnCount || s.Width() < 1 {
				t.Fatalf("span %d out of bounds: %v (columns %d)", i, s, p.ColumnCount)
			}
		}
	}
}

func TestPackExpansionNeverShrinks(t *testing.T) {
	ranges := []calendar.TimeRange{
		{Start: 540, End: 600},
		{Start: 550, End: 570},
		{Start: 580, End: 640},
		{Start: 700, End: 760},
	}
	p := Pack(ranges)
	for i, s := range p.Spans {
		if s.Width() < 1 {
			t.Errorf("span %d has width %d", i, s.Width())
		}
	}
	if got := p.Spans[3]; got != (Span{0, p.ColumnCount}) {
		t.Errorf("isolated event should span every column, got %v", got)
	}
}

func TestGroups(t *testing.T) {
	ranges := []calendar.TimeRange{
		{Start: 30, End: 180},
		{Start: 400, End: 460},
		{Start: 150, End: 300},
		{Start: 450, End: 500},
		{Start: 900, End: 960},
	}
	want := [][]int{{0, 2}, {1, 3}, {4}}
	if diff := cmp.Diff(want, Groups(ranges)); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
}
