package columns

import "github.com/matzehuels/daygrid/pkg/calendar"

// Span is a half-open column interval [Start, End).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Width returns the number of columns the span covers.
func (s Span) Width() int { return s.End - s.Start }

// Packing is the output of Pack, index-aligned with its input.
type Packing struct {
	Spans       []Span `json:"spans"`
	ColumnCount int    `json:"column_count"`
}

// Pack assigns a column span to every range. Empty input yields a zero
// Packing with no spans.
func Pack(ranges []calendar.TimeRange) Packing {
	p := Packing{Spans: make([]Span, len(ranges))}

	for i := range ranges {
		col := 0
		for !p.columnFree(ranges, i, col, i) {
			col++
		}
		p.Spans[i] = Span{Start: col, End: col + 1}
		p.ColumnCount = max(p.ColumnCount, col+1)
	}

	for i := range ranges {
		for p.Spans[i].End < p.ColumnCount && p.columnFree(ranges, i, p.Spans[i].End, len(ranges)) {
			p.Spans[i].End++
		}
	}
	return p
}

// columnFree reports whether no span among the first n (other than i
// itself) starts in col and conflicts with ranges[i].
func (p Packing) columnFree(ranges []calendar.TimeRange, i, col, n int) bool {
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if p.Spans[j].Start == col && ranges[i].Conflicts(ranges[j]) {
			return false
		}
	}
	return true
}

// Valid reports whether no two conflicting ranges overlap in column space.
func (p Packing) Valid(ranges []calendar.TimeRange) bool {
	if len(p.Spans) != len(ranges) {
		return false
	}
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if !ranges[i].Conflicts(ranges[j]) {
				continue
			}
			a, b := p.Spans[i], p.Spans[j]
			if a.Start < b.End && b.Start < a.End {
				return false
			}
		}
	}
	return true
}

// Groups partitions range indices into connected clusters of mutually
// transitive conflicts. Renderers use it to draw cluster outlines and the
// conflicts command to report them.
func Groups(ranges []calendar.TimeRange) [][]int {
	parent := make([]int, len(ranges))
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Conflicts(ranges[j]) {
				parent[find(j)] = find(i)
			}
		}
	}

	index := map[int]int{}
	var groups [][]int
	for i := range ranges {
		root := find(i)
		g, ok := index[root]
		if !ok {
			g = len(groups)
			index[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}
