// Package columns packs overlapping time ranges into side-by-side columns.
//
// # Algorithm
//
// [Pack] runs two passes over the ranges in input order:
//
//  1. Assignment: each range takes the lowest column in which no earlier
//     range that starts in that column conflicts with it. The column count
//     is one more than the highest column assigned.
//
//  2. Expansion: each range then grows rightward one column at a time for
//     as long as the next column holds no conflicting range that starts
//     there, stopping at the column count.
//
// The result is index-aligned with the input. Conflicting ranges never share
// a column, and a range never shrinks during expansion. Input order matters:
// callers that want a stable layout across runs must supply ranges in a
// stable order.
//
// # Example
//
//	p := columns.Pack([]calendar.TimeRange{{30, 180}, {90, 120}, {150, 300}, {150, 300}})
//	// p.Spans:       [0,1) [1,3) [1,2) [2,3)
//	// p.ColumnCount: 3
package columns
