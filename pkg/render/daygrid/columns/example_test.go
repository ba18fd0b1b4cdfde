package columns_test

import (
	"fmt"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/columns"
)

func ExamplePack() {
	p := columns.Pack([]calendar.TimeRange{
		{Start: 30, End: 180},
		{Start: 90, End: 120},
		{Start: 150, End: 300},
		{Start: 150, End: 300},
	})
	fmt.Println(p.ColumnCount)
	for _, s := range p.Spans {
		fmt.Printf("[%d,%d) ", s.Start, s.End)
	}
	fmt.Println()
	// Output:
	// 3
	// [0,1) [1,3) [1,2) [2,3)
}
