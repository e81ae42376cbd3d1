package sort

import (
	"fmt"

	"github.com/ajroetker/go-freqsort/freq"
)

// IsSorted reports whether data is in ascending order under p.
func IsSorted(data []freq.Record, p freq.Policy) bool {
	return CheckSorted(data, p) == nil
}

// CheckSorted returns an *OrderError for the first adjacent pair of data
// that is out of order under p.
func CheckSorted(data []freq.Record, p freq.Policy) error {
	for i := 1; i < len(data); i++ {
		if p.Compare(data[i-1], data[i]) == freq.Greater {
			return &OrderError{Pos: i, Prev: data[i-1], Next: data[i], Policy: p.Name()}
		}
	}
	return nil
}

// OrderError describes two adjacent records in the wrong order.
type OrderError struct {
	Pos    int
	Prev   freq.Record
	Next   freq.Record
	Policy string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("records %d and %d out of %s order: %v (index %d) before %v (index %d)",
		e.Pos-1, e.Pos, e.Policy, e.Prev, e.Prev.Index, e.Next, e.Next.Index)
}
