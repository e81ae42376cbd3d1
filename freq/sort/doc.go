// Package sort sorts frequency-annotated records with one of three
// algorithms: partition-exchange (quicksort), merge sort and heap sort.
//
// # Algorithms
//
// Quicksort uses a Lomuto partition with the last element of each range as
// pivot. The two ranges on either side of the pivot are sorted as a
// fork-join pair on the Sorter's worker pool.
//
// MergeSort splits each range at its midpoint and sorts both halves as a
// fork-join pair. The merge step copies both halves out concurrently, then
// merges them back preferring the left half on ties.
//
// HeapSort is a sequential binary max-heap sort.
//
// Ranges shorter than the sequential threshold recurse on the calling
// goroutine. Sibling tasks always work on disjoint index ranges of the same
// slice, so no locking is involved.
//
// Every policy in package freq is a total order over annotated records, so
// all three algorithms produce identical output for the same input.
//
// # Example Usage
//
//	s := sort.New()
//	defer s.Close()
//
//	records, err := s.Run([]int{4, 2, 4, 1, 2}, sort.Merge, freq.ValueFreq)
//	if err != nil {
//	    return err
//	}
//	// records: 1:1 2:2 2:2 4:2 4:2
package sort
