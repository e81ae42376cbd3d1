// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package freq

import (
	"strconv"

	"github.com/ajroetker/go-freqsort/freq/workerpool"
)

// Record is an input value annotated with its input-wide frequency and its
// original position.
type Record struct {
	// Value is the original input number.
	Value int

	// Frequency is the number of occurrences of Value in the whole input.
	// Always >= 1.
	Frequency int

	// Index is the position of the value in the original input. It is only
	// used as the final tie-break.
	Index int
}

// String renders the record as "value:frequency".
func (r Record) String() string {
	return strconv.Itoa(r.Value) + ":" + strconv.Itoa(r.Frequency)
}

// Annotate returns one record per element of values, index-aligned with the
// input. Frequencies are counted with an all-pairs comparison.
// An empty input yields an empty, non-nil slice.
func Annotate(values []int) []Record {
	result := make([]Record, len(values))
	annotateRange(values, result, 0, len(values))
	return result
}

// AnnotateParallel is Annotate with the rows of the all-pairs pass spread
// over pool. Each row writes only its own record. A nil pool runs
// sequentially.
func AnnotateParallel(pool *workerpool.Pool, values []int) []Record {
	result := make([]Record, len(values))
	pool.ParallelFor(len(values), func(start, end int) {
		annotateRange(values, result, start, end)
	})
	return result
}

func annotateRange(values []int, result []Record, start, end int) {
	for i := start; i < end; i++ {
		count := 1
		for j, v := range values {
			if j != i && v == values[i] {
				count++
			}
		}
		result[i] = Record{
			Value:     values[i],
			Frequency: count,
			Index:     i,
		}
	}
}

// Values extracts the Value of every record, in order.
func Values(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Value
	}
	return out
}
