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

package sort

import "github.com/ajroetker/go-freqsort/freq"

// Quicksort sorts data in place under p.
func (s *Sorter) Quicksort(data []freq.Record, p freq.Policy) {
	s.quicksort(data, 0, len(data)-1, p)
}

// quicksort sorts the closed range [low, high].
func (s *Sorter) quicksort(data []freq.Record, low, high int, p freq.Policy) {
	if low >= high {
		return
	}

	pi := partition(data, low, high, p)

	if !s.forkable(high - low + 1) {
		s.quicksort(data, low, pi-1, p)
		s.quicksort(data, pi+1, high, p)
		return
	}

	// [low, pi-1] and [pi+1, high] never overlap.
	s.fork(
		func() { s.quicksort(data, low, pi-1, p) },
		func() { s.quicksort(data, pi+1, high, p) },
	)
}

// partition is a Lomuto partition of [low, high] around data[high].
// It returns the final position of the pivot.
func partition(data []freq.Record, low, high int, p freq.Policy) int {
	pivot := data[high]
	i := low - 1

	for j := low; j < high; j++ {
		if p.Compare(data[j], pivot) <= freq.Equal {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}
