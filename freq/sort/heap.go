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

// HeapSort sorts data in place under p using a binary max-heap.
// It never spawns tasks.
func HeapSort(data []freq.Record, p freq.Policy) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, p)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, p)
	}
}

// HeapSort sorts data in place under p. The Sorter's pool is not used.
func (s *Sorter) HeapSort(data []freq.Record, p freq.Policy) {
	HeapSort(data, p)
}

// siftDown restores the heap property for the subtree rooted at i within
// data[:n].
func siftDown(data []freq.Record, i, n int, p freq.Policy) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && p.Compare(data[left], data[largest]) == freq.Greater {
			largest = left
		}
		if right < n && p.Compare(data[right], data[largest]) == freq.Greater {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
