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

// MergeSort sorts data in place under p.
func (s *Sorter) MergeSort(data []freq.Record, p freq.Policy) {
	s.mergeSort(data, 0, len(data)-1, p)
}

// mergeSort sorts the closed range [left, right].
func (s *Sorter) mergeSort(data []freq.Record, left, right int, p freq.Policy) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2

	if s.forkable(right - left + 1) {
		s.fork(
			func() { s.mergeSort(data, left, mid, p) },
			func() { s.mergeSort(data, mid+1, right, p) },
		)
	} else {
		s.mergeSort(data, left, mid, p)
		s.mergeSort(data, mid+1, right, p)
	}

	s.merge(data, left, mid, right, p)
}

// merge combines the sorted ranges [left, mid] and [mid+1, right].
// On ties the left element goes first.
func (s *Sorter) merge(data []freq.Record, left, mid, right int, p freq.Policy) {
	leftBuf := make([]freq.Record, mid-left+1)
	rightBuf := make([]freq.Record, right-mid)

	if s.forkable(right - left + 1) {
		s.fork(
			func() { copy(leftBuf, data[left:mid+1]) },
			func() { copy(rightBuf, data[mid+1:right+1]) },
		)
	} else {
		copy(leftBuf, data[left:mid+1])
		copy(rightBuf, data[mid+1:right+1])
	}

	i, j, k := 0, 0, left
	for i < len(leftBuf) && j < len(rightBuf) {
		if p.Compare(leftBuf[i], rightBuf[j]) <= freq.Equal {
			data[k] = leftBuf[i]
			i++
		} else {
			data[k] = rightBuf[j]
			j++
		}
		k++
	}

	k += copy(data[k:right+1], leftBuf[i:])
	copy(data[k:right+1], rightBuf[j:])
}
