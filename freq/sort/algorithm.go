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

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-freqsort/freq"
)

// Algorithm selects one of the sorting algorithms.
type Algorithm int

const (
	// Quick is the parallel partition-exchange sort.
	Quick Algorithm = iota + 1

	// Merge is the parallel merge sort.
	Merge

	// Heap is the sequential heap sort.
	Heap
)

// String returns the selector name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Quick:
		return "qsort"
	case Merge:
		return "merge"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Algorithms returns the canonical selector names.
func Algorithms() []string {
	return []string{Quick.String(), Merge.String(), Heap.String()}
}

// ParseAlgorithm maps a selector to its Algorithm. Besides "qsort", "merge"
// and "heap" it accepts a few common spellings.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "qsort", "quick", "quicksort", "partition-exchange":
		return Quick, nil
	case "merge", "mergesort":
		return Merge, nil
	case "heap", "heapsort":
		return Heap, nil
	default:
		return 0, &UnknownAlgorithmError{Name: name}
	}
}

// UnknownAlgorithmError reports an unrecognized sort algorithm selector.
//
// errors.Is(err, freq.ErrConfiguration) holds for it.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown sort type %q (want one of %s)", e.Name, strings.Join(Algorithms(), ", "))
}

func (e *UnknownAlgorithmError) Unwrap() error { return freq.ErrConfiguration }

func validate(alg Algorithm, p freq.Policy) error {
	switch alg {
	case Quick, Merge, Heap:
	default:
		return &UnknownAlgorithmError{Name: alg.String()}
	}
	if p == nil {
		return fmt.Errorf("%w: no sort key", freq.ErrConfiguration)
	}
	return nil
}
