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

// Package freq annotates integers with their occurrence frequency and
// original position, and defines the ordering policies used to sort the
// resulting records.
//
// # Records
//
// Annotate produces one Record per input element. Frequency is the number of
// times the element's value occurs in the whole input, and Index is the
// element's position in that input. Neither is ever recomputed: sorting only
// moves whole records.
//
// # Ordering policies
//
// Two total orders are provided:
//   - ValueFreq ("value-freq"): value ascending, then frequency descending,
//     then original index ascending.
//   - FreqValue ("freq-value"): frequency descending, then value ascending,
//     then original index ascending.
//
// Because Index is unique, no two distinct records ever compare Equal.
//
// # Example Usage
//
//	records := freq.Annotate([]int{4, 2, 4, 1, 2})
//	p, err := freq.ParsePolicy("value-freq")
//	if err != nil {
//	    return err
//	}
//	slices.SortFunc(records, func(a, b freq.Record) int {
//	    return int(p.Compare(a, b))
//	})
//
// The parallel sorters live in the freq/sort subpackage.
//
// # Environment
//
// FREQSORT_WORKERS, FREQSORT_THRESHOLD, FREQSORT_MAX_NUMBERS and
// FREQSORT_SEQUENTIAL override the defaults used by freq/sort; see Env.
package freq
