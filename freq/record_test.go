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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-freqsort/freq/workerpool"
)

func TestAnnotateEmpty(t *testing.T) {
	records := Annotate(nil)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestAnnotateExample(t *testing.T) {
	records := Annotate([]int{4, 2, 4, 1, 2})
	want := []Record{
		{Value: 4, Frequency: 2, Index: 0},
		{Value: 2, Frequency: 2, Index: 1},
		{Value: 4, Frequency: 2, Index: 2},
		{Value: 1, Frequency: 1, Index: 3},
		{Value: 2, Frequency: 2, Index: 4},
	}
	assert.Equal(t, want, records)
}

func TestAnnotateNegative(t *testing.T) {
	records := Annotate([]int{-1, 0, -1, -1})
	assert.Equal(t, []int{3, 1, 3, 3}, frequencies(records))
}

// TestAnnotateFrequencyCorrectness checks every frequency against a naive count
func TestAnnotateFrequencyCorrectness(t *testing.T) {
	sizes := []int{0, 1, 2, 7, 64, 257}
	for _, n := range sizes {
		values := randomValues(n, 10)
		records := Annotate(values)
		require.Len(t, records, n)

		counts := make(map[int]int)
		for _, v := range values {
			counts[v]++
		}
		for i, r := range records {
			require.Equal(t, values[i], r.Value, "n=%d i=%d", n, i)
			require.Equal(t, i, r.Index, "n=%d i=%d", n, i)
			require.Equal(t, counts[r.Value], r.Frequency, "n=%d value=%d", n, r.Value)
		}
	}
}

func TestAnnotateParallelMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 100, 1000} {
		values := randomValues(n, 50)
		assert.Equal(t, Annotate(values), AnnotateParallel(pool, values), "n=%d", n)
	}
}

func TestAnnotateParallelNilPool(t *testing.T) {
	values := []int{3, 3, 1}
	assert.Equal(t, Annotate(values), AnnotateParallel(nil, values))
}

func TestRecordString(t *testing.T) {
	assert.Equal(t, "-4:2", Record{Value: -4, Frequency: 2, Index: 9}.String())
}

func TestValues(t *testing.T) {
	assert.Equal(t, []int{4, 2, 4}, Values(Annotate([]int{4, 2, 4})))
}

func frequencies(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Frequency
	}
	return out
}

func randomValues(n, spread int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rand.Intn(spread) - spread/2
	}
	return values
}
