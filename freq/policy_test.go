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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFreqCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want Ordering
	}{
		{"value decides", Record{1, 5, 9}, Record{2, 1, 0}, Less},
		{"higher frequency first", Record{3, 4, 9}, Record{3, 2, 0}, Less},
		{"index breaks tie", Record{3, 2, 1}, Record{3, 2, 4}, Less},
		{"reverse index", Record{3, 2, 4}, Record{3, 2, 1}, Greater},
		{"same record", Record{3, 2, 4}, Record{3, 2, 4}, Equal},
		{"extreme values", Record{math.MinInt, 1, 0}, Record{math.MaxInt, 1, 1}, Less},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueFreq.Compare(tt.a, tt.b))
		})
	}
}

func TestFreqValueCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want Ordering
	}{
		{"higher frequency first", Record{9, 3, 9}, Record{1, 2, 0}, Less},
		{"value breaks frequency tie", Record{1, 2, 9}, Record{4, 2, 0}, Less},
		{"index breaks tie", Record{4, 2, 0}, Record{4, 2, 2}, Less},
		{"lower frequency last", Record{1, 1, 0}, Record{4, 2, 1}, Greater},
		{"same record", Record{1, 1, 0}, Record{1, 1, 0}, Equal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FreqValue.Compare(tt.a, tt.b))
		})
	}
}

// Distinct annotated records never compare Equal and swapping the operands
// flips the result.
func TestPoliciesTotalAndAntisymmetric(t *testing.T) {
	records := Annotate(randomValues(60, 6))
	for _, p := range []Policy{ValueFreq, FreqValue} {
		for _, a := range records {
			for _, b := range records {
				ab, ba := p.Compare(a, b), p.Compare(b, a)
				require.Equal(t, -ab, ba, "%s: %v vs %v", p.Name(), a, b)
				if a.Index != b.Index {
					require.NotEqual(t, Equal, ab, "%s: %v vs %v", p.Name(), a, b)
				}
			}
		}
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]Policy{
		"value-freq":           ValueFreq,
		"value-then-frequency": ValueFreq,
		"freq-value":           FreqValue,
		"frequency-then-value": FreqValue,
	} {
		p, err := ParsePolicy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, p, name)
	}
}

func TestParsePolicyUnknown(t *testing.T) {
	p, err := ParsePolicy("value")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var upe *UnknownPolicyError
	require.ErrorAs(t, err, &upe)
	assert.Equal(t, "value", upe.Name)
}

func TestBefore(t *testing.T) {
	a, b := Record{1, 1, 0}, Record{2, 1, 1}
	assert.True(t, Before(ValueFreq, a, b))
	assert.False(t, Before(ValueFreq, b, a))
	assert.False(t, Before(ValueFreq, a, a))
}

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
}
