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

import "cmp"

// Ordering is the result of comparing two records under a Policy.
type Ordering int

const (
	// Less means the first record sorts before the second.
	Less Ordering = -1

	// Equal means neither record sorts before the other. Distinct records
	// produced by Annotate never compare Equal.
	Equal Ordering = 0

	// Greater means the first record sorts after the second.
	Greater Ordering = 1
)

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Policy is a total order over records.
type Policy interface {
	// Name returns the selector the policy is known by.
	Name() string

	// Compare orders a relative to b.
	Compare(a, b Record) Ordering
}

// Policy selector names.
const (
	ValueFreqName = "value-freq"
	FreqValueName = "freq-value"
)

type valueFreq struct{}

func (valueFreq) Name() string { return ValueFreqName }

func (valueFreq) Compare(a, b Record) Ordering {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return Ordering(c)
	}
	if c := cmp.Compare(b.Frequency, a.Frequency); c != 0 {
		return Ordering(c)
	}
	return Ordering(cmp.Compare(a.Index, b.Index))
}

type freqValue struct{}

func (freqValue) Name() string { return FreqValueName }

func (freqValue) Compare(a, b Record) Ordering {
	if c := cmp.Compare(b.Frequency, a.Frequency); c != 0 {
		return Ordering(c)
	}
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return Ordering(c)
	}
	return Ordering(cmp.Compare(a.Index, b.Index))
}

var (
	// ValueFreq orders by value ascending, frequency descending, then
	// original index ascending.
	ValueFreq Policy = valueFreq{}

	// FreqValue orders by frequency descending, value ascending, then
	// original index ascending.
	FreqValue Policy = freqValue{}
)

// Policies returns the canonical names of all policies.
func Policies() []string {
	return []string{ValueFreqName, FreqValueName}
}

// ParsePolicy maps a selector to its Policy. Besides the canonical names it
// accepts "value-then-frequency" and "frequency-then-value".
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case ValueFreqName, "value-then-frequency":
		return ValueFreq, nil
	case FreqValueName, "frequency-then-value":
		return FreqValue, nil
	default:
		return nil, &UnknownPolicyError{Name: name}
	}
}

// Before reports whether a sorts strictly before b under p.
func Before(p Policy, a, b Record) bool {
	return p.Compare(a, b) == Less
}
