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
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-freqsort/freq"
	"github.com/ajroetker/go-freqsort/freq/workerpool"
)

// Sorter annotates and sorts integer sequences. The worker pool size and
// the sequential threshold are fixed at construction.
//
// A Sorter may be used by several goroutines at once as long as each call
// works on its own slice.
type Sorter struct {
	pool       *workerpool.Pool
	ownsPool   bool
	threshold  int
	maxNumbers int
	logger     *freq.Logger

	// forks counts fork-join pairs handed to the pool.
	forks atomic.Int64
}

// New creates a Sorter. By default it owns a pool of freq.AvailableCPUs
// workers, forks ranges of at least DefaultSequentialThreshold records and
// accepts up to freq.DefaultMaxNumbers inputs.
func New(opts ...Option) *Sorter {
	o := options{
		threshold:  DefaultSequentialThreshold,
		maxNumbers: freq.DefaultMaxNumbers,
		logger:     freq.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Sorter{
		threshold:  max(o.threshold, 1),
		maxNumbers: o.maxNumbers,
		logger:     o.logger,
	}

	switch {
	case o.sequential:
	case o.pool != nil:
		s.pool = o.pool
	default:
		workers := o.workers
		if workers <= 0 {
			workers = freq.AvailableCPUs()
		}
		s.pool = workerpool.New(workers)
		s.ownsPool = true
	}

	return s
}

// Close releases the Sorter's own pool. It must not be called while a sort
// is running.
func (s *Sorter) Close() {
	if s.ownsPool {
		s.pool.Close()
	}
}

// Workers returns the number of pool workers, or 1 when running
// sequentially.
func (s *Sorter) Workers() int {
	if s.pool == nil {
		return 1
	}
	return s.pool.NumWorkers()
}

// forkable reports whether a range of n records is split into tasks.
func (s *Sorter) forkable(n int) bool {
	return s.pool != nil && n >= s.threshold
}

// fork runs a and b as a fork-join pair on the pool.
func (s *Sorter) fork(a, b func()) {
	s.forks.Add(1)
	s.pool.Do(a, b)
}

// Sort sorts data in place with alg under p.
func (s *Sorter) Sort(data []freq.Record, alg Algorithm, p freq.Policy) error {
	if err := validate(alg, p); err != nil {
		s.logger.LogSort(alg.String(), p, len(data), 0, err)
		return err
	}

	start := time.Now()
	switch alg {
	case Quick:
		s.Quicksort(data, p)
	case Merge:
		s.MergeSort(data, p)
	case Heap:
		s.HeapSort(data, p)
	}
	s.logger.LogSort(alg.String(), p, len(data), time.Since(start), nil)

	return nil
}

// Run annotates numbers and sorts the records with alg under p.
//
// Selector errors are reported before the capacity check, and both before
// any annotation happens.
func (s *Sorter) Run(numbers []int, alg Algorithm, p freq.Policy) ([]freq.Record, error) {
	if err := validate(alg, p); err != nil {
		s.logger.LogRejected(len(numbers), err)
		return nil, err
	}
	records, err := s.Prepare(numbers)
	if err != nil {
		return nil, err
	}

	if err := s.Sort(records, alg, p); err != nil {
		return nil, err
	}
	return records, nil
}

// RunNamed is Run with the algorithm and policy given by selector name.
func (s *Sorter) RunNamed(numbers []int, algorithm, policy string) ([]freq.Record, error) {
	alg, err := ParseAlgorithm(algorithm)
	if err != nil {
		s.logger.LogRejected(len(numbers), err)
		return nil, err
	}
	p, err := freq.ParsePolicy(policy)
	if err != nil {
		s.logger.LogRejected(len(numbers), err)
		return nil, err
	}
	return s.Run(numbers, alg, p)
}

// Prepare checks numbers against the capacity bound and annotates them.
func (s *Sorter) Prepare(numbers []int) ([]freq.Record, error) {
	if err := freq.CheckCapacity(len(numbers), s.maxNumbers); err != nil {
		s.logger.LogRejected(len(numbers), err)
		return nil, err
	}
	return s.Annotate(numbers), nil
}

// Annotate runs the frequency pass on the Sorter's pool. It does not check
// capacity.
func (s *Sorter) Annotate(numbers []int) []freq.Record {
	start := time.Now()
	records := freq.AnnotateParallel(s.pool, numbers)
	s.logger.LogAnnotate(len(records), s.Workers(), time.Since(start))
	return records
}
