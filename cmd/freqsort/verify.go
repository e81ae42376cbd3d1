package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-freqsort/freq"
	"github.com/ajroetker/go-freqsort/freq/sort"
)

var verifyAlgorithms = []sort.Algorithm{sort.Quick, sort.Merge, sort.Heap}

func newVerifyCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify -k <sort_key> <numbers...>",
		Short: "Sort with every algorithm concurrently and check that they agree",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rf.sortKey == "" {
				return errMissingParams
			}
			p, err := freq.ParsePolicy(rf.sortKey)
			if err != nil {
				return err
			}
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}

			s, err := newSorter(cmd.Flags(), rf.config, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := verify(s, numbers, p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s agree under %s\n", strings.Join(sort.Algorithms(), ", "), p.Name())
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

// verify sorts numbers with every algorithm at once and returns the common
// result, or an error describing the first disagreement.
func verify(s *sort.Sorter, numbers []int, p freq.Policy) ([]freq.Record, error) {
	records, err := s.Prepare(numbers)
	if err != nil {
		return nil, err
	}

	results := make([][]freq.Record, len(verifyAlgorithms))

	var g errgroup.Group
	for i, alg := range verifyAlgorithms {
		g.Go(func() error {
			out := slices.Clone(records)
			if err := s.Sort(out, alg, p); err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			if err := sort.CheckSorted(out, p); err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 1; i < len(results); i++ {
		if diff := cmp.Diff(results[0], results[i]); diff != "" {
			return nil, fmt.Errorf("%s and %s disagree (-%s +%s):\n%s",
				verifyAlgorithms[0], verifyAlgorithms[i], verifyAlgorithms[0], verifyAlgorithms[i], diff)
		}
	}
	return results[0], nil
}
