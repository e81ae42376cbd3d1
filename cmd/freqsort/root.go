package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-freqsort/freq"
	"github.com/ajroetker/go-freqsort/freq/sort"
)

var errMissingParams = errors.New("missing required parameters")

type rootFlags struct {
	sortType string
	sortKey  string
	config   string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	cmd := &cobra.Command{
		Use:   "freqsort -t <sort_type> -k <sort_key> <numbers...>",
		Short: "Sort integers by value and occurrence frequency",
		Long: "freqsort annotates every number with how often it occurs in the input,\n" +
			"then sorts by value-freq (value asc, frequency desc) or freq-value\n" +
			"(frequency desc, value asc) using qsort, merge or heap.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rf.sortType == "" || rf.sortKey == "" {
				return errMissingParams
			}
			alg, err := sort.ParseAlgorithm(rf.sortType)
			if err != nil {
				return err
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

			records, err := s.Run(numbers, alg, p)
			if err != nil {
				return err
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&rf.sortType, "type", "t", "", "sort algorithm ("+strings.Join(sort.Algorithms(), ", ")+")")
	flags.StringVarP(&rf.sortKey, "key", "k", "", "sort key ("+strings.Join(freq.Policies(), ", ")+")")
	flags.StringVar(&rf.config, "config", "", "TOML configuration file")
	addConfigFlags(flags)

	cmd.AddCommand(newVerifyCmd(&rf))
	return cmd
}

func newSorter(flags *pflag.FlagSet, configPath string, stderr io.Writer) (*sort.Sorter, error) {
	cfg, err := loadConfig(configPath, freq.Env, flags)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.logger(stderr)
	if err != nil {
		return nil, err
	}
	return sort.New(cfg.options(logger)...), nil
}

func parseNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := parseInt(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// printRecords writes the records as "value:frequency" items, each
// followed by a space.
func printRecords(w io.Writer, records []freq.Record) {
	line := "Sorted numbers (number:frequency): "
	if len(records) > 0 {
		line += strings.Join(lo.Map(records, func(r freq.Record, _ int) string { return r.String() }), " ") + " "
	}
	io.WriteString(w, line+"\n")
}

var errNotInteger = errors.New("not an integer")

// parseInt parses a base-10 int that starts with a digit or with '-'
// followed by a digit. A leading '+' is rejected.
func parseInt(s string) (int, error) {
	if s == "" || s[0] == '+' {
		return 0, errNotInteger
	}
	return strconv.Atoi(s)
}

// isInteger reports whether s is accepted by parseInt.
func isInteger(s string) bool {
	_, err := parseInt(s)
	return err == nil
}

// splitNumbers moves every integer argument behind a "--" so that negative
// numbers are not mistaken for shorthand flags. Flag values stay attached to
// their flags and the numbers keep their order.
func splitNumbers(flags *pflag.FlagSet, args []string) []string {
	var head, numbers []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			numbers = append(numbers, args[i+1:]...)
			i = len(args)
		case isInteger(a):
			numbers = append(numbers, a)
		default:
			head = append(head, a)
			if takesValue(flags, a) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
		}
	}

	if len(numbers) == 0 {
		return head
	}
	return append(append(head, "--"), numbers...)
}

// takesValue reports whether arg is a flag of flags that consumes the next
// argument as its value.
func takesValue(flags *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := strings.TrimPrefix(arg, "--")
		if strings.Contains(name, "=") {
			return false
		}
		f = flags.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		f = flags.ShorthandLookup(arg[1:])
	default:
		return false
	}
	return f != nil && f.NoOptDefVal == ""
}
