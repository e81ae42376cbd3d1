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

// Command freqsort annotates integers with their occurrence frequency and
// sorts them with a selectable algorithm and ordering.
//
// Usage:
//
//	freqsort -t <qsort|merge|heap> -k <value-freq|freq-value> <numbers...>
//	freqsort verify -k value-freq 4 2 4 1 2
//	freqsort --config freqsort.toml -t merge -k freq-value -- -3 7 -3
//
// Negative numbers can be given positionally. A number is a base-10 integer
// starting with a digit or with '-' and a digit; "+5" is rejected.
//
// Settings are resolved in this order, later ones winning: built-in
// defaults, the TOML file given by --config, FREQSORT_* environment
// variables, then command-line flags.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(splitNumbers(cmd.PersistentFlags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
