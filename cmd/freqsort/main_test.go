package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-freqsort/freq"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestExecuteValueFreq(t *testing.T) {
	for _, alg := range []string{"qsort", "merge", "heap"} {
		out, _, err := run(t, "-t", alg, "-k", "value-freq", "4", "2", "4", "1", "2")
		require.NoError(t, err, alg)
		assert.Equal(t, "Sorted numbers (number:frequency): 1:1 2:2 2:2 4:2 4:2 \n", out, alg)
	}
}

func TestExecuteFreqValue(t *testing.T) {
	out, _, err := run(t, "4", "2", "-k", "freq-value", "4", "-t", "merge", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Sorted numbers (number:frequency): 2:2 2:2 4:2 4:2 1:1 \n", out)
}

func TestExecuteNegativeNumbers(t *testing.T) {
	out, _, err := run(t, "-t", "qsort", "-k", "value-freq", "-3", "5", "-3", "0")
	require.NoError(t, err)
	assert.Equal(t, "Sorted numbers (number:frequency): -3:2 -3:2 0:1 5:1 \n", out)
}

func TestExecuteNoNumbers(t *testing.T) {
	out, _, err := run(t, "-t", "heap", "-k", "value-freq")
	require.NoError(t, err)
	assert.Equal(t, "Sorted numbers (number:frequency): \n", out)
}

func TestExecuteMissingParams(t *testing.T) {
	_, _, err := run(t, "-t", "heap", "1", "2")
	assert.ErrorIs(t, err, errMissingParams)

	_, _, err = run(t, "-k", "value-freq", "1", "2")
	assert.ErrorIs(t, err, errMissingParams)
}

func TestExecuteUnknownSelectors(t *testing.T) {
	_, _, err := run(t, "-t", "bubble", "-k", "value-freq", "1")
	assert.True(t, errors.Is(err, freq.ErrConfiguration))

	_, _, err = run(t, "-t", "heap", "-k", "value", "1")
	assert.True(t, errors.Is(err, freq.ErrConfiguration))
}

func TestExecuteInvalidNumber(t *testing.T) {
	_, _, err := run(t, "-t", "heap", "-k", "value-freq", "--", "1", "x")
	assert.EqualError(t, err, `invalid number "x"`)
}

func TestExecuteRejectsPlusSign(t *testing.T) {
	_, _, err := run(t, "-t", "heap", "-k", "value-freq", "1", "+5")
	assert.EqualError(t, err, `invalid number "+5"`)
}

func TestParseInt(t *testing.T) {
	for _, s := range []string{"0", "7", "-3", "0012"} {
		_, err := parseInt(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"", "+5", "-", "5x", "x5", "--5"} {
		_, err := parseInt(s)
		assert.Error(t, err, s)
		assert.False(t, isInteger(s), s)
	}
}

func TestPrintRecords(t *testing.T) {
	var buf bytes.Buffer
	printRecords(&buf, freq.Annotate([]int{3, -1, 3}))
	assert.Equal(t, "Sorted numbers (number:frequency): 3:2 -1:1 3:2 \n", buf.String())

	buf.Reset()
	printRecords(&buf, nil)
	assert.Equal(t, "Sorted numbers (number:frequency): \n", buf.String())
}

func TestExecuteCapacity(t *testing.T) {
	_, stderr, err := run(t, "--max-numbers", "2", "-t", "heap", "-k", "freq-value", "1", "2", "3")
	assert.True(t, errors.Is(err, freq.ErrCapacity))
	assert.Contains(t, stderr, "input rejected")
}

func TestExecuteCapacityFromEnv(t *testing.T) {
	t.Setenv(freq.EnvMaxNumbers, "1")
	_, _, err := run(t, "-t", "merge", "-k", "freq-value", "1", "2")
	assert.True(t, errors.Is(err, freq.ErrCapacity))
}

func TestExecuteSequential(t *testing.T) {
	out, _, err := run(t, "--sequential", "-t", "qsort", "-k", "freq-value", "7", "7", "1")
	require.NoError(t, err)
	assert.Equal(t, "Sorted numbers (number:frequency): 7:2 7:2 1:1 \n", out)
}

func TestExecuteVerify(t *testing.T) {
	out, _, err := run(t, "verify", "-k", "value-freq", "--threshold", "1", "5", "-1", "5", "3")
	require.NoError(t, err)
	assert.Equal(t, "qsort, merge, heap agree under value-freq\n"+
		"Sorted numbers (number:frequency): -1:1 3:1 5:2 5:2 \n", out)
}

func TestExecuteVerifyMissingKey(t *testing.T) {
	_, _, err := run(t, "verify", "1", "2")
	assert.ErrorIs(t, err, errMissingParams)
}

func TestSplitNumbers(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("type", "t", "", "")
	flags.StringP("key", "k", "", "")
	addConfigFlags(flags)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no numbers",
			args: []string{"-t", "heap"},
			want: []string{"-t", "heap"},
		},
		{
			name: "negative numbers move behind separator",
			args: []string{"-t", "heap", "-1", "-k", "value-freq", "2"},
			want: []string{"-t", "heap", "-k", "value-freq", "--", "-1", "2"},
		},
		{
			name: "numeric flag values stay",
			args: []string{"--workers", "4", "--sequential", "3", "--threshold=8", "-5"},
			want: []string{"--workers", "4", "--sequential", "--threshold=8", "--", "3", "-5"},
		},
		{
			name: "existing separator",
			args: []string{"verify", "1", "--", "-2", "x"},
			want: []string{"verify", "--", "1", "-2", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitNumbers(flags, tt.args))
		})
	}
}
