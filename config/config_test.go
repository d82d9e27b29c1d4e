package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	opts, err := ParseArgs([]string{"sample.fasta", "8", "15"})
	require.NoError(t, err)
	require.Equal(t, "sample.fasta", opts.InPath)
	require.Equal(t, 8, opts.MinLen)
	require.Equal(t, 15, opts.MaxLen)
}

func TestParseArgsMalformed(t *testing.T) {
	_, err := ParseArgs([]string{"sample.fasta", "eight", "15"})
	require.ErrorIs(t, err, ErrMalformedLength)
	require.Contains(t, err.Error(), "min_length")

	_, err = ParseArgs([]string{"sample.fasta", "8", "1.5"})
	require.ErrorIs(t, err, ErrMalformedLength)
	require.Contains(t, err.Error(), "max_length")
}

func TestParseArgsCount(t *testing.T) {
	_, err := ParseArgs([]string{"sample.fasta", "8"})
	require.Error(t, err)
}

func TestValidateRange(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
		ok       bool
	}{
		{"equal", 3, 3, true},
		{"ascending", 2, 9, true},
		{"inverted", 9, 2, false},
		{"zero min", 0, 4, false},
		{"negative", -2, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Options{InPath: "x.fa", MinLen: tc.min, MaxLen: tc.max}.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"sample.fasta", "sample_chopped.fasta"},
		{filepath.Join("data", "p.fa.gz"), filepath.Join("data", "p_chopped.fasta")},
		{filepath.Join("data", "p.fasta.sz"), filepath.Join("data", "p_chopped.fasta")},
		{"noext", "noext_chopped.fasta"},
		{filepath.Join("v1.2", "proteome"), filepath.Join("v1.2", "proteome_chopped.fasta")},
		{"my.proteome.faa", "my.proteome_chopped.fasta"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Options{InPath: tc.in}.OutputPath(), tc.in)
	}
	require.Equal(t, "sample_chopped", Options{InPath: "sample.fasta"}.ReportPrefix())
}
