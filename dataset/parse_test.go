// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/crimenet/dataset"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	input := "% bip unweighted\n% 3 2 2\n1 10\n\n2 10 1 extra\n   1 20\n1 10\n"

	ds, err := dataset.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, []int64{1, 2}, ds.Criminals())
	require.Equal(t, []int64{10, 20}, ds.Cases())
	require.Equal(t, []int64{10, 20}, ds.CasesOf(1))
	require.Equal(t, []int64{1, 2}, ds.CriminalsIn(10))
	require.Equal(t, 2, ds.CaseCountOf(1))
	require.Equal(t, 1, ds.CaseCountOf(2))
	require.Equal(t, 4, ds.RecordCount())
	require.Equal(t, 2, ds.CriminalCount())
	require.Equal(t, 2, ds.CaseCount())
	require.True(t, ds.HasCase(20))
	require.False(t, ds.HasCase(30))
	require.True(t, ds.HasCriminal(2))
	require.Nil(t, ds.CasesOf(99))
}

func TestParse_Empty(t *testing.T) {
	for name, input := range map[string]string{
		"no bytes":      "",
		"only comments": "% header\n%\n",
		"only blanks":   "\n  \n\t\n",
	} {
		t.Run(name, func(t *testing.T) {
			ds, err := dataset.Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Zero(t, ds.CriminalCount())
			require.Zero(t, ds.CaseCount())
			require.Empty(t, ds.Criminals())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
		cause error
	}{
		{"single token", "1 10\n7\n", 2, dataset.ErrTooFewFields},
		{"non-integer criminal", "x 10\n", 1, strconv.ErrSyntax},
		{"non-integer case", "% c\n1 1\n1 abc\n", 3, strconv.ErrSyntax},
		{"float id", "1.5 2\n", 1, strconv.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, dataset.ErrMalformedLine)
			require.ErrorIs(t, err, tc.cause)

			var perr *dataset.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tc.line, perr.Line)
			require.Contains(t, err.Error(), "line "+strconv.Itoa(tc.line))
		})
	}
}

func TestParse_SkipMalformed(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ds, err := dataset.Parse(
		strings.NewReader("1 10\nbad line\n2 10\n3\n"),
		dataset.WithSkipMalformed(true),
		dataset.WithLogger(logger),
	)
	require.NoError(t, err)
	require.Equal(t, 2, ds.SkippedLines())
	require.Equal(t, []int64{1, 2}, ds.Criminals())
	require.Contains(t, buf.String(), "skipping malformed line")
}

func TestParse_CommentPrefix(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader("# header\n1 2\n"), dataset.WithCommentPrefix("#"))
	require.NoError(t, err)
	require.Equal(t, []int64{1}, ds.Criminals())

	// "%" is data under a "#" prefix and therefore malformed
	_, err = dataset.Parse(strings.NewReader("% header\n"), dataset.WithCommentPrefix("#"))
	require.ErrorIs(t, err, dataset.ErrMalformedLine)

	_, err = dataset.Parse(strings.NewReader("1 2\n"), dataset.WithCommentPrefix(""))
	require.ErrorIs(t, err, dataset.ErrOptionViolation)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.moreno_crime_crime")
	require.NoError(t, os.WriteFile(path, []byte("% bip\n1 10\n2 10\n1 20\n"), 0o600))

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.CaseCount())

	_, err = dataset.Load(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("1\n"), 0o600))
	_, err = dataset.Load(bad)
	require.ErrorIs(t, err, dataset.ErrMalformedLine)
	require.Contains(t, err.Error(), bad)
}
