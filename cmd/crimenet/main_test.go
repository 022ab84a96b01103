package main

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/crimenet/config"
	"github.com/katalvlaran/crimenet/dataset"
	"github.com/stretchr/testify/require"
)

// six cases; criminal 1 is in three, 2 in two, the rest in one each.
const sample = `% bip unweighted
% 8 5 6
1 10
1 11
1 12
2 12
2 13
3 14
4 14
5 15
`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.crime")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_Summary(t *testing.T) {
	out, logs, err := runCLI(t, "-input", writeInput(t, sample), "summary")
	require.NoError(t, err)
	require.Contains(t, out, "criminals:            5\n")
	require.Contains(t, out, "cases:                6\n")
	// edges: 1-2 (case 12) and 3-4 (case 14)
	require.Contains(t, out, "edges:                2\n")
	require.Contains(t, out, "components:           3\n")
	require.Contains(t, logs, "graph built")
}

func TestRun_Distributions(t *testing.T) {
	input := writeInput(t, sample)

	out, _, err := runCLI(t, "-input", input, "degrees")
	require.NoError(t, err)
	require.Contains(t, out, "degree\tcriminals\n0\t1\n1\t4\n")

	out, _, err = runCLI(t, "-input", input, "weights")
	require.NoError(t, err)
	require.Contains(t, out, "weight\tedges\n1\t2\n")

	out, _, err = runCLI(t, "-input", input, "case-sizes")
	require.NoError(t, err)
	require.Contains(t, out, "size\tcases\n1\t4\n2\t2\n")
}

func TestRun_Cover(t *testing.T) {
	out, _, err := runCLI(t, "-input", writeInput(t, sample), "cover")
	require.NoError(t, err)
	require.Contains(t, out, "selected 3 criminals covering 5/6 cases")
	require.Contains(t, out, "subnetwork: 3 nodes, 1 edges, 2 components")
	require.Contains(t, out, "1\t3\n2\t2\n3\t1\n")

	out, _, err = runCLI(t, "-input", writeInput(t, sample), "-threshold", "0.5", "cover")
	require.NoError(t, err)
	require.Contains(t, out, "selected 1 criminals covering 3/6 cases")
}

func TestRun_RWR(t *testing.T) {
	out, _, err := runCLI(t, "-input", writeInput(t, sample), "-top", "1", "rwr", "1")
	require.NoError(t, err)
	require.Contains(t, out, "start 1 (")
	require.Contains(t, out, "converged true")
	require.Contains(t, out, "1\t2\t")
	require.Equal(t, 2, strings.Count(out, "\n"))

	// hitting the cap still reports scores
	out, logs, err := runCLI(t, "-input", writeInput(t, sample), "-max-iter", "1", "-tolerance", "1e-12", "rwr", "1")
	require.NoError(t, err)
	require.Contains(t, out, "converged false")
	require.Contains(t, logs, "unconverged")
}

func TestRun_Cohesion(t *testing.T) {
	out, _, err := runCLI(t, "-input", writeInput(t, sample), "cohesion", "14")
	require.NoError(t, err)
	require.Contains(t, out, "case 14: 2 members, cohesion 0.459")

	_, _, err = runCLI(t, "-input", writeInput(t, sample), "cohesion", "15")
	require.ErrorContains(t, err, "single participant")
}

func TestRun_ConfigFileAndFlagsPrecedence(t *testing.T) {
	input := writeInput(t, sample)
	cfgPath := filepath.Join(t.TempDir(), "crimenet.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input:\n  path: "+input+"\ncoverage:\n  threshold: 0.5\n"), 0o600))

	out, _, err := runCLI(t, "-config", cfgPath, "cover")
	require.NoError(t, err)
	require.Contains(t, out, "selected 1 criminals")

	out, _, err = runCLI(t, "-config", cfgPath, "-threshold", "1", "cover")
	require.NoError(t, err)
	require.Contains(t, out, "covering 6/6 cases")
}

func TestRun_Errors(t *testing.T) {
	input := writeInput(t, sample)

	_, _, err := runCLI(t)
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "-input", input, "explode")
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "summary")
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "-input", input, "rwr")
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "-input", input, "rwr", "abc")
	require.ErrorIs(t, err, errUsage)

	_, _, err = runCLI(t, "-input", input, "-alpha", "2", "rwr", "1")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = runCLI(t, "-input", filepath.Join(t.TempDir(), "nope"), "summary")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = runCLI(t, "-input", input, "rwr", "999")
	require.ErrorContains(t, err, "start vertex not found")
}

func TestRun_SkipMalformed(t *testing.T) {
	input := writeInput(t, sample+"oops\n")

	_, _, err := runCLI(t, "-input", input, "summary")
	require.ErrorIs(t, err, dataset.ErrMalformedLine)

	out, logs, err := runCLI(t, "-input", input, "-skip-malformed", "summary")
	require.NoError(t, err)
	require.Contains(t, out, "criminals:            5\n")
	require.Contains(t, logs, "skipping malformed line")
}
