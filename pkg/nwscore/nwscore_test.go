package nwscore_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/nwscore/pkg/nwscore"
	. "github.com/andrew-torda/nwscore/pkg/seq/common"
)

const set1 = `>s1
AAG
>s2
AGG
>s3
A
`

const set1Text = `Score for alignment of seq1 to seq2 is 1
Score for alignment of seq1 to seq3 is -3
Score for alignment of seq2 to seq3 is -3
`

func wrtSet(t *testing.T, s string) string {
	t.Helper()
	fname, err := WrtTemp(s)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

func run(args ...string) (code int, stdout, stderr string) {
	var o, e bytes.Buffer
	code = nwscore.Run(context.Background(), args, &o, &e)
	return code, o.String(), e.String()
}

func TestText(t *testing.T) {
	fname := wrtSet(t, set1)
	code, out, errs := run(fname, "1", "-1", "-2")
	assert.Equal(t, ExitSuccess, code, errs)
	assert.Equal(t, set1Text, out)
	assert.Empty(t, errs)
}

func TestSingle(t *testing.T) {
	fname := wrtSet(t, ">s1\nA\n")
	code, out, _ := run(fname, "2", "-1", "-1")
	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, out)
}

func TestThreadsAndModes(t *testing.T) {
	fname := wrtSet(t, set1)
	for _, extra := range [][]string{
		{"-t", "4"},
		{"--threads", "3", "--mode", "full"},
		{"-m", "rows", "-v", "1"},
		{"-t", "2305843009213693952"},
	} {
		args := append(extra, fname, "1", "-1", "-2")
		code, out, errs := run(args...)
		assert.Equal(t, ExitSuccess, code, errs)
		assert.Equal(t, set1Text, out, "flags %v", extra)
	}
}

func TestFormats(t *testing.T) {
	fname := wrtSet(t, set1)
	code, out, _ := run("-f", "tsv", fname, "1", "-1", "-2")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "seq1\tseq2\t1\nseq1\tseq3\t-3\nseq2\tseq3\t-3\n", out)

	code, out, _ = run("--format", "table", fname, "1", "-1", "-2")
	assert.Equal(t, ExitSuccess, code)
	want := `     seq1 seq2 seq3
seq1    -    1   -3
seq2    1    -   -3
seq3   -3   -3    -
`
	assert.Equal(t, want, out)
}

func TestUsageErrors(t *testing.T) {
	fname := wrtSet(t, set1)
	cases := [][]string{
		{},
		{fname, "1", "-1"},
		{fname, "1", "-1", "2x"},
		{fname, "one", "-1", "-2"},
		{"-f", "xml", fname, "1", "-1", "-2"},
		{"-m", "banded", fname, "1", "-1", "-2"},
		{"--max-cells", "0", fname, "1", "-1", "-2"},
		{"--no-such-flag", fname, "1", "-1", "-2"},
	}
	for _, args := range cases {
		code, out, errs := run(args...)
		assert.Equal(t, ExitUsageError, code, "args %v", args)
		assert.Empty(t, out, "args %v", args)
		assert.Contains(t, errs, "usage:", "args %v", args)
	}
}

func TestInputErrors(t *testing.T) {
	fname := wrtSet(t, set1)
	cases := [][]string{
		{"/no/such/file.fa", "1", "-1", "-2"},
		{"--max-seq", "2", fname, "1", "-1", "-2"},
		{"--max-line", "2", fname, "1", "-1", "-2"},
		{wrtSet(t, ">s1\n>s2\nAA\n"), "1", "-1", "-2"},
	}
	for _, args := range cases {
		code, out, errs := run(args...)
		assert.Equal(t, ExitFailure, code, "args %v", args)
		assert.Empty(t, out, "args %v", args)
		assert.NotEmpty(t, errs, "args %v", args)
	}
}

// TestSkipped has one pair that needs 4 x 4 = 16 cells in full mode.
func TestSkipped(t *testing.T) {
	fname := wrtSet(t, set1)
	code, out, errs := run("-m", "full", "--max-cells", "15", fname, "1", "-1", "-2")
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Score for alignment of seq1 to seq3 is -3\nScore for alignment of seq2 to seq3 is -3\n", out)
	assert.Contains(t, errs, "skipping seq1 to seq2")
}

func TestSettingsFile(t *testing.T) {
	fp, err := os.CreateTemp("", "_del_me_*.yaml")
	require.NoError(t, err)
	defer os.Remove(fp.Name())
	_, err = fp.WriteString("format: tsv\nthreads: 2\n")
	require.NoError(t, err)
	require.NoError(t, fp.Close())

	fname := wrtSet(t, set1)
	code, out, errs := run("--config", fp.Name(), fname, "1", "-1", "-2")
	assert.Equal(t, ExitSuccess, code, errs)
	assert.True(t, strings.HasPrefix(out, "seq1\tseq2\t1\n"), out)

	code, _, _ = run("--config", "/no/such/settings.yaml", fname, "1", "-1", "-2")
	assert.Equal(t, ExitUsageError, code)
}

func TestEnv(t *testing.T) {
	t.Setenv("NWSCORE_FORMAT", "tsv")
	fname := wrtSet(t, set1)
	code, out, _ := run(fname, "1", "-1", "-2")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, 3, strings.Count(out, "\t-3\n")+strings.Count(out, "\t1\n"))

	code, out, _ = run("-f", "text", fname, "1", "-1", "-2") // flag beats env
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, set1Text, out)
}

func TestRandSeqCmd(t *testing.T) {
	code, out, errs := run("randseq", "-r", "3", "--junk", "-", "4", "30")
	require.Equal(t, ExitSuccess, code, errs)
	assert.Equal(t, 4, strings.Count(out, ">"))

	fname := wrtSet(t, out)
	code, out, errs = run(fname, "1", "-1", "-2")
	assert.Equal(t, ExitSuccess, code, errs)
	assert.Equal(t, 6, strings.Count(out, "Score for alignment"))

	code, _, _ = run("randseq", "-", "4")
	assert.Equal(t, ExitUsageError, code)
	code, _, _ = run("randseq", "-", "4", "0")
	assert.Equal(t, ExitUsageError, code)
}
