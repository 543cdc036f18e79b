// 31 July 2020

package randseq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/nwscore/pkg/randseq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr: &sb,
		Cmmt: "testing seq",
		Nseq: 500,
		Len:  160,
	}
	require.NoError(t, randseq.RandSeqMain(&args))
	assert.Equal(t, args.Nseq, strings.Count(sb.String(), ">"))
}

// TestSeed checks the same seed gives the same output.
func TestSeed(t *testing.T) {
	gen := func() string {
		var sb strings.Builder
		args := randseq.RandSeqArgs{Iseed: 99, Wrtr: &sb, Nseq: 4, Len: 130, Junk: true}
		require.NoError(t, randseq.RandSeqMain(&args))
		return sb.String()
	}
	assert.Equal(t, gen(), gen())
}

func TestBadLen(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &sb, Nseq: 1, Len: 0}
	assert.Error(t, randseq.RandSeqMain(&args))
}

func TestSeqs(t *testing.T) {
	seqs := randseq.Seqs(1, 3, 25)
	require.Len(t, seqs, 3)
	for _, s := range seqs {
		assert.Len(t, s, 25)
		assert.Empty(t, strings.Trim(string(s), "ACGT"))
	}
}
