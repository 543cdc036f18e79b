// Package nw scores global pairwise alignments the Needleman and Wunsch
// way, with a linear gap penalty and identity scoring. Only the score
// comes back. There is no traceback, so no directions are stored.
//
// Cell (i, j) of the matrix is the best score for aligning the first i
// residues of s with the first j residues of t. Row 0 and column 0 are
// all gaps. Each interior cell is the best of
//
//	diagonal  (i-1, j-1) + match or mismatch
//	up        (i-1, j)   + gap
//	left      (i, j-1)   + gap
//
// and the answer is in the bottom right corner.
package nw

import (
	"errors"
	"fmt"
	"math"
)

// ErrResourceExhausted is returned when the matrix for a pair would
// be bigger than allowed, or its size does not fit in an int.
var ErrResourceExhausted = errors.New("nw: score matrix too big")

// Scheme is the scoring. Signs are not checked. A gap penalty is
// normally negative and is added, not subtracted.
type Scheme struct {
	Match    int
	Mismatch int
	Gap      int
}

// MemoryMode says whether we keep the whole matrix or just two rows.
type MemoryMode byte

const (
	TwoRows    MemoryMode = iota // two rows, O(shorter sequence) space
	FullMatrix                   // all (len(s)+1) x (len(t)+1) cells
)

// DefaultMaxCells is big enough for a pair of 16k residue sequences.
const DefaultMaxCells = 1 << 28

// Options controls the aligner. The zero value is not useful, since
// MaxCells would be zero. Use DefaultOptions.
type Options struct {
	Mode     MemoryMode
	MaxCells int // most cells we will allocate for one pair
}

// DefaultOptions returns two-row mode and DefaultMaxCells.
func DefaultOptions() Options {
	return Options{Mode: TwoRows, MaxCells: DefaultMaxCells}
}

func (m MemoryMode) String() string {
	if m == FullMatrix {
		return "full"
	}
	return "rows"
}

// ParseMode converts "full" or "rows" to a MemoryMode.
func ParseMode(s string) (MemoryMode, error) {
	switch s {
	case "full":
		return FullMatrix, nil
	case "rows", "":
		return TwoRows, nil
	}
	return TwoRows, fmt.Errorf("nw: unknown memory mode %q, want rows or full", s)
}

// nCells returns nrow * ncol, if it neither overflows nor goes over limit.
func nCells(nrow, ncol, limit int) (int, error) {
	const emsg = "%w: %d x %d cells, limit %d"
	if ncol != 0 && nrow > math.MaxInt/ncol {
		return 0, fmt.Errorf(emsg, ErrResourceExhausted, nrow, ncol, limit)
	}
	n := nrow * ncol
	if n > limit {
		return 0, fmt.Errorf(emsg, ErrResourceExhausted, nrow, ncol, limit)
	}
	return n, nil
}

func max3(a, b, c int) int {
	if a >= b {
		if a >= c {
			return a
		}
		return c
	}
	if b >= c {
		return b
	}
	return c
}

// Fill allocates and fills the full matrix for s and t. It ignores
// opts.Mode. s runs down the rows, t along the columns.
func Fill(s, t []byte, scheme Scheme, opts *Options) (*ScoreMat, error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	nrow, ncol := len(s)+1, len(t)+1
	if _, err := nCells(nrow, ncol, opts.MaxCells); err != nil {
		return nil, err
	}
	smat := NewScoreMat(nrow, ncol)
	mat := smat.Mat
	gap := scheme.Gap

	for j := range mat[0] { // boundaries first
		mat[0][j] = gap * j
	}
	for i := 1; i < nrow; i++ {
		mat[i][0] = gap * i
	}

	for i := 1; i < nrow; i++ { // walk along each row, left to right
		cs := s[i-1]
		up, row := mat[i-1], mat[i]
		for j := 1; j < ncol; j++ {
			diag := up[j-1] + scheme.Mismatch
			if cs == t[j-1] {
				diag = up[j-1] + scheme.Match
			}
			row[j] = max3(diag, up[j]+gap, row[j-1]+gap)
		}
	}
	return smat, nil
}

// rowScore gives the same answer as Fill, but only keeps two rows.
// The shorter sequence goes along the columns.
func rowScore(s, t []byte, scheme Scheme, limit int) (int, error) {
	if len(t) > len(s) {
		s, t = t, s // the score is symmetric
	}
	ncol := len(t) + 1
	if _, err := nCells(2, ncol, limit); err != nil {
		return 0, err
	}
	gap := scheme.Gap
	prev, curr := make([]int, ncol), make([]int, ncol)
	for j := range prev {
		prev[j] = gap * j
	}
	for i := 1; i <= len(s); i++ {
		cs := s[i-1]
		curr[0] = gap * i
		for j := 1; j < ncol; j++ {
			diag := prev[j-1] + scheme.Mismatch
			if cs == t[j-1] {
				diag = prev[j-1] + scheme.Match
			}
			curr[j] = max3(diag, prev[j]+gap, curr[j-1]+gap)
		}
		prev, curr = curr, prev
	}
	return prev[ncol-1], nil
}

// Align returns the optimal global alignment score of s and t.
// Characters are compared exactly, so 'a' and 'A' do not match.
// An empty sequence is allowed and costs a gap per residue of the
// other. If the matrix would be too big, the error wraps
// ErrResourceExhausted and nothing is allocated.
func Align(s, t []byte, scheme Scheme, opts *Options) (int, error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if opts.Mode == FullMatrix {
		smat, err := Fill(s, t, scheme, opts)
		if err != nil {
			return 0, err
		}
		return smat.Score(), nil
	}
	return rowScore(s, t, scheme, opts.MaxCells)
}
