// 7 feb 2018

package nw

import (
	"fmt"
	"strings"
)

// ScoreMat is the dynamic programming matrix for one pair of sequences.
// All the cells live in one backing slice and Mat has a slice into it
// for each row, so mat.Mat[i][j] works as expected.
type ScoreMat struct {
	Mat      [][]int
	fullData []int
}

// fixSlices sets the row pointers into the backing store.
func (mat *ScoreMat) fixSlices(n_r, n_c int) {
	tmp := mat.fullData
	mat.Mat = make([][]int, n_r)
	for i := range mat.Mat {
		mat.Mat[i] = tmp[:n_c:n_c]
		tmp = tmp[n_c:]
	}
}

// NewScoreMat gives us an n_r x n_c matrix of zeroes. The caller has
// already checked the size is sensible.
func NewScoreMat(n_r, n_c int) *ScoreMat {
	r := new(ScoreMat)
	r.fullData = make([]int, n_r*n_c)
	r.fixSlices(n_r, n_c)
	return r
}

// Size returns the number of rows and number of columns
func (mat *ScoreMat) Size() (nrow, ncol int) {
	if nrow = len(mat.Mat); nrow == 0 {
		return 0, 0
	}
	ncol = len(mat.Mat[0])
	return
}

// At returns cell (i, j).
func (mat *ScoreMat) At(i, j int) int { return mat.Mat[i][j] }

// Score is the bottom right cell, the score of the whole alignment.
func (mat *ScoreMat) Score() int {
	nrow, ncol := mat.Size()
	return mat.Mat[nrow-1][ncol-1]
}

// String returns the matrix in a form that might be useful for debugging.
func (mat *ScoreMat) String() string {
	var sb strings.Builder
	for _, row := range mat.Mat {
		for _, x := range row {
			fmt.Fprintf(&sb, "%5d", x)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
