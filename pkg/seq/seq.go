// 20 Dec 2017

// Package seq holds the sequences we align. They begin their lives
// in a fasta-like file, a header line starting with ">" followed by
// lines of residues. Anything in the residue lines that is not a
// letter is thrown away on reading.
package seq

import (
	"errors"
	"fmt"
	"strings"

	. "github.com/andrew-torda/nwscore/pkg/seq/common"
)

var (
	// ErrIO is wrapped around anything that goes wrong opening or
	// reading the input.
	ErrIO = errors.New("seq: reading input")

	// ErrCapacity says a line was too long or there were too many
	// sequences for the limits in Options.
	ErrCapacity = errors.New("seq: capacity exceeded")

	// ErrEmptySeq is for a header with no residues after it.
	ErrEmptySeq = errors.New("seq: zero length sequence")
)

// Options contains all the choices passed in from the caller.
// A zero limit means there is no limit.
type Options struct {
	MaxLineLen int // longest line we accept, not counting the line terminator
	MaxSeq     int // most sequences we accept
}

// Seq is one sequence and the comment from its header.
type Seq struct {
	cmmt string
	seq  []byte
}

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// Cmmt returns the comment without the leading ">"
func (s Seq) Cmmt() string { return s.cmmt }

func (s Seq) Len() int { return len(s.seq) }

// String gives the sequence back in the input format.
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s\n", CmmtChar, s.cmmt, s.seq)
}

// SeqGrp is an ordered group of sequences. The order is the order
// they were read, and sequence i is reported to the user as i+1.
type SeqGrp struct {
	seqs []Seq
}

// Add appends a sequence to the end of the group.
func (seqgrp *SeqGrp) Add(s Seq) { seqgrp.seqs = append(seqgrp.seqs, s) }

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences. Do not append to it.
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Bytes returns the residues of each sequence, in order, without
// copying them.
func (seqgrp *SeqGrp) Bytes() [][]byte {
	b := make([][]byte, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		b[i] = s.GetSeq()
	}
	return b
}

// String puts all the sequences back together in input format.
func (seqgrp *SeqGrp) String() string {
	var sb strings.Builder
	for _, s := range seqgrp.seqs {
		sb.WriteString(s.String())
	}
	return sb.String()
}
