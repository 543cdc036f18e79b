// Reader for fasta-like files.

package seq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	. "github.com/andrew-torda/nwscore/pkg/seq/common"
)

type lexer struct {
	rdr    *bufio.Reader
	seqgrp *SeqGrp
	opts   *Options
	line   []byte // current line, no terminator
	nline  int
	cmmt   string // comment of the sequence being built
	seq    []byte // partial sequence
	eof    bool
	err    error
}

type stateFn func(*lexer) stateFn

// next puts the following line into l.line. It returns false at the end
// of input or if something went wrong, in which case l.err is set.
func (l *lexer) next() bool {
	if l.eof || l.err != nil {
		return false
	}
	line, err := l.rdr.ReadBytes('\n')
	if err != nil {
		if err != io.EOF {
			l.err = fmt.Errorf("%w: line %d: %w", ErrIO, l.nline+1, err)
			return false
		}
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.nline++
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if mx := l.opts.MaxLineLen; mx > 0 && len(line) > mx {
		const emsg = "%w: line %d has %d characters, limit is %d"
		l.err = fmt.Errorf(emsg, ErrCapacity, l.nline, len(line), mx)
		return false
	}
	l.line = line
	return true
}

func (l *lexer) isHeader() bool { return len(l.line) > 0 && l.line[0] == CmmtChar }

// startSeq is called on a header line.
func (l *lexer) startSeq() {
	if mx := l.opts.MaxSeq; mx > 0 && l.seqgrp.NSeq() >= mx {
		const emsg = "%w: more than %d sequences, line %d"
		l.err = fmt.Errorf(emsg, ErrCapacity, mx, l.nline)
		return
	}
	l.cmmt = string(l.line[1:])
	l.seq = make([]byte, 0)
}

// endSeq stores the sequence we have been building.
func (l *lexer) endSeq() {
	if l.err != nil {
		return
	}
	if len(l.seq) == 0 {
		l.err = fmt.Errorf("%w after \"%s\" (line %d)", ErrEmptySeq, l.cmmt, l.nline)
		return
	}
	l.seqgrp.Add(Seq{cmmt: l.cmmt, seq: l.seq})
	l.cmmt, l.seq = "", nil
}

// gskip throws away lines until the first header.
func gskip(l *lexer) stateFn {
	for l.next() {
		if l.isHeader() {
			l.startSeq()
			return gseq
		}
	}
	return nil
}

// gseq collects residue lines until the next header or the end.
func gseq(l *lexer) stateFn {
	if l.err != nil {
		return nil
	}
	if !l.next() {
		l.endSeq()
		return nil
	}
	if l.isHeader() {
		if l.endSeq(); l.err != nil {
			return nil
		}
		l.startSeq()
		return gseq
	}
	l.seq = append(l.seq, Clean(l.line)...)
	return gseq
}

// ReadFasta reads sequences from rdr and appends them to seqgrp.
// Lines before the first header are ignored. No sequences at all is
// not an error.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	if s_opts == nil {
		s_opts = &Options{}
	}
	l := lexer{rdr: bufio.NewReader(rdr), seqgrp: seqgrp, opts: s_opts}
	for state := gskip; state != nil; {
		state = state(&l)
	}
	return l.err
}
