// 3 Aug 2020

package seq

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadFile reads the sequences from fname. A regular file is mapped
// into memory. Anything else, a pipe or /dev/stdin, has no useful size
// and is read as a stream. Sequences are copied out of the mapping, so
// nothing refers to it after we return.
func ReadFile(fname string, s_opts *Options) (*SeqGrp, error) {
	var fp *os.File
	var err error
	if fp, err = os.Open(fname); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer fp.Close()

	seqgrp := new(SeqGrp)
	fi, err := fp.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !fi.Mode().IsRegular() {
		err = byReading(fp, seqgrp, s_opts)
	} else if fi.Size() != 0 { // mmap will not map an empty file
		err = byMmap(fp, seqgrp, s_opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return seqgrp, nil
}

// byReading is for pipes and devices.
func byReading(fp *os.File, seqgrp *SeqGrp, s_opts *Options) error {
	return ReadFasta(fp, seqgrp, s_opts)
}

// byMmap is for regular files which are not empty.
func byMmap(fp *os.File, seqgrp *SeqGrp, s_opts *Options) error {
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: mapping: %w", ErrIO, err)
	}
	defer mm.Unmap()
	return ReadFasta(bytes.NewReader(mm), seqgrp, s_opts)
}
