// 4 April 2020

// Package nwscore reads a file of sequences and prints the global
// alignment score of every pair.
package nwscore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/andrew-torda/nwscore/pkg/pairs"
	"github.com/andrew-torda/nwscore/pkg/seq"
)

// ErrSkipped means some pairs were too big to align. The others were
// still written.
var ErrSkipped = errors.New("pairs skipped")

// Mymain is the top level main, after parsing the command line.
// Nothing is written to wrt if the input cannot be read.
// Diagnostics go to logger.
func Mymain(ctx context.Context, cfg *Config, wrt io.Writer, logger *log.Logger) error {
	s_opts := &seq.Options{MaxLineLen: cfg.MaxLine, MaxSeq: cfg.MaxSeq}
	seqgrp, err := seq.ReadFile(cfg.InFile, s_opts)
	if err != nil {
		return err
	}
	nseq := seqgrp.NSeq()
	if cfg.Vbsty > 0 {
		logger.Printf("%d sequences from %s, %d pairs, scoring %+v, %d threads",
			nseq, cfg.InFile, pairs.NPair(nseq), cfg.Scheme, cfg.Threads)
	}

	rw := newWriter(cfg.Format, wrt, nseq)
	p_opts := &pairs.Options{Threads: cfg.Threads, Align: cfg.AlignOpts()}
	var nskip int
	err = pairs.Run(ctx, seqgrp.Bytes(), cfg.Scheme, p_opts, func(r pairs.Result) error {
		if r.Err != nil {
			nskip++
			logger.Printf("skipping seq%d to seq%d: %v", r.I, r.J, r.Err)
			return nil
		}
		return rw.Write(r)
	})
	if ferr := rw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	if nskip > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSkipped, nskip, pairs.NPair(nseq))
	}
	return nil
}
