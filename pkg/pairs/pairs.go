// Package pairs runs the aligner over every unordered pair of a group
// of sequences. Pairs come out in a fixed order, (0,1), (0,2) ...
// (0,n-1), (1,2) ..., no matter how many goroutines do the work.
package pairs

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/nwscore/pkg/nw"
)

// Pair is two sequence indices, counting from zero, with I < J.
type Pair struct {
	I, J int
}

// Result is what we emit for a pair. I and J count from 1, as the user
// sees them. If Err is set, the pair could not be aligned and Score
// means nothing.
type Result struct {
	I, J  int
	Score int
	Err   error
}

// Options for Run. Threads less than 1 means 1.
type Options struct {
	Threads int
	Align   nw.Options
}

// DefaultOptions is one thread and the aligner defaults.
func DefaultOptions() Options {
	return Options{Threads: 1, Align: nw.DefaultOptions()}
}

// NPair is the number of unordered pairs from n things.
func NPair(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Enumerate returns all the pairs for n sequences in emission order.
func Enumerate(n int) []Pair {
	ret := make([]Pair, 0, NPair(n))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			ret = append(ret, Pair{i, j})
		}
	}
	return ret
}

type job struct {
	k int // position in emission order
	p Pair
}

type numbered struct {
	k int
	r Result
}

// Run aligns every pair of seqs and calls emit once per pair, in
// order, from the calling goroutine. A pair which is too big to align
// is emitted with Err set and does not stop the run. An error from
// emit stops the run and is returned. If ctx is cancelled, no new
// pairs are started and Run returns ctx.Err(), unless every pair had
// already been emitted. Results already emitted are complete.
func Run(ctx context.Context, seqs [][]byte, scheme nw.Scheme, opts *Options,
	emit func(Result) error) error {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if len(seqs) < 2 {
		return nil
	}
	npair := NPair(len(seqs))
	nthread := min(max(opts.Threads, 1), npair) // at most one worker per pair

	ctx2, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx2)
	jobs := make(chan job, nthread*2)
	results := make(chan numbered, nthread*2)

	g.Go(func() error { // feed work
		defer close(jobs)
		for k, p := range Enumerate(len(seqs)) {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case jobs <- job{k, p}:
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(nthread)
	for w := 0; w < nthread; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				scr, err := nw.Align(seqs[j.p.I], seqs[j.p.J], scheme, &opts.Align)
				r := Result{I: j.p.I + 1, J: j.p.J + 1, Score: scr, Err: err}
				select {
				case results <- numbered{j.k, r}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	// Results arrive in any order. Keep them until it is their turn.
	var emitErr error
	pending := make(map[int]Result, nthread*2)
	next := 0
	for nr := range results {
		if emitErr != nil {
			continue // drain
		}
		pending[nr.k] = nr.r
		for r, ok := pending[next]; ok; r, ok = pending[next] {
			delete(pending, next)
			next++
			if err := emit(r); err != nil {
				emitErr = err
				cancel()
				break
			}
		}
	}

	gErr := g.Wait()
	switch {
	case emitErr != nil:
		return emitErr
	case ctx.Err() != nil && next < npair:
		return ctx.Err()
	}
	return gErr
}
