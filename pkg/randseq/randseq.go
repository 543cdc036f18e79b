// 31 July 2020

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const (
	lineWidth = 60 // residues per output line
	nPadJunk  = 9  // about 1 in nPadJunk characters is rubbish if Junk is set
)

var letters = []byte{'A', 'C', 'G', 'T'}

// junk is what we sprinkle into sequence lines. The reader has to
// throw all of it away.
var junk = []byte{' ', '\t', '\r', '0', '7', '-', '*', '.'}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Junk  bool      // Put non-letters into the sequence lines
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// addJunk returns a copy of s with rubbish characters at random
// positions.
func addJunk(s []byte, rnd *rand.Rand) []byte {
	ret := make([]byte, 0, len(s)+len(s)/nPadJunk+1)
	for _, c := range s {
		if rnd.Intn(nPadJunk) == 0 {
			ret = append(ret, junk[rnd.Intn(len(junk))])
		}
		ret = append(ret, c)
	}
	return ret
}

// writeseq takes sequences from sChan, adds a comment and writes them out
// broken into lines. n is the number of the sequence, so the
// output has comment lines ">something 1, >something 2..."
func writeseq(sChan <-chan []byte, args *RandSeqArgs, errp *error, wg *sync.WaitGroup) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	junkrnd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *errp != nil {
			continue // drain
		}
		if _, err := fmt.Fprintf(args.Wrtr, ">%s %[2]*d\n", args.Cmmt, width, i); err != nil {
			*errp = err
			continue
		}
		for len(s) > 0 {
			n := min(lineWidth, len(s))
			line := s[:n:n]
			if args.Junk {
				line = addJunk(line, junkrnd)
			}
			s = s[n:]
			if _, err := args.Wrtr.Write(append(line, '\n')); err != nil {
				*errp = err
				break
			}
		}
	}
}

// RandSeqMain writes random nucleotide sequences to an io.Writer.
// The same seed gives the same sequences, with or without junk.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Len < 1 {
		return fmt.Errorf("randseq: sequence length %d, must be at least 1", args.Len)
	}
	var wg sync.WaitGroup
	var err error
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &err, &wg)
	for i := 0; i < args.Nseq; i++ {
		sChan <- getseq(args.Len, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}

// Seqs returns nseq random sequences of length seqlen without writing
// anything. It is handy for tests and benchmarks.
func Seqs(iseed int64, nseq, seqlen int) [][]byte {
	rnd := rand.New(rand.NewSource(iseed))
	ret := make([][]byte, nseq)
	for i := range ret {
		ret[i] = getseq(seqlen, rnd)
	}
	return ret
}
