package nw_test

import (
	"testing"

	"github.com/andrew-torda/nwscore/pkg/nw"
	"github.com/andrew-torda/nwscore/pkg/randseq"
)

func benchmarkAlign(b *testing.B, n int, mode nw.MemoryMode) {
	seqs := randseq.Seqs(1, 2, n)
	opts := nw.DefaultOptions()
	opts.Mode = mode
	scheme := nw.Scheme{Match: 1, Mismatch: -1, Gap: -2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(seqs[0], seqs[1], scheme, &opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFull500(b *testing.B)  { benchmarkAlign(b, 500, nw.FullMatrix) }
func BenchmarkRows500(b *testing.B)  { benchmarkAlign(b, 500, nw.TwoRows) }
func BenchmarkFull2000(b *testing.B) { benchmarkAlign(b, 2000, nw.FullMatrix) }
func BenchmarkRows2000(b *testing.B) { benchmarkAlign(b, 2000, nw.TwoRows) }
