package nwscore

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/nwscore/pkg/pairs"
)

// resultWriter gets results in emission order. Flush is called once
// at the end.
type resultWriter interface {
	Write(r pairs.Result) error
	Flush() error
}

func newWriter(format string, w io.Writer, nseq int) resultWriter {
	bw := bufio.NewWriter(w)
	switch format {
	case FmtTSV:
		return &tsvWriter{bw}
	case FmtTable:
		return newTableWriter(bw, nseq)
	}
	return &textWriter{bw}
}

type textWriter struct{ w *bufio.Writer }

func (t *textWriter) Write(r pairs.Result) error {
	_, err := fmt.Fprintf(t.w, "Score for alignment of seq%d to seq%d is %d\n", r.I, r.J, r.Score)
	return err
}

func (t *textWriter) Flush() error { return t.w.Flush() }

type tsvWriter struct{ w *bufio.Writer }

func (t *tsvWriter) Write(r pairs.Result) error {
	_, err := fmt.Fprintf(t.w, "seq%d\tseq%d\t%d\n", r.I, r.J, r.Score)
	return err
}

func (t *tsvWriter) Flush() error { return t.w.Flush() }

// tableWriter collects scores in a symmetric nseq x nseq matrix and
// prints it at the end. Cells we never got, including the diagonal,
// hold NaN and print as "-".
type tableWriter struct {
	w   *bufio.Writer
	tbl *matrix.FMatrix2d
}

func newTableWriter(w *bufio.Writer, nseq int) *tableWriter {
	tbl := matrix.NewFMatrix2d(nseq, nseq)
	nan := float32(math.NaN())
	for _, row := range tbl.Mat {
		for j := range row {
			row[j] = nan
		}
	}
	return &tableWriter{w: w, tbl: tbl}
}

func (t *tableWriter) Write(r pairs.Result) error {
	scr := float32(r.Score)
	t.tbl.Mat[r.I-1][r.J-1] = scr
	t.tbl.Mat[r.J-1][r.I-1] = scr
	return nil
}

func cellStr(x float32) string {
	if math.IsNaN(float64(x)) {
		return "-"
	}
	return strconv.Itoa(int(x))
}

func (t *tableWriter) Flush() error {
	nseq := len(t.tbl.Mat)
	if nseq == 0 {
		return t.w.Flush()
	}
	label := func(i int) string { return "seq" + strconv.Itoa(i+1) }
	width := len(label(nseq - 1))
	for _, row := range t.tbl.Mat {
		for _, x := range row {
			width = max(width, len(cellStr(x)))
		}
	}
	fmt.Fprintf(t.w, "%*s", width, "")
	for j := 0; j < nseq; j++ {
		fmt.Fprintf(t.w, " %*s", width, label(j))
	}
	t.w.WriteByte('\n')
	for i, row := range t.tbl.Mat {
		fmt.Fprintf(t.w, "%-*s", width, label(i))
		for _, x := range row {
			fmt.Fprintf(t.w, " %*s", width, cellStr(x))
		}
		t.w.WriteByte('\n')
	}
	return t.w.Flush()
}
