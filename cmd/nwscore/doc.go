/*

Nwscore reads a file of sequences and prints the Needleman-Wunsch global
alignment score for every pair.
Usage:
	nwscore [flags] infile match mismatch gap
	nwscore randseq [flags] file nseq length

infile looks like fasta. A line starting with ">" begins a sequence. The
lines after it are joined up, after removing everything which is not a
letter, so digits, gaps and white space all go. Letters are compared
exactly, so "a" does not match "A".

match, mismatch and gap are integers and are added, so a gap penalty is
usually negative. For each pair, in the order seq1/seq2, seq1/seq3, ...
seq2/seq3 ..., it prints
	Score for alignment of seq1 to seq2 is 1

Flags, which must come before infile:
	-t, --threads
		number of goroutines aligning pairs. Output order does not change.
	-f, --format
		text (default), tsv, or table which prints a square matrix of scores
	-m, --mode
		rows (default) keeps two rows of the score matrix, full keeps all of it.
		The score is the same.
	--max-line, --max-seq
		limits on input line length and number of sequences. 0 means no limit.
	--max-cells
		a pair which needs a bigger matrix is skipped with a warning
	--config
		a yaml, toml or json file with any of the settings above
	-v, --verbosity

Settings can also come from the environment, NWSCORE_THREADS, NWSCORE_MAX_CELLS ...

Exit status is 0 on success, 2 for a bad command line or settings and 1
for anything else, including pairs that were skipped.

randseq writes random nucleotide sequences for testing. --junk scatters
rubbish through the sequence lines, which nwscore should ignore.

*/
package main
