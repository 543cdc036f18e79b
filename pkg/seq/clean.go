package seq

var isLetter = [256]bool{
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

// Clean acts on a byte slice in place and removes everything that is
// not an ascii letter. Newlines, carriage returns, digits, gaps all go.
// It returns the shortened slice. The capacity is unchanged.
func Clean(b []byte) []byte {
	out := b[:0]
	for _, c := range b {
		if isLetter[c] {
			out = append(out, c)
		}
	}
	return out
}
