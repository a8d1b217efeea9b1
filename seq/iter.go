package seq

import "github.com/genomekit/genome/alphabet"

// SeqIter iterates over the characters of a sequence, optionally
// back-to-front with every character complemented.  The zero value is not
// usable; construct with Iter or RevCompIter.  A SeqIter never mutates its
// source and can be restarted with Reset.
type SeqIter struct {
	s       Sequence
	revComp bool
	next    int
	cur     alphabet.Char
}

// Iter returns a forward iterator over s.
func Iter(s Sequence) *SeqIter {
	return &SeqIter{s: s}
}

// RevCompIter returns an iterator producing the reverse complement of s:
// the characters of s back-to-front, each complemented.
func RevCompIter(s Sequence) *SeqIter {
	return &SeqIter{s: s, revComp: true}
}

// Scan advances to the next character, returning false when the sequence
// is exhausted.
func (it *SeqIter) Scan() bool {
	n := it.s.Len()
	if it.next >= n {
		return false
	}
	if it.revComp {
		it.cur = it.s.Alphabet().Complement(it.s.At(n - 1 - it.next))
	} else {
		it.cur = it.s.At(it.next)
	}
	it.next++
	return true
}

// Char returns the character produced by the last successful Scan.
func (it *SeqIter) Char() alphabet.Char { return it.cur }

// Reset restarts the iterator from the beginning.
func (it *SeqIter) Reset() { it.next = 0 }
