// Package seq provides storage-independent contracts for biological
// sequences over a fixed alphabet, a plain array-backed implementation,
// and derived operations (reverse complement, canonical form, backend
// conversion) written once against the contracts.  Bit-packed storage
// lives in the seq/packed subpackage and satisfies the same contracts.
package seq

import (
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/alphabet"
)

// Sequence is a read-only sequence of alphabet characters.  Indexing out
// of bounds or slicing with an invalid range is a programmer error and
// panics; it is never reported as a recoverable error.
type Sequence interface {
	// Alphabet returns the alphabet every character is drawn from.
	Alphabet() *alphabet.Alphabet
	// Len returns the number of characters.
	Len() int
	// At returns the character at position i.  It panics if i is out of
	// bounds.
	At(i int) alphabet.Char
	// Slice returns a borrowed view of the half-open range [start, end).
	// The view stays valid as long as the underlying sequence is neither
	// resized nor dropped.  It panics unless 0 <= start <= end <= Len().
	Slice(start, end int) Sequence
}

// MutSequence is a sequence whose characters can be overwritten in place.
// Views (slices) of mutable storage write through to their owner.
type MutSequence interface {
	Sequence
	// Set overwrites the character at position i.  It panics if i is out
	// of bounds.
	Set(i int, c alphabet.Char)
}

// EditableSequence is an owned sequence that can also grow and shrink.
type EditableSequence interface {
	MutSequence
	// Push appends one character.
	Push(c alphabet.Char)
	// Reserve ensures capacity for at least additional more characters.
	Reserve(additional int)
	// Resize changes the length to n, filling new positions with fill.
	Resize(n int, fill alphabet.Char)
	// Splice replaces the half-open range [start, end) with the contents
	// of repl.  repl may alias the receiver; implementations must read all
	// replacement characters before overwriting any of their own storage.
	Splice(start, end int, repl Sequence)
}

// CharIter is the minimal iteration contract: Scan advances to the next
// character and reports whether one was produced; Char returns it.  The
// pattern follows bufio.Scanner.  Iterators are finite and single-pass;
// sequence-backed iterators are additionally restartable via Reset.
type CharIter interface {
	Scan() bool
	Char() alphabet.Char
}

// Appender is the minimal construction contract.  Any type implementing
// it gets all generic building operations (Append, Copy, CopyRevComp,
// AppendBytes) for free.
type Appender interface {
	Alphabet() *alphabet.Alphabet
	Push(c alphabet.Char)
	Reserve(additional int)
}

// checkRange panics unless [start, end) is a valid half-open range for a
// sequence of length n.
func checkRange(start, end, n int) {
	if start < 0 || start > end || end > n {
		log.Panicf("invalid range [%d, %d) for sequence of length %d", start, end, n)
	}
}

// checkIndex panics unless i is a valid position for a sequence of
// length n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		log.Panicf("index %d out of range for sequence of length %d", i, n)
	}
}
