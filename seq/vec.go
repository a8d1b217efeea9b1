package seq

import (
	"github.com/genomekit/genome/alphabet"
)

// Vec is an owned, growable sequence storing one character per slot.
// It is the baseline backend: O(1) random access and mutation at one
// byte per character.
type Vec struct {
	alpha *alphabet.Alphabet
	chars []alphabet.Char
}

var (
	_ EditableSequence = (*Vec)(nil)
	_ MutSequence      = (*Slice)(nil)
)

// NewVec returns an empty sequence over the given alphabet.
func NewVec(a *alphabet.Alphabet) *Vec {
	return &Vec{alpha: a}
}

// VecFromBytes builds a sequence by validating ASCII bytes against the
// alphabet.  It returns a *alphabet.NotInAlphabetError on the first byte
// outside the alphabet.
func VecFromBytes(a *alphabet.Alphabet, b []byte) (*Vec, error) {
	v := NewVec(a)
	if err := AppendBytes(v, b); err != nil {
		return nil, err
	}
	return v, nil
}

// VecFromString builds a sequence from the ASCII form, validating every
// byte.
func VecFromString(a *alphabet.Alphabet, s string) (*Vec, error) {
	return VecFromBytes(a, []byte(s))
}

// CollectVec drains the iterator into a new sequence.
func CollectVec(a *alphabet.Alphabet, it CharIter) *Vec {
	v := NewVec(a)
	Append(v, it)
	return v
}

// Alphabet implements Sequence.
func (v *Vec) Alphabet() *alphabet.Alphabet { return v.alpha }

// Len implements Sequence.
func (v *Vec) Len() int { return len(v.chars) }

// At implements Sequence.
func (v *Vec) At(i int) alphabet.Char {
	checkIndex(i, len(v.chars))
	return v.chars[i]
}

// Slice implements Sequence.  The view aliases v's storage and stays
// valid until v grows or shrinks.
func (v *Vec) Slice(start, end int) Sequence {
	checkRange(start, end, len(v.chars))
	return &Slice{alpha: v.alpha, chars: v.chars[start:end]}
}

// Set implements MutSequence.
func (v *Vec) Set(i int, c alphabet.Char) {
	checkIndex(i, len(v.chars))
	v.chars[i] = c
}

// Push implements EditableSequence.
func (v *Vec) Push(c alphabet.Char) {
	v.chars = append(v.chars, c)
}

// Reserve implements EditableSequence.
func (v *Vec) Reserve(additional int) {
	if cap(v.chars)-len(v.chars) >= additional {
		return
	}
	chars := make([]alphabet.Char, len(v.chars), len(v.chars)+additional)
	copy(chars, v.chars)
	v.chars = chars
}

// Resize implements EditableSequence.
func (v *Vec) Resize(n int, fill alphabet.Char) {
	if n <= len(v.chars) {
		v.chars = v.chars[:n]
		return
	}
	for len(v.chars) < n {
		v.chars = append(v.chars, fill)
	}
}

// Splice implements EditableSequence.  The replacement is rendered before
// any of v's storage is overwritten, so repl may be a view into v.
func (v *Vec) Splice(start, end int, repl Sequence) {
	checkRange(start, end, len(v.chars))
	r := make([]alphabet.Char, repl.Len())
	for i := range r {
		r[i] = repl.At(i)
	}
	tail := append([]alphabet.Char(nil), v.chars[end:]...)
	v.chars = append(append(v.chars[:start], r...), tail...)
}

// Clone returns an owned copy of v.
func (v *Vec) Clone() *Vec {
	return &Vec{alpha: v.alpha, chars: append([]alphabet.Char(nil), v.chars...)}
}

// RevComp returns an owned copy of the reverse complement of v.
func (v *Vec) RevComp() *Vec {
	out := NewVec(v.alpha)
	CopyRevComp(out, v)
	return out
}

// SizeInMemory returns the number of bytes of the backing buffer,
// excluding the constant struct overhead.
func (v *Vec) SizeInMemory() int {
	return cap(v.chars)
}

// String implements fmt.Stringer, rendering the ASCII form.
func (v *Vec) String() string { return String(v) }

// Slice is a borrowed view over the storage of a Vec (or of another
// Slice).  It is never allocated independently; Set writes through to the
// owner.
type Slice struct {
	alpha *alphabet.Alphabet
	chars []alphabet.Char
}

// Alphabet implements Sequence.
func (s *Slice) Alphabet() *alphabet.Alphabet { return s.alpha }

// Len implements Sequence.
func (s *Slice) Len() int { return len(s.chars) }

// At implements Sequence.
func (s *Slice) At(i int) alphabet.Char {
	checkIndex(i, len(s.chars))
	return s.chars[i]
}

// Slice implements Sequence.
func (s *Slice) Slice(start, end int) Sequence {
	checkRange(start, end, len(s.chars))
	return &Slice{alpha: s.alpha, chars: s.chars[start:end]}
}

// Set implements MutSequence, writing through to the owning sequence.
func (s *Slice) Set(i int, c alphabet.Char) {
	checkIndex(i, len(s.chars))
	s.chars[i] = c
}

// String implements fmt.Stringer.
func (s *Slice) String() string { return String(s) }
