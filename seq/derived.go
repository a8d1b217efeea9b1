package seq

import (
	"math/rand"

	"github.com/genomekit/genome/alphabet"
)

// Bytes renders the sequence in its ASCII form.
func Bytes(s Sequence) []byte {
	a := s.Alphabet()
	out := make([]byte, s.Len())
	for i := range out {
		out[i] = a.ASCII(s.At(i))
	}
	return out
}

// String renders the sequence in its ASCII form.  Alphabets are subsets
// of ASCII, so the result is always valid UTF-8.
func String(s Sequence) string {
	return string(Bytes(s))
}

// Valid reports whether every character of s is a member of its alphabet.
// Typed storage cannot hold an out-of-range character, so this is mainly
// useful for layers that bypass the checked constructors.
func Valid(s Sequence) bool {
	limit := alphabet.Char(s.Alphabet().Len())
	for i := 0; i < s.Len(); i++ {
		if s.At(i) >= limit {
			return false
		}
	}
	return true
}

// Equal reports whether a and b share an alphabet and contain the same
// characters in the same order.  The storage backends may differ.
func Equal(a, b Sequence) bool {
	if a.Alphabet() != b.Alphabet() || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// IsCanonical reports whether s is lexicographically smaller than or
// equal to its reverse complement.  The comparison is lazy: it stops at
// the first position where the forward character and the corresponding
// reverse-complement character differ, and never materializes the
// reverse complement.
func IsCanonical(s Sequence) bool {
	a := s.Alphabet()
	n := s.Len()
	for i := 0; i < n; i++ {
		forward := s.At(i)
		reverse := a.Complement(s.At(n - 1 - i))
		if forward < reverse {
			return true
		}
		if forward > reverse {
			return false
		}
	}
	return true
}

// IsSelfComplemental reports whether s equals its own reverse complement.
// For identity-complement alphabets (amino acids) this degenerates to a
// palindrome check.
func IsSelfComplemental(s Sequence) bool {
	a := s.Alphabet()
	n := s.Len()
	for i := 0; i < n; i++ {
		if s.At(i) != a.Complement(s.At(n-1-i)) {
			return false
		}
	}
	return true
}

// Append pushes every character produced by it onto dst.
func Append(dst Appender, it CharIter) {
	for it.Scan() {
		dst.Push(it.Char())
	}
}

// Copy appends a copy of src onto dst.  dst and src may use different
// storage backends but must share an alphabet.
func Copy(dst Appender, src Sequence) {
	dst.Reserve(src.Len())
	Append(dst, Iter(src))
}

// CopyRevComp appends the reverse complement of src onto dst.
func CopyRevComp(dst Appender, src Sequence) {
	dst.Reserve(src.Len())
	Append(dst, RevCompIter(src))
}

// AppendByteIter validates and appends ASCII bytes produced by next.  If
// a byte is not part of dst's alphabet, dst is rolled back to its
// original length and a *alphabet.NotInAlphabetError is returned.
func AppendByteIter(dst EditableSequence, next func() (byte, bool)) error {
	a := dst.Alphabet()
	originalLen := dst.Len()
	for {
		ascii, ok := next()
		if !ok {
			return nil
		}
		c, err := a.Char(ascii)
		if err != nil {
			fill, _ := a.CharFromIndex(0)
			dst.Resize(originalLen, fill)
			return err
		}
		dst.Push(c)
	}
}

// AppendBytes validates and appends a slice of ASCII bytes, rolling back
// on the first invalid byte.
func AppendBytes(dst EditableSequence, b []byte) error {
	dst.Reserve(len(b))
	i := 0
	return AppendByteIter(dst, func() (byte, bool) {
		if i >= len(b) {
			return 0, false
		}
		ascii := b[i]
		i++
		return ascii, true
	})
}

// Delete removes the characters in the half-open range [start, end),
// shifting the suffix left.
func Delete(s EditableSequence, start, end int) {
	n := s.Len()
	checkRange(start, end, n)
	k := end - start
	if k == 0 {
		return
	}
	for i := start; i < n-k; i++ {
		s.Set(i, s.At(i+k))
	}
	fill, _ := s.Alphabet().CharFromIndex(0)
	s.Resize(n-k, fill)
}

// InsertRepeat copies the characters in [srcStart, srcEnd) and inserts
// the copy at position target, as produced by e.g. a tandem repeat.  The
// source range and the insertion point may overlap; the copy always
// reflects the characters at their positions before the insertion.  The
// suffix is shifted by a backward copy after a resize so that no source
// character is overwritten before it is read.
func InsertRepeat(s EditableSequence, srcStart, srcEnd, target int) {
	n := s.Len()
	checkRange(srcStart, srcEnd, n)
	checkRange(target, target, n)
	k := srcEnd - srcStart
	if k == 0 {
		return
	}
	fill, _ := s.Alphabet().CharFromIndex(0)
	s.Resize(n+k, fill)
	for i := n - 1; i >= target; i-- {
		s.Set(i+k, s.At(i))
	}
	for i := 0; i < k; i++ {
		p := srcStart + i
		if p >= target {
			// The source character was moved right by the shift above.
			p += k
		}
		s.Set(target+i, s.At(p))
	}
}

// Random returns a uniformly random sequence of length n over a.
func Random(rng *rand.Rand, a *alphabet.Alphabet, n int) *Vec {
	v := NewVec(a)
	v.Reserve(n)
	for i := 0; i < n; i++ {
		c, _ := a.CharFromIndex(rng.Intn(a.Len()))
		v.Push(c)
	}
	return v
}
