// Package packed stores sequences at the minimum bit width of their
// alphabet: each character occupies ceil(log2(alphabet size)) bits of a
// contiguous []uint64 buffer.  DNA packs at 2 bits per base, one quarter
// of the plain backend.  The types satisfy the contracts in package seq,
// so every derived operation there works on packed storage unchanged.
//
// Character i of a sequence occupies the bit range [i*w, (i+1)*w), least
// significant bit first within the buffer.  Views carry a bit offset, so
// slicing is exact even when the start position is not byte aligned.
package packed

import (
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/seq"
)

const wordBits = 64

// loadBits reads w bits at bit position p.  w is at most 8, so a value
// spans at most two words.
func loadBits(words []uint64, p uint64, w uint) uint64 {
	wi := p / wordBits
	bi := p % wordBits
	v := words[wi] >> bi
	if bi+uint64(w) > wordBits {
		v |= words[wi+1] << (wordBits - bi)
	}
	return v & (1<<w - 1)
}

// storeBits writes the low w bits of val at bit position p.
func storeBits(words []uint64, p uint64, w uint, val uint64) {
	mask := uint64(1)<<w - 1
	val &= mask
	wi := p / wordBits
	bi := p % wordBits
	words[wi] = words[wi]&^(mask<<bi) | val<<bi
	if bi+uint64(w) > wordBits {
		rem := wordBits - bi
		words[wi+1] = words[wi+1]&^(mask>>rem) | val>>rem
	}
}

func wordsFor(bits uint64) int {
	return int((bits + wordBits - 1) / wordBits)
}

// Vec is an owned, growable bit-packed sequence.
type Vec struct {
	alpha *alphabet.Alphabet
	w     uint
	n     int
	words []uint64
}

var (
	_ seq.EditableSequence = (*Vec)(nil)
	_ seq.MutSequence      = (*Slice)(nil)
)

// NewVec returns an empty packed sequence over the given alphabet.
func NewVec(a *alphabet.Alphabet) *Vec {
	return &Vec{alpha: a, w: uint(a.BitWidth())}
}

// VecFromBytes builds a packed sequence by validating ASCII bytes against
// the alphabet.
func VecFromBytes(a *alphabet.Alphabet, b []byte) (*Vec, error) {
	v := NewVec(a)
	if err := seq.AppendBytes(v, b); err != nil {
		return nil, err
	}
	return v, nil
}

// VecFromString builds a packed sequence from the ASCII form.
func VecFromString(a *alphabet.Alphabet, s string) (*Vec, error) {
	return VecFromBytes(a, []byte(s))
}

// CollectVec drains the iterator into a new packed sequence.
func CollectVec(a *alphabet.Alphabet, it seq.CharIter) *Vec {
	v := NewVec(a)
	seq.Append(v, it)
	return v
}

// Alphabet implements seq.Sequence.
func (v *Vec) Alphabet() *alphabet.Alphabet { return v.alpha }

// Len implements seq.Sequence.
func (v *Vec) Len() int { return v.n }

// At implements seq.Sequence.
func (v *Vec) At(i int) alphabet.Char {
	if i < 0 || i >= v.n {
		log.Panicf("index %d out of range for sequence of length %d", i, v.n)
	}
	return alphabet.Char(loadBits(v.words, uint64(i)*uint64(v.w), v.w))
}

// Slice implements seq.Sequence.  The view addresses the bit range
// [start*w, end*w) of v's buffer and stays valid until v grows or
// shrinks.
func (v *Vec) Slice(start, end int) seq.Sequence {
	checkRange(start, end, v.n)
	return &Slice{alpha: v.alpha, w: v.w, words: v.words, off: uint64(start) * uint64(v.w), n: end - start}
}

// Set implements seq.MutSequence.
func (v *Vec) Set(i int, c alphabet.Char) {
	if i < 0 || i >= v.n {
		log.Panicf("index %d out of range for sequence of length %d", i, v.n)
	}
	storeBits(v.words, uint64(i)*uint64(v.w), v.w, uint64(c))
}

// Push implements seq.EditableSequence, extending the buffer by exactly
// w bits.
func (v *Vec) Push(c alphabet.Char) {
	bits := uint64(v.n+1) * uint64(v.w)
	for len(v.words) < wordsFor(bits) {
		v.words = append(v.words, 0)
	}
	storeBits(v.words, uint64(v.n)*uint64(v.w), v.w, uint64(c))
	v.n++
}

// Reserve implements seq.EditableSequence.  additional is measured in
// characters.
func (v *Vec) Reserve(additional int) {
	need := wordsFor(uint64(v.n+additional) * uint64(v.w))
	if cap(v.words) >= need {
		return
	}
	words := make([]uint64, len(v.words), need)
	copy(words, v.words)
	v.words = words
}

// Resize implements seq.EditableSequence.
func (v *Vec) Resize(n int, fill alphabet.Char) {
	if n < 0 {
		log.Panicf("cannot resize to negative length %d", n)
	}
	if n <= v.n {
		v.n = n
		v.words = v.words[:wordsFor(uint64(n)*uint64(v.w))]
		return
	}
	v.Reserve(n - v.n)
	for v.n < n {
		v.Push(fill)
	}
}

// Splice implements seq.EditableSequence.  Replacing a bit range in place
// is unsafe when the replacement aliases the spliced buffer, so the
// replacement and the unaffected suffix are both materialized before the
// buffer is truncated and rebuilt.
func (v *Vec) Splice(start, end int, repl seq.Sequence) {
	checkRange(start, end, v.n)
	replCopy := CollectVec(v.alpha, seq.Iter(repl))
	suffix := CollectVec(v.alpha, seq.Iter(v.Slice(end, v.n)))
	v.n = start
	v.words = v.words[:wordsFor(uint64(start)*uint64(v.w))]
	seq.Copy(v, replCopy)
	seq.Copy(v, suffix)
}

// Clone returns an owned copy of v.
func (v *Vec) Clone() *Vec {
	return &Vec{alpha: v.alpha, w: v.w, n: v.n, words: append([]uint64(nil), v.words...)}
}

// RevComp returns an owned copy of the reverse complement of v.
func (v *Vec) RevComp() *Vec {
	out := NewVec(v.alpha)
	seq.CopyRevComp(out, v)
	return out
}

// SizeInMemory returns the number of bytes of the backing buffer,
// excluding the constant struct overhead.
func (v *Vec) SizeInMemory() int {
	return 8 * cap(v.words)
}

// String implements fmt.Stringer.
func (v *Vec) String() string { return seq.String(v) }

// Slice is a borrowed view over a bit range of a packed sequence.  The
// range need not be byte or word aligned.  Set writes through to the
// owning buffer.
type Slice struct {
	alpha *alphabet.Alphabet
	w     uint
	words []uint64
	off   uint64 // bit offset of the first character
	n     int    // length in characters
}

// Alphabet implements seq.Sequence.
func (s *Slice) Alphabet() *alphabet.Alphabet { return s.alpha }

// Len implements seq.Sequence.
func (s *Slice) Len() int { return s.n }

// At implements seq.Sequence.
func (s *Slice) At(i int) alphabet.Char {
	if i < 0 || i >= s.n {
		log.Panicf("index %d out of range for sequence of length %d", i, s.n)
	}
	return alphabet.Char(loadBits(s.words, s.off+uint64(i)*uint64(s.w), s.w))
}

// Slice implements seq.Sequence.
func (s *Slice) Slice(start, end int) seq.Sequence {
	checkRange(start, end, s.n)
	return &Slice{alpha: s.alpha, w: s.w, words: s.words, off: s.off + uint64(start)*uint64(s.w), n: end - start}
}

// Set implements seq.MutSequence, writing through to the owning buffer.
func (s *Slice) Set(i int, c alphabet.Char) {
	if i < 0 || i >= s.n {
		log.Panicf("index %d out of range for sequence of length %d", i, s.n)
	}
	storeBits(s.words, s.off+uint64(i)*uint64(s.w), s.w, uint64(c))
}

// String implements fmt.Stringer.
func (s *Slice) String() string { return seq.String(s) }

func checkRange(start, end, n int) {
	if start < 0 || start > end || end > n {
		log.Panicf("invalid range [%d, %d) for sequence of length %d", start, end, n)
	}
}
