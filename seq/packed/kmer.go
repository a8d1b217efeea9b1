package packed

import (
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/seq"
)

// Kmer is a bit-packed sequence whose length K is fixed at construction.
// For DNA and K <= 32 the whole k-mer fits in a single machine word, so
// successive Successor calls slide a window over a genome without any
// per-step allocation beyond the result.
//
// Invariant: the bits above K*w are always zero, so the buffer-wide shift
// in Successor cannot leak stale characters into the window.
type Kmer struct {
	alpha *alphabet.Alphabet
	w     uint
	k     int
	words []uint64
}

var _ seq.MutSequence = (*Kmer)(nil)

// NewKmer builds a packed k-mer of length k by draining the iterator.
// An iterator yielding fewer or more than exactly k characters is a
// contract violation and panics.
func NewKmer(a *alphabet.Alphabet, k int, it seq.CharIter) *Kmer {
	if k < 1 {
		log.Panicf("k-mer length must be positive, got %d", k)
	}
	w := uint(a.BitWidth())
	km := &Kmer{alpha: a, w: w, k: k, words: make([]uint64, wordsFor(uint64(k)*uint64(w)))}
	i := 0
	for it.Scan() {
		if i == k {
			log.Panicf("iterator yields more than k = %d characters", k)
		}
		storeBits(km.words, uint64(i)*uint64(w), w, uint64(it.Char()))
		i++
	}
	if i != k {
		log.Panicf("iterator yields %d characters, want k = %d", i, k)
	}
	return km
}

// KmerFromBytes builds a packed k-mer with K = len(b), validating every
// byte against the alphabet.
func KmerFromBytes(a *alphabet.Alphabet, b []byte) (*Kmer, error) {
	v, err := VecFromBytes(a, b)
	if err != nil {
		return nil, err
	}
	return NewKmer(a, v.Len(), seq.Iter(v)), nil
}

// K returns the fixed length of the k-mer.
func (k *Kmer) K() int { return k.k }

// Successor returns the k-mer for a one-character rightward shift: the
// packed buffer is shifted down by w bits, dropping the first character,
// and c is stored in the final w-bit slot.  The receiver is not modified
// and the result always has length K.
func (k *Kmer) Successor(c alphabet.Char) *Kmer {
	words := make([]uint64, len(k.words))
	for i := range words {
		v := k.words[i] >> k.w
		if i+1 < len(k.words) {
			v |= k.words[i+1] << (wordBits - k.w)
		}
		words[i] = v
	}
	storeBits(words, uint64(k.k-1)*uint64(k.w), k.w, uint64(c))
	return &Kmer{alpha: k.alpha, w: k.w, k: k.k, words: words}
}

// Alphabet implements seq.Sequence.
func (k *Kmer) Alphabet() *alphabet.Alphabet { return k.alpha }

// Len implements seq.Sequence.
func (k *Kmer) Len() int { return k.k }

// At implements seq.Sequence.
func (k *Kmer) At(i int) alphabet.Char {
	if i < 0 || i >= k.k {
		log.Panicf("index %d out of range for k-mer of length %d", i, k.k)
	}
	return alphabet.Char(loadBits(k.words, uint64(i)*uint64(k.w), k.w))
}

// Slice implements seq.Sequence.
func (k *Kmer) Slice(start, end int) seq.Sequence {
	checkRange(start, end, k.k)
	return &Slice{alpha: k.alpha, w: k.w, words: k.words, off: uint64(start) * uint64(k.w), n: end - start}
}

// Set implements seq.MutSequence.  The length stays K.
func (k *Kmer) Set(i int, c alphabet.Char) {
	if i < 0 || i >= k.k {
		log.Panicf("index %d out of range for k-mer of length %d", i, k.k)
	}
	storeBits(k.words, uint64(i)*uint64(k.w), k.w, uint64(c))
}

// String implements fmt.Stringer.
func (k *Kmer) String() string { return seq.String(k) }
