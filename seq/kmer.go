package seq

import (
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/alphabet"
)

// Kmer is a sequence whose length K is fixed at construction.  The fixed
// length enables the O(K) Successor operation for sliding a window one
// character to the right without rebuilding the k-mer.  Kmer implements
// MutSequence but not EditableSequence: a k-mer can never change length.
type Kmer struct {
	alpha *alphabet.Alphabet
	chars []alphabet.Char
}

var _ MutSequence = (*Kmer)(nil)

// NewKmer builds a k-mer of length k by draining the iterator.  K is
// meant to be statically known by the caller, so an iterator yielding
// fewer or more than exactly k characters is a contract violation and
// panics.
func NewKmer(a *alphabet.Alphabet, k int, it CharIter) *Kmer {
	if k < 1 {
		log.Panicf("k-mer length must be positive, got %d", k)
	}
	chars := make([]alphabet.Char, 0, k)
	for it.Scan() {
		if len(chars) == k {
			log.Panicf("iterator yields more than k = %d characters", k)
		}
		chars = append(chars, it.Char())
	}
	if len(chars) != k {
		log.Panicf("iterator yields %d characters, want k = %d", len(chars), k)
	}
	return &Kmer{alpha: a, chars: chars}
}

// KmerFromBytes builds a k-mer with K = len(b), validating every byte
// against the alphabet.
func KmerFromBytes(a *alphabet.Alphabet, b []byte) (*Kmer, error) {
	v, err := VecFromBytes(a, b)
	if err != nil {
		return nil, err
	}
	return NewKmer(a, v.Len(), Iter(v)), nil
}

// K returns the fixed length of the k-mer.
func (k *Kmer) K() int { return len(k.chars) }

// Successor returns the k-mer for a one-character rightward shift: the
// first character is dropped and c is appended.  The receiver is not
// modified and the result always has length K.
func (k *Kmer) Successor(c alphabet.Char) *Kmer {
	chars := make([]alphabet.Char, len(k.chars))
	copy(chars, k.chars[1:])
	chars[len(chars)-1] = c
	return &Kmer{alpha: k.alpha, chars: chars}
}

// Alphabet implements Sequence.
func (k *Kmer) Alphabet() *alphabet.Alphabet { return k.alpha }

// Len implements Sequence.
func (k *Kmer) Len() int { return len(k.chars) }

// At implements Sequence.
func (k *Kmer) At(i int) alphabet.Char {
	checkIndex(i, len(k.chars))
	return k.chars[i]
}

// Slice implements Sequence.
func (k *Kmer) Slice(start, end int) Sequence {
	checkRange(start, end, len(k.chars))
	return &Slice{alpha: k.alpha, chars: k.chars[start:end]}
}

// Set implements MutSequence.  The length stays K.
func (k *Kmer) Set(i int, c alphabet.Char) {
	checkIndex(i, len(k.chars))
	k.chars[i] = c
}

// String implements fmt.Stringer.
func (k *Kmer) String() string { return String(k) }
