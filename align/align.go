// Package align compares sequences: Hamming distance for equal-length
// sequences and Levenshtein edit distance in the general case.  Both
// operate on abstract sequences, so either storage backend works and the
// comparison is over alphabet characters, not ASCII bytes.
package align

import (
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/seq"
)

// Hamming returns the number of positions at which a and b differ.  The
// sequences must share an alphabet and have equal length.
func Hamming(a, b seq.Sequence) int {
	if a.Alphabet() != b.Alphabet() {
		log.Panicf("cannot compare sequences over alphabets %s and %s",
			a.Alphabet().Name(), b.Alphabet().Name())
	}
	if a.Len() != b.Len() {
		log.Panicf("hamming distance needs equal lengths, got %d and %d", a.Len(), b.Len())
	}
	d := 0
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			d++
		}
	}
	return d
}

// Levenshtein returns the edit distance between a and b: the number of
// single-character insertions, deletions, and substitutions needed to
// transform one into the other.  The sequences must share an alphabet.
//
// The computation keeps two rows of the distance matrix, so memory is
// O(min(len(a), len(b))) while time stays O(len(a)*len(b)).
func Levenshtein(a, b seq.Sequence) int {
	if a.Alphabet() != b.Alphabet() {
		log.Panicf("cannot compare sequences over alphabets %s and %s",
			a.Alphabet().Name(), b.Alphabet().Name())
	}
	if b.Len() < a.Len() {
		a, b = b, a
	}
	prev := make([]int, a.Len()+1)
	cur := make([]int, a.Len()+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= b.Len(); i++ {
		cur[0] = i
		bc := b.At(i - 1)
		for j := 1; j <= a.Len(); j++ {
			if a.At(j-1) == bc {
				cur[j] = prev[j-1]
				continue
			}
			min := prev[j-1] // substitution
			if prev[j] < min {
				min = prev[j] // deletion from b
			}
			if cur[j-1] < min {
				min = cur[j-1] // insertion into b
			}
			cur[j] = min + 1
		}
		prev, cur = cur, prev
	}
	return prev[a.Len()]
}
