package store

import (
	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/seq"
)

// DedupStore is an in-memory store that keeps a single copy of each
// distinct sequence.  Sequences are bucketed by the farmhash fingerprint
// of their ASCII form; adding a sequence that is already present returns
// the handle of the existing copy, so handles can be compared with == to
// test sequence identity.
type DedupStore struct {
	alpha   *alphabet.Alphabet
	seqs    []*seq.Vec
	buckets map[uint64][]int
}

var _ Store = (*DedupStore)(nil)

// DedupHandle refers to a sequence in a DedupStore.  Two handles from the
// same store are equal iff the stored sequences are equal.
type DedupHandle struct {
	id int
}

// NewDedupStore returns an empty deduplicating store for the given
// alphabet.
func NewDedupStore(a *alphabet.Alphabet) *DedupStore {
	return &DedupStore{alpha: a, buckets: make(map[uint64][]int)}
}

// Alphabet implements Store.
func (s *DedupStore) Alphabet() *alphabet.Alphabet { return s.alpha }

// Len returns the number of distinct sequences stored.
func (s *DedupStore) Len() int { return len(s.seqs) }

func (s *DedupStore) intern(v *seq.Vec) Handle {
	fp := farm.Fingerprint64(seq.Bytes(v))
	for _, id := range s.buckets[fp] {
		if seq.Equal(s.seqs[id], v) {
			return DedupHandle{id: id}
		}
	}
	id := len(s.seqs)
	s.seqs = append(s.seqs, v)
	s.buckets[fp] = append(s.buckets[fp], id)
	return DedupHandle{id: id}
}

// Add implements Store.
func (s *DedupStore) Add(src seq.Sequence) Handle {
	v := seq.NewVec(s.alpha)
	seq.Copy(v, src)
	return s.intern(v)
}

// AddIter implements Store.
func (s *DedupStore) AddIter(it seq.CharIter) Handle {
	return s.intern(seq.CollectVec(s.alpha, it))
}

// AddBytes implements Store.
func (s *DedupStore) AddBytes(b []byte) (Handle, error) {
	v, err := seq.VecFromBytes(s.alpha, b)
	if err != nil {
		return nil, err
	}
	return s.intern(v), nil
}

// AddByteIter implements Store.
func (s *DedupStore) AddByteIter(next func() (byte, bool)) (Handle, error) {
	v := seq.NewVec(s.alpha)
	if err := seq.AppendByteIter(v, next); err != nil {
		return nil, err
	}
	return s.intern(v), nil
}

// Get implements Store.
func (s *DedupStore) Get(h Handle) seq.Sequence {
	dh, ok := h.(DedupHandle)
	if !ok || dh.id < 0 || dh.id >= len(s.seqs) {
		log.Panicf("handle %v was not produced by this DedupStore", h)
	}
	v := s.seqs[dh.id]
	return v.Slice(0, v.Len())
}
