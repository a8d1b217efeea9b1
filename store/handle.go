package store

import (
	"github.com/grailbio/base/log"

	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/seq"
)

// HandleStore is the trivial store: the handle is the owned sequence
// itself.  The store keeps no state of its own, so it is effectively
// free; it exists so that algorithms written against Store can run on
// plain in-memory sequences without a real backing store.
type HandleStore struct {
	alpha *alphabet.Alphabet
}

var _ Store = (*HandleStore)(nil)

// NewHandleStore returns a handle store for the given alphabet.
func NewHandleStore(a *alphabet.Alphabet) *HandleStore {
	return &HandleStore{alpha: a}
}

// Alphabet implements Store.
func (s *HandleStore) Alphabet() *alphabet.Alphabet { return s.alpha }

// Add implements Store.  The handle is a *seq.Vec holding a copy of the
// sequence.
func (s *HandleStore) Add(src seq.Sequence) Handle {
	v := seq.NewVec(s.alpha)
	seq.Copy(v, src)
	return v
}

// AddIter implements Store.
func (s *HandleStore) AddIter(it seq.CharIter) Handle {
	return seq.CollectVec(s.alpha, it)
}

// AddBytes implements Store.
func (s *HandleStore) AddBytes(b []byte) (Handle, error) {
	v, err := seq.VecFromBytes(s.alpha, b)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// AddByteIter implements Store.
func (s *HandleStore) AddByteIter(next func() (byte, bool)) (Handle, error) {
	v := seq.NewVec(s.alpha)
	if err := seq.AppendByteIter(v, next); err != nil {
		return nil, err
	}
	return v, nil
}

// Get implements Store, returning a full-range view of the sequence held
// by the handle.
func (s *HandleStore) Get(h Handle) seq.Sequence {
	v, ok := h.(*seq.Vec)
	if !ok {
		log.Panicf("handle of type %T was not produced by a HandleStore", h)
	}
	return v.Slice(0, v.Len())
}
