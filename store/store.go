// Package store defines the sequence store abstraction: a store ingests
// sequences and hands back opaque handles, and returns a read-only view
// for a handle.  Generic code written against Store runs unchanged
// whether the backing store is the trivial in-core one here or a real
// external store (memory mapped, deduplicating, remote).
package store

import (
	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/seq"
)

// Handle is an opaque token standing in for a stored sequence.  Each
// store documents its concrete handle type; handles from different
// stores are not interchangeable.
type Handle interface{}

// Store ingests sequences over one alphabet and retrieves views.
type Store interface {
	// Alphabet returns the alphabet all stored sequences are drawn from.
	Alphabet() *alphabet.Alphabet

	// Add copies the sequence into the store.
	Add(s seq.Sequence) Handle

	// AddIter drains the iterator into the store.
	AddIter(it seq.CharIter) Handle

	// AddBytes validates ASCII bytes against the store's alphabet and
	// stores them.  A byte outside the alphabet yields a
	// *alphabet.NotInAlphabetError and nothing is stored.
	AddBytes(b []byte) (Handle, error)

	// AddByteIter validates and stores ASCII bytes produced by next
	// until it reports false.
	AddByteIter(next func() (byte, bool)) (Handle, error)

	// Get returns a read-only view of the stored sequence.  It panics if
	// the handle was not produced by this store.
	Get(h Handle) seq.Sequence
}
