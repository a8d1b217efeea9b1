package packed_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/seq"
	"github.com/genomekit/genome/seq/packed"
)

func TestKmerSuccessor(t *testing.T) {
	km, err := packed.KmerFromBytes(alphabet.DNA, []byte("ACGT"))
	require.NoError(t, err)
	require.Equal(t, 4, km.K())

	tests := []struct {
		next byte
		want string
	}{
		{'A', "CGTA"},
		{'C', "CGTC"},
		{'G', "CGTG"},
		{'T', "CGTT"},
	}
	for _, tt := range tests {
		c, err := alphabet.DNA.Char(tt.next)
		require.NoError(t, err)
		succ := km.Successor(c)
		assert.Equal(t, tt.want, succ.String())
		assert.Equal(t, 4, succ.K())
	}
	assert.Equal(t, "ACGT", km.String())
}

// TestKmerSuccessorMultiWord uses K large enough that the packed buffer
// spans several words, so the successor shift must carry bits across word
// boundaries.
func TestKmerSuccessorMultiWord(t *testing.T) {
	const k = 100
	const nIter = 300
	alphas := []*alphabet.Alphabet{alphabet.DNA, alphabet.DNAOrN, alphabet.AminoAcid}
	rng := rand.New(rand.NewSource(0))
	for _, a := range alphas {
		window := seq.Random(rng, a, k)
		pk := packed.NewKmer(a, k, seq.Iter(window))
		ak := seq.NewKmer(a, k, seq.Iter(window))
		for iter := 0; iter < nIter; iter++ {
			c := alphabet.Char(rng.Intn(a.Len()))
			pk = pk.Successor(c)
			ak = ak.Successor(c)
			require.True(t, seq.Equal(pk, ak), "alphabet %s after %d shifts", a.Name(), iter+1)
		}
	}
}

func TestKmerWrongLengthPanics(t *testing.T) {
	v := mustVec(t, alphabet.DNA, "ACG")
	assert.Panics(t, func() { packed.NewKmer(alphabet.DNA, 4, seq.Iter(v)) })
	assert.Panics(t, func() { packed.NewKmer(alphabet.DNA, 2, seq.Iter(v)) })
	assert.Panics(t, func() { packed.NewKmer(alphabet.DNA, 0, seq.Iter(v)) })
}

func TestKmerIsSequence(t *testing.T) {
	km, err := packed.KmerFromBytes(alphabet.DNAOrN, []byte("ACGNT"))
	require.NoError(t, err)
	assert.Equal(t, 5, km.Len())
	assert.Equal(t, "GN", seq.String(km.Slice(2, 4)))

	c, err := alphabet.DNAOrN.Char('T')
	require.NoError(t, err)
	km.Set(0, c)
	assert.Equal(t, "TCGNT", km.String())
	assert.Panics(t, func() { km.At(5) })
	assert.Panics(t, func() { km.Slice(2, 6) })
}
