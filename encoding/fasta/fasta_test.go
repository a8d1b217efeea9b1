package fasta_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomekit/genome/alphabet"
	"github.com/genomekit/genome/encoding/fasta"
	"github.com/genomekit/genome/seq"
	"github.com/genomekit/genome/store"
)

func seqOf(t *testing.T, st store.Store, rec fasta.Record) string {
	t.Helper()
	return seq.String(st.Get(rec.Handle))
}

func TestReadWrite(t *testing.T) {
	in := ">alt1 comment1\nGGTTGGCCT\n>f2\nACCTG\n>f3 \nAA\n>seq c2  \nGT"
	st := store.NewHandleStore(alphabet.DNA)
	records, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{})
	require.NoError(t, err)
	require.Equal(t, 4, len(records))

	assert.Equal(t, "alt1", records[0].ID)
	assert.Equal(t, "comment1", records[0].Comment)
	assert.Equal(t, "GGTTGGCCT", seqOf(t, st, records[0]))
	assert.Equal(t, "f2", records[1].ID)
	assert.Equal(t, "", records[1].Comment)
	assert.Equal(t, "ACCTG", seqOf(t, st, records[1]))
	assert.Equal(t, "f3", records[2].ID)
	assert.Equal(t, "", records[2].Comment)
	assert.Equal(t, "AA", seqOf(t, st, records[2]))
	assert.Equal(t, "seq", records[3].ID)
	assert.Equal(t, "c2", records[3].Comment)
	assert.Equal(t, "GT", seqOf(t, st, records[3]))

	var out bytes.Buffer
	require.NoError(t, fasta.Write(&out, records, st))
	assert.Equal(t,
		">alt1 comment1\nGGTTGGCCT\n>f2\nACCTG\n>f3\nAA\n>seq c2\nGT\n",
		out.String())
}

func TestReadMultiLineSequence(t *testing.T) {
	in := ">chr7 assembled from strain X\nACGTAC\nGAGGAC\n\nACGT\n>chr8\r\nACGT\r\n"
	st := store.NewHandleStore(alphabet.DNA)
	records, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{})
	require.NoError(t, err)
	require.Equal(t, 2, len(records))
	assert.Equal(t, "chr7", records[0].ID)
	assert.Equal(t, "assembled from strain X", records[0].Comment)
	assert.Equal(t, "ACGTACGAGGACACGT", seqOf(t, st, records[0]))
	assert.Equal(t, "chr8", records[1].ID)
	assert.Equal(t, "ACGT", seqOf(t, st, records[1]))
}

func TestReadLeadingJunk(t *testing.T) {
	// Bytes before the first record-initial '>' are skipped; a '>' in the
	// middle of a line does not start a record.
	in := "; informal preamble > not a record\n>id\nAC>GT\n"
	st := store.NewHandleStore(alphabet.DNAIupac)
	_, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{})
	require.Error(t, err) // '>' is not in the alphabet

	st = store.NewHandleStore(alphabet.DNAIupac)
	records, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{SkipInvalid: true})
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "id", records[0].ID)
	assert.Equal(t, "ACGT", seqOf(t, st, records[0]))
}

func TestReadEmptyInput(t *testing.T) {
	st := store.NewHandleStore(alphabet.DNA)
	records, err := fasta.Read(strings.NewReader(""), st, fasta.ReadOpts{})
	require.NoError(t, err)
	assert.Equal(t, 0, len(records))

	// A bare header at end of input is a record with an empty sequence.
	records, err = fasta.Read(strings.NewReader(">lonely"), st, fasta.ReadOpts{})
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "lonely", records[0].ID)
	assert.Equal(t, "", seqOf(t, st, records[0]))

	records, err = fasta.Read(strings.NewReader(">h trailing comment"), st, fasta.ReadOpts{})
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "h", records[0].ID)
	assert.Equal(t, "trailing comment", records[0].Comment)
}

func TestReadInvalidByte(t *testing.T) {
	in := ">f1\nGGTTZGGCCT\n"
	st := store.NewHandleStore(alphabet.DNA)
	_, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{})
	require.Error(t, err)
	nerr, ok := err.(*alphabet.NotInAlphabetError)
	require.True(t, ok)
	assert.Equal(t, byte('Z'), nerr.Ascii)
}

func TestReadOpts(t *testing.T) {
	in := ">f1\nGGTTZGGCCT\n>f2\nACCUTG\n>f3\ngxT\n"
	st := store.NewHandleStore(alphabet.DNA)
	records, err := fasta.Read(strings.NewReader(in), st,
		fasta.ReadOpts{SkipInvalid: true, Capitalize: true})
	require.NoError(t, err)
	require.Equal(t, 3, len(records))
	assert.Equal(t, "GGTTGGCCT", seqOf(t, st, records[0]))
	assert.Equal(t, "ACCTG", seqOf(t, st, records[1]))
	assert.Equal(t, "GT", seqOf(t, st, records[2]))

	// An explicit skip set drops bytes before alphabet lookup.
	var skip [256]bool
	skip['U'] = true
	skip['-'] = true
	st = store.NewHandleStore(alphabet.DNA)
	records, err = fasta.Read(strings.NewReader(">f\nAC-CUTG\n"), st,
		fasta.ReadOpts{Skip: &skip})
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "ACCTG", seqOf(t, st, records[0]))
}

func TestReadIntoDedupStore(t *testing.T) {
	in := ">a\nACGT\n>b\nACGT\n>c\nACGA\n"
	st := store.NewDedupStore(alphabet.DNA)
	records, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{})
	require.NoError(t, err)
	require.Equal(t, 3, len(records))
	assert.Equal(t, records[0].Handle, records[1].Handle)
	assert.NotEqual(t, records[0].Handle, records[2].Handle)
	assert.Equal(t, 2, st.Len())
}

func TestFileRoundTrip(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	in := ">alt1 comment1\nGGTTGGCCT\n>f2\nACCTG\n"
	want := ">alt1 comment1\nGGTTGGCCT\n>f2\nACCTG\n"

	for _, name := range []string{"seqs.fasta", "seqs.fasta.gz"} {
		path := filepath.Join(tmpDir, name)
		st := store.NewHandleStore(alphabet.DNA)
		records, err := fasta.Read(strings.NewReader(in), st, fasta.ReadOpts{})
		require.NoError(t, err, name)
		require.NoError(t, fasta.WriteFile(path, records, st), name)

		st2 := store.NewHandleStore(alphabet.DNA)
		got, err := fasta.ReadFile(path, st2, fasta.ReadOpts{})
		require.NoError(t, err, name)
		var out bytes.Buffer
		require.NoError(t, fasta.Write(&out, got, st2), name)
		assert.Equal(t, want, out.String(), name)
	}

	// The .gz file really is gzip compressed.
	f, err := os.Open(filepath.Join(tmpDir, "seqs.fasta.gz"))
	require.NoError(t, err)
	defer f.Close() // nolint: errcheck
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close() // nolint: errcheck
}

// ReadFile sniffs gzip from the file contents, not the extension.
func TestReadFileSniffsGzip(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(tmpDir, "noext")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">g\nACGT\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	st := store.NewHandleStore(alphabet.DNA)
	records, err := fasta.ReadFile(path, st, fasta.ReadOpts{})
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	assert.Equal(t, "ACGT", seqOf(t, st, records[0]))
}
