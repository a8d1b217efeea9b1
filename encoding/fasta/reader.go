// Package fasta reads and writes FASTA-formatted sequence data.  Records
// begin with '>' at the start of a line; the rest of that line up to the
// first whitespace run is the record id and anything after it the
// comment.  The following lines up to the next '>'-initiated line are
// concatenated into the sequence, which is streamed directly into a
// sequence store; the parser itself never materializes a sequence.
//
// For example:
//
// >chr7 assembled from strain X
// ACGTAC
// GAGGAC
// >chr8
// ACGT
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/genomekit/genome/store"
)

// Record is one FASTA record.  The sequence itself lives in the store
// that parsed the record; Handle retrieves it.
type Record struct {
	// ID is the part of the header line before the first whitespace.
	ID string
	// Comment is the part of the header line after the first whitespace
	// run, with trailing whitespace trimmed.
	Comment string
	// Handle refers to the record's sequence in the store it was read
	// into.
	Handle store.Handle
}

// ReadOpts controls how sequence bytes are filtered before alphabet
// lookup.
type ReadOpts struct {
	// SkipInvalid drops bytes outside the store's alphabet instead of
	// failing the parse.
	SkipInvalid bool
	// Capitalize folds lower-case bytes to upper case before alphabet
	// lookup.
	Capitalize bool
	// Skip marks bytes to drop unconditionally, after capitalization and
	// before alphabet lookup.  A nil Skip drops nothing.
	Skip *[256]bool
}

// Read parses FASTA data, streaming each record's sequence into the
// store.  A byte outside the store's alphabet fails the parse with a
// *alphabet.NotInAlphabetError unless ReadOpts.SkipInvalid is set.
// End of input in the middle of a record terminates that record
// normally; it is not an error.
func Read(r io.Reader, st store.Store, opts ReadOpts) ([]Record, error) {
	br := bufio.NewReader(r)

	// Scan for the first line-initial '>'.
	newline := true
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "fasta: scanning for first record")
		}
		switch {
		case b == '\n' || b == '\r':
			newline = true
		case b == '>' && newline:
			return readRecords(br, st, opts)
		default:
			newline = false
		}
	}
}

// readRecords parses records until end of input.  On entry the reader is
// positioned just after a record-initial '>'.
func readRecords(br *bufio.Reader, st store.Store, opts ReadOpts) ([]Record, error) {
	var records []Record
	for {
		rec, more, err := readRecord(br, st, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		if !more {
			return records, nil
		}
	}
}

// readRecord parses one record and reports whether another record
// follows.
func readRecord(br *bufio.Reader, st store.Store, opts ReadOpts) (Record, bool, error) {
	var id, comment strings.Builder

	endOfInput := func() (Record, bool, error) {
		h, err := st.AddBytes(nil)
		if err != nil {
			return Record{}, false, err
		}
		return Record{ID: id.String(), Comment: trimComment(comment.String()), Handle: h}, false, nil
	}

	// Record id: up to the first whitespace or end of line.
	inComment := false
readHeader:
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return endOfInput()
		}
		if err != nil {
			return Record{}, false, errors.Wrap(err, "fasta: reading record header")
		}
		switch {
		case b == '\n' || b == '\r':
			break readHeader
		case inComment:
			comment.WriteByte(b)
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			// Skip the whitespace run; the first non-whitespace byte
			// starts the comment.
			for {
				b, err = br.ReadByte()
				if err == io.EOF {
					return endOfInput()
				}
				if err != nil {
					return Record{}, false, errors.Wrap(err, "fasta: reading record header")
				}
				if b == '\n' || b == '\r' {
					break readHeader
				}
				if b != ' ' && b != '\t' && b != '\v' && b != '\f' {
					comment.WriteByte(b)
					inComment = true
					break
				}
			}
		default:
			id.WriteByte(b)
		}
	}

	// Record sequence: stream bytes into the store until the next
	// line-initial '>' or end of input.
	var (
		readErr error
		more    bool
		nl      = true
	)
	next := func() (byte, bool) {
		for {
			b, err := br.ReadByte()
			if err != nil {
				readErr = err
				return 0, false
			}
			if b == '\n' || b == '\r' {
				nl = true
				continue
			}
			if b == '>' && nl {
				more = true
				return 0, false
			}
			nl = false
			if opts.Capitalize && 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
			if opts.Skip != nil && opts.Skip[b] {
				continue
			}
			if opts.SkipInvalid && !st.Alphabet().Valid(b) {
				continue
			}
			return b, true
		}
	}
	h, err := st.AddByteIter(next)
	if err != nil {
		return Record{}, false, err
	}
	if readErr != nil && readErr != io.EOF {
		return Record{}, false, errors.Wrap(readErr, "fasta: reading record sequence")
	}
	return Record{ID: id.String(), Comment: trimComment(comment.String()), Handle: h}, more, nil
}

func trimComment(comment string) string {
	return strings.TrimRight(comment, " \t\v\f\r\n")
}
