package fasta

import (
	"io"

	"github.com/genomekit/genome/seq"
	"github.com/genomekit/genome/store"
)

var newline = []byte{'\n'}

// Writer writes FASTA records.  The header line is ">id" or ">id comment",
// and the whole sequence is emitted on a single line.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a Writer that emits records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes one record, resolving its sequence through the store that
// parsed it.  An error is returned if any write failed; once a write has
// failed all subsequent writes are dropped.
func (w *Writer) Write(rec Record, st store.Store) error {
	w.writeString(">")
	w.writeString(rec.ID)
	if rec.Comment != "" {
		w.writeString(" ")
		w.writeString(rec.Comment)
	}
	w.write(newline)
	w.write(seq.Bytes(st.Get(rec.Handle)))
	w.write(newline)
	return w.err
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Write writes all records to w in order.
func Write(w io.Writer, records []Record, st store.Store) error {
	fw := NewWriter(w)
	for _, rec := range records {
		if err := fw.Write(rec, st); err != nil {
			return err
		}
	}
	return nil
}
