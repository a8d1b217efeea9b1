package fasta

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/genomekit/genome/store"
)

// gzip member header magic.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile parses a FASTA file into the store.  Gzip compression is
// detected by sniffing the gzip magic at the start of the file; anything
// else is read as plain text regardless of extension.
func ReadFile(path string, st store.Store, opts ReadOpts) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fasta: opening %s", path)
	}
	defer f.Close() // nolint: errcheck

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "fasta: reading gzip header of %s", path)
		}
		defer gz.Close() // nolint: errcheck
		return Read(gz, st, opts)
	}
	return Read(br, st, opts)
}

// WriteFile writes records to a FASTA file.  A .gz or .gzip extension
// selects gzip compression at the fastest level; any other extension
// writes plain text.
func WriteFile(path string, records []Record, st store.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "fasta: creating %s", path)
	}

	var werr error
	switch filepath.Ext(path) {
	case ".gz", ".gzip":
		gz, err := gzip.NewWriterLevel(f, gzip.BestSpeed)
		if err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "fasta: creating gzip writer for %s", path)
		}
		werr = Write(gz, records, st)
		if err := gz.Close(); werr == nil && err != nil {
			werr = errors.Wrapf(err, "fasta: closing gzip stream of %s", path)
		}
	default:
		bw := bufio.NewWriter(f)
		werr = Write(bw, records, st)
		if err := bw.Flush(); werr == nil && err != nil {
			werr = errors.Wrapf(err, "fasta: flushing %s", path)
		}
	}
	if err := f.Close(); werr == nil && err != nil {
		werr = errors.Wrapf(err, "fasta: closing %s", path)
	}
	return werr
}
