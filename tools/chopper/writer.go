package chopper

import (
	"bufio"
	"io"

	"github.com/OneOfOne/xxhash"
)

// DigestWriter appends accepted peptides as two-line FASTA records whose
// header and body are both the peptide itself:
//
//	>PEPTIDE
//	PEPTIDE
//
// Output is buffered; call Flush at each durability point.
type DigestWriter struct {
	w     *bufio.Writer
	hash  *xxhash.XXHash64
	count int
}

func NewDigestWriter(w io.Writer) *DigestWriter {
	return &DigestWriter{
		w:    bufio.NewWriterSize(w, 256*1024),
		hash: xxhash.New64(),
	}
}

// Emit appends one peptide record.
func (d *DigestWriter) Emit(peptide []byte) error {
	d.w.WriteByte(HeaderMarker)
	d.w.Write(peptide)
	d.w.WriteByte('\n')
	d.w.Write(peptide)
	if err := d.w.WriteByte('\n'); err != nil {
		return err
	}
	d.hash.Write(peptide)
	d.hash.Write(newline)
	d.count++
	return nil
}

var newline = []byte{'\n'}

// Flush writes any buffered records to the underlying writer.
func (d *DigestWriter) Flush() error { return d.w.Flush() }

// Count is the number of peptides emitted so far.
func (d *DigestWriter) Count() int { return d.count }

// Fingerprint is an xxhash64 over every emitted peptide in order, each
// terminated by a newline. Two digests with the same fingerprint contain
// the same peptides in the same order.
func (d *DigestWriter) Fingerprint() uint64 { return d.hash.Sum64() }
