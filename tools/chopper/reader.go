package chopper

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const (
	HeaderMarker  = '>'
	CommentMarker = ';'

	readBufferSize = 64 * 1024
)

// Record is one FASTA entry: the header text after '>' and the
// concatenation of every sequence line that followed it.
type Record struct {
	Name     string
	Sequence []byte
}

type lineKind int

const (
	lineStart lineKind = iota
	lineHeader
	lineComment
	lineSequence
	lineOrphan
)

// SequenceReader lazily parses FASTA records, one per call to Next.
// It is single pass; a record is only complete once the following header
// (or end of input) has been seen, so at most one record is held in memory.
// Lines may be of any length: sequence lines are appended to the record in
// buffer-sized pieces.
//
//	r := NewSequenceReader(f)
//	for r.Next() {
//		rec := r.Record()
//	}
//	if err := r.Err(); err != nil { ... }
type SequenceReader struct {
	br      *bufio.Reader
	kind    lineKind // what the line being read turned out to be
	start   int      // offset in open.Sequence where the current line began
	header  []byte
	open    *Record // record currently accumulating lines
	rec     Record  // last completed record, returned by Record
	err     error
	done    bool
	orphans int
}

func NewSequenceReader(r io.Reader) *SequenceReader {
	return newSequenceReaderSize(r, readBufferSize)
}

func newSequenceReaderSize(r io.Reader, size int) *SequenceReader {
	return &SequenceReader{br: bufio.NewReaderSize(r, size)}
}

// Next advances to the next complete record. It returns false at end of
// input or on a read error; check Err afterwards. Input without any header
// yields no records at all.
func (r *SequenceReader) Next() bool {
	if r.done {
		return false
	}
	for {
		chunk, err := r.br.ReadSlice('\n')
		partial := err == bufio.ErrBufferFull
		if len(chunk) > 0 && r.feed(chunk, partial) {
			return true
		}
		if partial {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			r.done = true
			r.open = nil
			r.err = fmt.Errorf("fasta read: %w", err)
			return false
		}
	}

	r.done = true
	if r.open == nil {
		return false
	}
	r.rec = *r.open
	r.open = nil
	return true
}

// feed consumes one piece of a line. partial is set while the line
// continues in the next piece. It reports whether a header completed a
// previous record.
func (r *SequenceReader) feed(chunk []byte, partial bool) bool {
	if r.kind == lineStart {
		switch {
		case chunk[0] == CommentMarker:
			r.kind = lineComment
		case chunk[0] == HeaderMarker:
			r.kind = lineHeader
			r.header = r.header[:0]
			chunk = chunk[1:]
		case r.open == nil:
			if !partial && len(trimEOL(chunk)) == 0 {
				return false // blank line
			}
			r.kind = lineOrphan
		default:
			r.kind = lineSequence
			r.start = len(r.open.Sequence)
		}
	}

	switch r.kind {
	case lineHeader:
		r.header = append(r.header, chunk...)
	case lineSequence:
		r.open.Sequence = append(r.open.Sequence, chunk...)
	}
	if partial {
		return false
	}

	kind := r.kind
	r.kind = lineStart
	switch kind {
	case lineHeader:
		prev := r.open
		r.open = &Record{Name: string(trimEOL(r.header))}
		if prev != nil {
			r.rec = *prev
			return true
		}
	case lineSequence:
		line := trimEOL(r.open.Sequence[r.start:])
		r.open.Sequence = r.open.Sequence[:r.start+len(line)]
	case lineOrphan:
		r.orphans++
	}
	return false
}

// trimEOL drops a trailing "\n" and then a trailing "\r".
func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}

// Record returns the record produced by the last successful Next.
func (r *SequenceReader) Record() Record { return r.rec }

// Err returns the first read error, if any.
func (r *SequenceReader) Err() error { return r.err }

// Orphans counts non-blank sequence lines found before the first header.
// They belong to no record and are dropped.
func (r *SequenceReader) Orphans() int { return r.orphans }
