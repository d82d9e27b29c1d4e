// Common package contains input helpers shared by chopper's tools.
package common

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

// Input encodings recognised by OpenSequenceFile.
const (
	FormatPlain  = "plain"
	FormatGzip   = "gzip"
	FormatSnappy = "snappy"
)

var (
	gzipMagic   = []byte{0x1f, 0x8b}
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// SequenceFile is an opened FASTA input. Reads return decoded text while
// Consumed tracks how many on-disk bytes have been pulled so far, which is
// what progress reporting is measured against.
type SequenceFile struct {
	path    string
	format  string
	size    int64
	counter *countingReader
	reader  io.Reader
	closers []io.Closer
}

// OpenSequenceFile opens a FASTA file, transparently decoding gzip and
// snappy-framed streams by sniffing their magic bytes.
func OpenSequenceFile(path string) (*SequenceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("failed to open file: %s is a directory", path)
	}

	sf := &SequenceFile{
		path:    path,
		size:    info.Size(),
		counter: &countingReader{r: f},
		closers: []io.Closer{f},
	}

	br := bufio.NewReader(sf.counter)
	head, _ := br.Peek(len(snappyMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			sf.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		sf.format = FormatGzip
		sf.reader = gr
		sf.closers = append(sf.closers, gr)
	case bytes.Equal(head, snappyMagic):
		sf.format = FormatSnappy
		sf.reader = snappy.NewReader(br)
	default:
		sf.format = FormatPlain
		sf.reader = br
	}
	return sf, nil
}

func (s *SequenceFile) Read(p []byte) (int, error) { return s.reader.Read(p) }

// Path is the path the file was opened with.
func (s *SequenceFile) Path() string { return s.path }

// Format is one of FormatPlain, FormatGzip or FormatSnappy.
func (s *SequenceFile) Format() string { return s.format }

// Size is the on-disk size in bytes.
func (s *SequenceFile) Size() int64 { return s.size }

// Consumed is the number of on-disk bytes read so far.
func (s *SequenceFile) Consumed() int64 { return s.counter.n }

// Close releases the decoder (if any) and the underlying file.
func (s *SequenceFile) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if cerr := s.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	s.closers = nil
	return err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
