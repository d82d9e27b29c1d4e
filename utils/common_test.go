package common

import (
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"
)

const sampleFasta = ">A\nABCDE\n;note\n>B\nXBCD\n"

func writeFile(t *testing.T, name string, write func(w io.Writer) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, write(f))
	require.NoError(t, f.Close())
	return path
}

func readAll(t *testing.T, path string) (*SequenceFile, string) {
	t.Helper()
	sf, err := OpenSequenceFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { sf.Close() })
	b, err := io.ReadAll(sf)
	require.NoError(t, err)
	return sf, string(b)
}

func TestOpenSequenceFilePlain(t *testing.T) {
	path := writeFile(t, "in.fasta", func(w io.Writer) error {
		_, err := io.WriteString(w, sampleFasta)
		return err
	})
	sf, text := readAll(t, path)
	require.Equal(t, sampleFasta, text)
	require.Equal(t, FormatPlain, sf.Format())
	require.Equal(t, path, sf.Path())
	require.Equal(t, int64(len(sampleFasta)), sf.Size())
	require.Equal(t, sf.Size(), sf.Consumed())
}

func TestOpenSequenceFileGzip(t *testing.T) {
	path := writeFile(t, "in.fasta.gz", func(w io.Writer) error {
		gz := gzip.NewWriter(w)
		if _, err := io.WriteString(gz, sampleFasta); err != nil {
			return err
		}
		return gz.Close()
	})
	sf, text := readAll(t, path)
	require.Equal(t, sampleFasta, text)
	require.Equal(t, FormatGzip, sf.Format())
	require.Equal(t, sf.Size(), sf.Consumed())
}

func TestOpenSequenceFileSnappy(t *testing.T) {
	path := writeFile(t, "in.fasta.sz", func(w io.Writer) error {
		sw := snappy.NewBufferedWriter(w)
		if _, err := io.WriteString(sw, sampleFasta); err != nil {
			return err
		}
		return sw.Close()
	})
	sf, text := readAll(t, path)
	require.Equal(t, sampleFasta, text)
	require.Equal(t, FormatSnappy, sf.Format())
}

func TestOpenSequenceFileEmpty(t *testing.T) {
	path := writeFile(t, "empty.fasta", func(io.Writer) error { return nil })
	sf, text := readAll(t, path)
	require.Empty(t, text)
	require.Equal(t, FormatPlain, sf.Format())
}

func TestOpenSequenceFileMissing(t *testing.T) {
	_, err := OpenSequenceFile(filepath.Join(t.TempDir(), "nope.fasta"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenSequenceFileDirectory(t *testing.T) {
	_, err := OpenSequenceFile(t.TempDir())
	require.Error(t, err)
}
