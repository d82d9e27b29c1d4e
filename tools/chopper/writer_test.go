package chopper

import (
	"bytes"
	"errors"
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/stretchr/testify/require"
)

func TestDigestWriterFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewDigestWriter(&buf)
	require.NoError(t, w.Emit([]byte("AB")))
	require.NoError(t, w.Emit([]byte("BCD")))
	require.Empty(t, buf.String(), "nothing written before flush")

	require.NoError(t, w.Flush())
	require.Equal(t, ">AB\nAB\n>BCD\nBCD\n", buf.String())
	require.Equal(t, 2, w.Count())
}

func TestDigestWriterFingerprint(t *testing.T) {
	var a, b bytes.Buffer
	wa, wb := NewDigestWriter(&a), NewDigestWriter(&b)
	for _, p := range []string{"AB", "BC"} {
		require.NoError(t, wa.Emit([]byte(p)))
	}
	for _, p := range []string{"BC", "AB"} {
		require.NoError(t, wb.Emit([]byte(p)))
	}
	require.Equal(t, xxhash.Checksum64([]byte("AB\nBC\n")), wa.Fingerprint())
	require.NotEqual(t, wa.Fingerprint(), wb.Fingerprint())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDigestWriterFlushError(t *testing.T) {
	w := NewDigestWriter(failingWriter{})
	require.NoError(t, w.Emit([]byte("AB")))
	require.EqualError(t, w.Flush(), "disk full")
}
