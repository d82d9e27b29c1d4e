package seq_generator

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateProteinDeterministic(t *testing.T) {
	a := GenerateProtein(rand.New(rand.NewSource(7)), 50)
	b := GenerateProtein(rand.New(rand.NewSource(7)), 50)
	require.Len(t, a, 50)
	require.Equal(t, a, b)
	for _, c := range []byte(a) {
		require.Contains(t, string(aminoAcids), string(c))
	}
	require.Empty(t, GenerateProtein(rand.New(rand.NewSource(1)), 0))
}

func TestGenerateProteome(t *testing.T) {
	recs := GenerateProteome(rand.New(rand.NewSource(3)), 10, 5, 9)
	require.Len(t, recs, 10)
	for _, r := range recs {
		require.GreaterOrEqual(t, len(r.Sequence), 5)
		require.LessOrEqual(t, len(r.Sequence), 9)
	}
	require.Equal(t, "prot_1", recs[0].ID)
}

func TestWriteFasta(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFasta(&buf, []Record{{ID: "a", Sequence: "ABCDEFG"}, {ID: "b", Sequence: "XY"}}, 3)
	require.NoError(t, err)
	require.Equal(t, ">a\nABC\nDEF\nG\n>b\nXY\n", buf.String())
}
