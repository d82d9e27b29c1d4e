package seq_generator

import (
	"math/rand"
	"strconv"
)

// 20 standard amino acids
var aminoAcids = []byte("ACDEFGHIKLMNPQRSTVWY")

// GenerateProtein returns a random protein sequence drawn from the 20
// standard residues. Pass a seeded rng for reproducible fixtures.
func GenerateProtein(rng *rand.Rand, length int) string {
	if length <= 0 {
		return ""
	}
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = aminoAcids[rng.Intn(len(aminoAcids))]
	}
	return string(seq)
}

// GenerateProteome returns n named random proteins with lengths in [minLen, maxLen].
func GenerateProteome(rng *rand.Rand, n, minLen, maxLen int) []Record {
	records := make([]Record, n)
	for i := range records {
		length := minLen
		if maxLen > minLen {
			length += rng.Intn(maxLen - minLen + 1)
		}
		records[i] = Record{
			ID:       "prot_" + strconv.Itoa(i+1),
			Sequence: GenerateProtein(rng, length),
		}
	}
	return records
}
