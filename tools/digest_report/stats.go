package digest_report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// LengthRow is the tally for one peptide length.
type LengthRow struct {
	Length     int
	Candidates int
	Emitted    int
	Duplicates int
}

// Digest is the raw material for a report.
type Digest struct {
	Source        string
	RecordLengths []float64
	Rows          []LengthRow
}

type DigestStats struct {
	Records            int
	MeanRecordLength   float64
	RecordLengthStdDev float64
	MedianRecordLength float64
	MinRecordLength    int
	MaxRecordLength    int

	Candidates        int
	Emitted           int
	Duplicates        int
	RedundancyPercent float64

	MeanPeptideLength   float64
	MedianPeptideLength float64
}

// ComputeStats summarises record lengths and the emitted peptide length
// distribution. Peptide statistics are weighted by the emitted count of
// each length.
func ComputeStats(d Digest) DigestStats {
	var s DigestStats
	s.Records = len(d.RecordLengths)
	if s.Records > 0 {
		lengths := append([]float64(nil), d.RecordLengths...)
		sort.Float64s(lengths)
		s.MeanRecordLength = stat.Mean(lengths, nil)
		if len(lengths) > 1 {
			s.RecordLengthStdDev = stat.StdDev(lengths, nil)
		}
		s.MedianRecordLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)
		s.MinRecordLength = int(lengths[0])
		s.MaxRecordLength = int(lengths[len(lengths)-1])
	}

	var x, w []float64
	for _, r := range d.Rows {
		s.Candidates += r.Candidates
		s.Emitted += r.Emitted
		s.Duplicates += r.Duplicates
		if r.Emitted > 0 {
			x = append(x, float64(r.Length))
			w = append(w, float64(r.Emitted))
		}
	}
	if s.Candidates > 0 {
		s.RedundancyPercent = float64(s.Duplicates) / float64(s.Candidates) * 100
	}
	if len(x) > 0 {
		sort.Sort(byLength{x, w})
		s.MeanPeptideLength = stat.Mean(x, w)
		s.MedianPeptideLength = stat.Quantile(0.5, stat.Empirical, x, w)
	}
	return s
}

// byLength sorts lengths and keeps their weights paired.
type byLength struct{ x, w []float64 }

func (b byLength) Len() int           { return len(b.x) }
func (b byLength) Less(i, j int) bool { return b.x[i] < b.x[j] }
func (b byLength) Swap(i, j int) {
	b.x[i], b.x[j] = b.x[j], b.x[i]
	b.w[i], b.w[j] = b.w[j], b.w[i]
}
