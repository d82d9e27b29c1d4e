package chopper

import (
	"errors"
	"fmt"
)

// ErrNoRecords is returned when the input holds no FASTA header at all.
var ErrNoRecords = errors.New("no records found")

// LengthCount tallies one peptide length class across the run.
type LengthCount struct {
	Length     int
	Candidates int
	Emitted    int
	Duplicates int
}

// Summary describes a finished digest.
type Summary struct {
	Records       int
	Residues      int
	RecordLengths []float64
	// PerLength has one row per length from MinLen up to the shorter of
	// MaxLen and the longest record.
	PerLength []LengthCount

	Candidates  int
	Emitted     int
	Duplicates  int
	Fingerprint uint64
}

// Pipeline digests records one at a time: every window of every length
// goes through Filter, survivors are written by Writer, and the writer is
// flushed once per source record.
type Pipeline struct {
	MinLen int
	MaxLen int
	Bound  WindowBound

	Filter *Filter
	Writer *DigestWriter

	// OnRecord, if set, is called after each record has been flushed.
	OnRecord func(rec Record)
}

// Run drains records through the pipeline.
func (p *Pipeline) Run(records *SequenceReader) (Summary, error) {
	var sum Summary
	written := p.Writer.Count()

	for records.Next() {
		rec := records.Record()
		if err := p.digest(rec, &sum); err != nil {
			return sum, fmt.Errorf("record %q: %w", rec.Name, err)
		}
		if err := p.Writer.Flush(); err != nil {
			return sum, fmt.Errorf("flush after record %q: %w", rec.Name, err)
		}
		sum.Records++
		sum.Residues += len(rec.Sequence)
		sum.RecordLengths = append(sum.RecordLengths, float64(len(rec.Sequence)))
		if p.OnRecord != nil {
			p.OnRecord(rec)
		}
	}
	if err := records.Err(); err != nil {
		return sum, err
	}
	if sum.Records == 0 {
		return sum, ErrNoRecords
	}

	for _, lc := range sum.PerLength {
		sum.Candidates += lc.Candidates
		sum.Duplicates += lc.Duplicates
	}
	sum.Emitted = p.Writer.Count() - written
	sum.Fingerprint = p.Writer.Fingerprint()
	return sum, nil
}

func (p *Pipeline) digest(rec Record, sum *Summary) error {
	p.growRows(sum, len(rec.Sequence))
	for k, peptide := range Enumerate(rec.Sequence, p.MinLen, p.MaxLen, p.Bound) {
		lc := &sum.PerLength[k-p.MinLen]
		lc.Candidates++
		ok, err := p.Filter.Accept(peptide)
		if err != nil {
			return err
		}
		if !ok {
			lc.Duplicates++
			continue
		}
		if err := p.Writer.Emit(peptide); err != nil {
			return err
		}
		lc.Emitted++
	}
	return nil
}

// growRows extends PerLength to cover every length a sequence of length l
// can reach, so rows never exceed the longest record seen.
func (p *Pipeline) growRows(sum *Summary, l int) {
	upper := min(p.MaxLen, l)
	for k := p.MinLen + len(sum.PerLength); k <= upper; k++ {
		sum.PerLength = append(sum.PerLength, LengthCount{Length: k})
	}
}
