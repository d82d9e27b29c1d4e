package digest_report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSVReport writes the one-row summary table to filename.
func WriteCSVReport(filename string, d Digest, stats DigestStats) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	headers := []string{
		"Source", "Records", "MeanRecordLength", "RecordLengthStdDev", "MedianRecordLength",
		"MinRecordLength", "MaxRecordLength", "Candidates", "Emitted", "Duplicates",
		"RedundancyPercent", "MeanPeptideLength", "MedianPeptideLength",
	}

	values := []string{
		d.Source,
		strconv.Itoa(stats.Records),
		fmt.Sprintf("%.2f", stats.MeanRecordLength),
		fmt.Sprintf("%.2f", stats.RecordLengthStdDev),
		fmt.Sprintf("%.2f", stats.MedianRecordLength),
		strconv.Itoa(stats.MinRecordLength),
		strconv.Itoa(stats.MaxRecordLength),
		strconv.Itoa(stats.Candidates),
		strconv.Itoa(stats.Emitted),
		strconv.Itoa(stats.Duplicates),
		fmt.Sprintf("%.2f", stats.RedundancyPercent),
		fmt.Sprintf("%.2f", stats.MeanPeptideLength),
		fmt.Sprintf("%.2f", stats.MedianPeptideLength),
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.Write(values); err != nil {
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return f.Close()
}

// WriteLengthCSV writes one row per peptide length.
func WriteLengthCSV(filename string, rows []LengthRow) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"Length", "Candidates", "Emitted", "Duplicates"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := writer.Write([]string{
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Candidates),
			strconv.Itoa(r.Emitted),
			strconv.Itoa(r.Duplicates),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return f.Close()
}
