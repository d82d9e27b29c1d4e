package digest_report

import (
	"fmt"
	"os"
)

// WriteReports writes <prefix>_report.csv, <prefix>_lengths.csv and, when
// there is at least one length row, <prefix>_lengths.svg. It returns the
// paths written.
func WriteReports(prefix string, d Digest) ([]string, error) {
	stats := ComputeStats(d)

	summaryPath := prefix + "_report.csv"
	if err := WriteCSVReport(summaryPath, d, stats); err != nil {
		return nil, fmt.Errorf("write %s: %w", summaryPath, err)
	}
	lengthsPath := prefix + "_lengths.csv"
	if err := WriteLengthCSV(lengthsPath, d.Rows); err != nil {
		return nil, fmt.Errorf("write %s: %w", lengthsPath, err)
	}
	written := []string{summaryPath, lengthsPath}
	if len(d.Rows) == 0 {
		return written, nil // every record was shorter than min_length
	}

	svg, err := GenerateLengthPlotSVG(d.Rows)
	if err != nil {
		return written, fmt.Errorf("length plot: %w", err)
	}
	plotPath := prefix + "_lengths.svg"
	if err := os.WriteFile(plotPath, []byte(svg), 0644); err != nil {
		return written, fmt.Errorf("write %s: %w", plotPath, err)
	}
	return append(written, plotPath), nil
}
