package seq_generator

import (
	"bufio"
	"io"
	"strings"
)

// Record is one generated FASTA entry.
type Record struct {
	ID       string
	Sequence string
}

func WrapFasta(seq string, width int) string {
	var out strings.Builder
	if width <= 0 {
		width = len(seq)
	}
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// WriteFasta writes records as FASTA with sequence lines wrapped at width.
func WriteFasta(w io.Writer, records []Record, width int) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(">" + r.ID + "\n" + WrapFasta(r.Sequence, width)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
