package chopper

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"chopper/config"
	"chopper/tools/digest_report"
	common "chopper/utils"
)

// Run executes one digest described by opts. Status lines and progress go
// to stderr, the run summary to stdout.
func Run(opts config.Options, stdout, stderr io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	status := io.Discard
	if !opts.Quiet {
		status = stderr
	}
	logger := log.New(status, "[Chopper] ", 0)

	in, err := common.OpenSequenceFile(opts.InPath)
	if err != nil {
		return err
	}
	defer in.Close()
	logger.Printf("Reading %s (%s)", in.Path(), in.Format())

	store, err := openSeenStore(opts, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	outPath := opts.OutputPath()
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	logger.Printf("Writing %s", outPath)

	bound := ReferenceBound
	if opts.FullWindows {
		bound = FullBound
	}

	var progressOut io.Writer
	if !opts.Quiet {
		progressOut = stderr
	}
	progress := NewProgress(progressOut, "Chopping FASTA", in.Size())

	reader := NewSequenceReader(in)
	pipeline := &Pipeline{
		MinLen:   opts.MinLen,
		MaxLen:   opts.MaxLen,
		Bound:    bound,
		Filter:   NewFilter(store),
		Writer:   NewDigestWriter(out),
		OnRecord: func(Record) { progress.Update(in.Consumed()) },
	}

	sum, runErr := pipeline.Run(reader)
	closeErr := out.Close()
	if errors.Is(runErr, ErrNoRecords) {
		os.Remove(outPath)
		return fmt.Errorf("%s: %w", opts.InPath, runErr)
	}
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output: %w", closeErr)
	}
	progress.Done()

	if n := reader.Orphans(); n > 0 {
		logger.Printf("WARN: ignored %d sequence line(s) before the first header", n)
	}

	printSummary(stdout, outPath, bound, sum)

	if opts.Report {
		paths, err := digest_report.WriteReports(opts.ReportPrefix(), reportDigest(opts.InPath, sum))
		for _, p := range paths {
			logger.Printf("Wrote report %s", p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func openSeenStore(opts config.Options, logger *log.Logger) (SeenStore, error) {
	if opts.SeenStoreDir == "" {
		return NewMemoryStore(), nil
	}
	ls, err := OpenLevelStore(opts.SeenStoreDir)
	if err != nil {
		return nil, err
	}
	logger.Printf("Seen peptides stored in %s", ls.Dir())
	return ls, nil
}

func printSummary(w io.Writer, outPath string, bound WindowBound, sum Summary) {
	fmt.Fprintf(w, "Output:\t\t%s\n", outPath)
	fmt.Fprintf(w, "Records:\t%d\n", sum.Records)
	fmt.Fprintf(w, "Residues:\t%d\n", sum.Residues)
	fmt.Fprintf(w, "Windows:\t%s\n", bound)
	fmt.Fprintf(w, "Candidates:\t%d\n", sum.Candidates)
	fmt.Fprintf(w, "Emitted:\t%d\n", sum.Emitted)
	fmt.Fprintf(w, "Duplicates:\t%d\n", sum.Duplicates)
	fmt.Fprintf(w, "Fingerprint:\t%016x\n", sum.Fingerprint)
}

func reportDigest(source string, sum Summary) digest_report.Digest {
	rows := make([]digest_report.LengthRow, len(sum.PerLength))
	for i, lc := range sum.PerLength {
		rows[i] = digest_report.LengthRow{
			Length:     lc.Length,
			Candidates: lc.Candidates,
			Emitted:    lc.Emitted,
			Duplicates: lc.Duplicates,
		}
	}
	return digest_report.Digest{
		Source:        source,
		RecordLengths: sum.RecordLengths,
		Rows:          rows,
	}
}
