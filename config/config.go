package config // CLI configuration for a chopper run

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLength is returned when a length argument is not an integer.
	ErrMalformedLength = errors.New("length must be an integer")
	// ErrInvalidRange is returned for lengths below 1 or min_length > max_length.
	ErrInvalidRange = errors.New("invalid peptide length range")
)

// OutputSuffix replaces the input extension to name the digest file.
const OutputSuffix = "_chopped.fasta"

// Extensions of compressed inputs, stripped before the FASTA extension.
var compressionExts = []string{".gz", ".sz", ".snappy"}

// Options holds everything a single digest run needs.
type Options struct {
	InPath string
	MinLen int
	MaxLen int

	FullWindows  bool   // emit L-K+1 windows per length instead of L-K
	Report       bool   // write statistics CSV and SVG next to the output
	SeenStoreDir string // keep the dedup set in LevelDB under this directory
	Quiet        bool
	Benchmark    bool
}

// ParseArgs reads the positional arguments <fasta_path> <min_length> <max_length>.
// No file is touched here.
func ParseArgs(args []string) (Options, error) {
	var opts Options
	if len(args) != 3 {
		return opts, fmt.Errorf("expected 3 arguments (fasta_path min_length max_length), got %d", len(args))
	}
	opts.InPath = args[0]

	var err error
	if opts.MinLen, err = parseLength("min_length", args[1]); err != nil {
		return opts, err
	}
	if opts.MaxLen, err = parseLength("max_length", args[2]); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func parseLength(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, raw, ErrMalformedLength)
	}
	return v, nil
}

// Validate checks the run options before any file I/O begins.
func (o Options) Validate() error {
	if o.InPath == "" {
		return errors.New("fasta_path is required")
	}
	if o.MinLen < 1 || o.MaxLen < 1 {
		return fmt.Errorf("%w: lengths must be >= 1 (got %d..%d)", ErrInvalidRange, o.MinLen, o.MaxLen)
	}
	if o.MinLen > o.MaxLen {
		return fmt.Errorf("%w: min_length %d > max_length %d", ErrInvalidRange, o.MinLen, o.MaxLen)
	}
	return nil
}

// OutputPath derives the digest file path, placed alongside the input.
//
//	sample.fasta    -> sample_chopped.fasta
//	data/p.fa.gz    -> data/p_chopped.fasta
//	noext           -> noext_chopped.fasta
func (o Options) OutputPath() string {
	dir, base := filepath.Split(o.InPath)
	for _, ext := range compressionExts {
		if strings.HasSuffix(strings.ToLower(base), ext) && len(base) > len(ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return dir + base + OutputSuffix
}

// ReportPrefix is the path prefix for the optional statistics files.
func (o Options) ReportPrefix() string {
	return strings.TrimSuffix(o.OutputPath(), ".fasta")
}
