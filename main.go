package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"chopper/benchmark"
	"chopper/config"
	"chopper/tools/chopper"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const longHelp = `Chopper creates a non-redundant, unspecific digest of a FASTA file.

Every distinct substring of every record with a length between min_length
and max_length (inclusive) is written once to <input>_chopped.fasta next to
the input, as a record whose header and sequence are the peptide itself.
Peptides already written for an earlier record are not repeated.

Input may be plain, gzip or snappy compressed FASTA. Lines starting with ';'
are comments.`

var versionTemplate = fmt.Sprintf(`Chopper - Version Information
Central Executable:
	Chopper:		%s

Components:
	Sequence Reader:	%s
	Digest Writer:		%s
	Digest Report:		%s
	Benchmark:		%s
`, config.Main_version, config.Sequence_Reader, config.Digest_Writer, config.Digest_Report, config.Benchmark)

// newRootCmd builds the chopper command. Help (-h, --h, --help) is handled
// by cobra before the positional arguments are validated, so it never
// falls through into a run.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags config.Options

	cmd := &cobra.Command{
		Use:     "chopper <fasta_path> <min_length> <max_length>",
		Short:   "Non-redundant, unspecific digest of a FASTA file",
		Long:    longHelp,
		Example: "  chopper my_fasta.fasta 8 15\n  chopper proteome.fa.gz 7 12 --report",
		Version: config.Main_version,
		Args:    cobra.ExactArgs(3),

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.ParseArgs(args)
			if err != nil {
				return err
			}
			opts.FullWindows = flags.FullWindows
			opts.Report = flags.Report
			opts.SeenStoreDir = flags.SeenStoreDir
			opts.Quiet = flags.Quiet
			opts.Benchmark = flags.Benchmark

			run := func() error { return chopper.Run(opts, stdout, stderr) }
			if opts.Benchmark {
				label := "chopper " + strings.Join(args, " ")
				return benchmark.Run(label, stderr, run)
			}
			return run()
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.FullWindows, "full-windows", false, "enumerate all L-K+1 windows per length instead of L-K")
	f.BoolVar(&flags.Report, "report", false, "write statistics CSV files and a length plot next to the output")
	f.StringVar(&flags.SeenStoreDir, "seen-store", "", "keep seen peptides in a LevelDB database under `DIR` instead of memory")
	f.BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress progress and status lines")
	f.BoolVar(&flags.Benchmark, "benchmark", false, "report runtime and memory usage after the run")

	cmd.SetGlobalNormalizationFunc(helpAlias)
	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// helpAlias lets --h stand in for --help.
func helpAlias(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "h" {
		return "help"
	}
	return pflag.NormalizedName(name)
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
