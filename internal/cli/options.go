// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"mlboot/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Inputs
	AlignmentsDir string
	BestTreesDir  string

	// Outputs
	OutDir string

	// Bootstrap parameters
	Bootreps int
	Outgroup string

	// Scheduling
	Threads int // threads per search job
	Jobs    int // concurrent search jobs

	// Behavior
	Yes       bool // skip interactive confirmations
	Verbosity string
	LogPath   string
	Raxml     string // search binary override

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: multi-locus bootstrap coordination for RAxML

Resamples loci with replacement into multi-locus bootstrap replicates,
runs the minimal per-locus bootstrap searches in parallel, and reassembles
the per-replicate tree files.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs / outputs
	fs.StringVar(&opt.AlignmentsDir, "alignments", "", "directory of per-locus alignments [*]")
	fs.StringVar(&opt.BestTreesDir, "best-trees", "", "directory of prior per-locus best-tree runs [*]")
	fs.StringVar(&opt.OutDir, "output", "", "output directory [*]")

	// Bootstrap parameters
	fs.IntVar(&opt.Bootreps, "bootreps", 100, "number of multi-locus bootstrap replicates [100]")
	fs.StringVar(&opt.Outgroup, "outgroup", "", "outgroup taxon for rooting (optional)")

	// Scheduling
	fs.IntVar(&opt.Threads, "threads", 1, "threads per search job [1]")
	fs.IntVar(&opt.Jobs, "jobs", 1, "concurrent search jobs [1]")

	// Behavior
	fs.BoolVar(&opt.Yes, "yes", false, "assume yes; never prompt [false]")
	fs.StringVar(&opt.Verbosity, "verbosity", "INFO", "log level: DEBUG | INFO | WARN | CRITICAL [INFO]")
	fs.StringVar(&opt.LogPath, "log-path", "", "directory to hold a log file (optional)")
	fs.StringVar(&opt.Raxml, "raxml", "", "path to the raxmlHPC binary [$PATH lookup]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.AlignmentsDir == "":
		return opt, errors.New("--alignments is required")
	case opt.BestTreesDir == "":
		return opt, errors.New("--best-trees is required")
	case opt.OutDir == "":
		return opt, errors.New("--output is required")
	}
	if opt.Bootreps < 1 {
		return opt, errors.New("--bootreps must be ≥ 1")
	}
	if opt.Threads < 1 {
		return opt, errors.New("--threads must be ≥ 1")
	}
	if opt.Jobs < 1 {
		return opt, errors.New("--jobs must be ≥ 1")
	}
	return opt, nil
}
