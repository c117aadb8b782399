// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"mlboot-core/replicate"
	"mlboot/internal/assemble"
	"mlboot/internal/cli"
	"mlboot/internal/loci"
	"mlboot/internal/logging"
	"mlboot/internal/raxml"
	"mlboot/internal/scheduler"
	"mlboot/internal/seeds"
	"mlboot/internal/version"
)

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("mlboot")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "mlboot version %s\n", version.Version)
		return 0
	}

	log, closeLog, err := logging.New(stderr, opts.Verbosity, opts.LogPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = closeLog() }()

	log.Info("starting mlboot", "version", version.Version, "bootreps", opts.Bootreps)

	ls, err := loci.Discover(opts.AlignmentsDir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	log.Info("discovered loci", "count", len(ls), "alignments", opts.AlignmentsDir)

	// Reject oversubscription before touching the filesystem or prompting.
	sched, err := scheduler.New(raxml.ExecRunner{Binary: opts.Raxml}, scheduler.Config{
		Jobs:     opts.Jobs,
		Threads:  opts.Threads,
		Outgroup: opts.Outgroup,
		OutDir:   opts.OutDir,
	}, log)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if ok, err := prepareOutDir(opts.OutDir, opts.Yes, stdin, stdout); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	} else if !ok {
		log.Warn("keeping existing output directory, aborting")
		return 0
	}

	seedMap, err := seeds.Collect(opts.BestTreesDir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	for _, l := range ls {
		if _, ok := seedMap[l.Name]; !ok {
			_, _ = fmt.Fprintf(stderr, "locus %s: no best-tree run found in %s\n", l.Name, opts.BestTreesDir)
			return 2
		}
	}
	log.Info("recovered seeds", "count", len(seedMap))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	reps := replicate.Sample(rng, loci.Names(ls), opts.Bootreps)
	demand := replicate.Demand(reps)
	log.Info("sampled replicates", "bootreps", len(reps), "loci-per-replicate", len(ls))

	dirs, err := sched.Run(parent, ls, demand, seedMap)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if err := assemble.Run(reps, dirs, opts.OutDir); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	log.Info("completed mlboot", "replicates", len(reps), "output", opts.OutDir)
	return 0
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// prepareOutDir creates the output directory, asking before clobbering an
// existing one unless --yes was given. Returns ok=false when the user
// declines.
func prepareOutDir(dir string, yes bool, stdin io.Reader, stdout io.Writer) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		if !yes && !confirm(stdin, stdout, fmt.Sprintf("Output directory %s exists, remove [Y/n]? ", dir)) {
			return false, nil
		}
		if err := os.RemoveAll(dir); err != nil {
			return false, err
		}
	}
	return true, os.MkdirAll(dir, 0o755)
}

func confirm(stdin io.Reader, stdout io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(stdout, prompt)
	sc := bufio.NewScanner(stdin)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
