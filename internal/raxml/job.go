// internal/raxml/job.go
package raxml

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// DefaultBinary is the tool invoked when no override is configured.
const DefaultBinary = "raxmlHPC"

// Job is one unit of scheduled work: a single-locus bootstrap search that
// must produce Trees bootstrap trees.
type Job struct {
	Locus     string
	Alignment string
	Trees     int // bootstrap trees to generate (this locus's demand)
	Seed      int // -p seed recovered from the prior best-tree run
	BootSeed  int // -b seed, freshly drawn per invocation
	Threads   int
	Outgroup  string
	Outdir    string // dedicated per-locus output directory
}

// Result carries what the scheduler reports per completed job.
type Result struct {
	Locus    string
	Outdir   string
	Seconds  float64
	Patterns int
}

// Runner executes one bootstrap job to completion. The production
// implementation shells out; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, j Job) (Result, error)
}

// Args builds the tool command line. The output directory is passed with a
// trailing separator; raxmlHPC treats -w without one as a file prefix.
func (j Job) Args() []string {
	args := []string{
		"-m", "GTRGAMMA",
		"-n", "bootrep",
		"-s", j.Alignment,
		"-N", strconv.Itoa(j.Trees),
		"-p", strconv.Itoa(j.Seed),
		"-b", strconv.Itoa(j.BootSeed),
		"-k",
		"-w", j.Outdir + string(os.PathSeparator),
	}
	if j.Threads > 1 {
		args = append(args, "-T", strconv.Itoa(j.Threads))
	}
	if j.Outgroup != "" {
		args = append(args, "-o", j.Outgroup)
	}
	return args
}

// ExecRunner invokes the external search binary and scrapes its combined
// output for the run diagnostics.
type ExecRunner struct {
	Binary string // empty means DefaultBinary
}

func (r ExecRunner) Run(ctx context.Context, j Job) (Result, error) {
	if err := os.MkdirAll(j.Outdir, 0o755); err != nil {
		return Result{}, fmt.Errorf("locus %s: %w", j.Locus, err)
	}
	bin := r.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	cmd := exec.CommandContext(ctx, bin, j.Args()...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, &ToolError{Locus: j.Locus, Reason: err.Error(), Output: string(out)}
	}
	secs, patterns, err := ParseRunOutput(j.Locus, out)
	if err != nil {
		return Result{}, err
	}
	return Result{Locus: j.Locus, Outdir: j.Outdir, Seconds: secs, Patterns: patterns}, nil
}
