// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mlboot/internal/loci"
	"mlboot/internal/raxml"
)

// Config sizes the worker pool and parameterizes every job.
type Config struct {
	Jobs     int // concurrent bootstrap searches
	Threads  int // threads per search (-T when > 1)
	Outgroup string
	OutDir   string // root under which each locus gets its own subdirectory

	// MaxProcs caps Jobs*Threads; 0 means runtime.NumCPU(). Overridable so
	// tests can exercise the gate deterministically.
	MaxProcs int

	// BootSeed supplies the per-invocation -b seed. Nil means time-seeded
	// random draws; tests inject a fixed source.
	BootSeed func() int
}

// Scheduler distributes per-locus bootstrap jobs across a bounded pool of
// workers, each driving one external search invocation to completion.
type Scheduler struct {
	runner raxml.Runner
	cfg    Config
	log    *slog.Logger
}

// New validates the requested parallelism against the machine before any
// work is admitted. Oversubscription is fatal: the external tool pins its
// threads and silently degrades everyone's runs otherwise.
func New(runner raxml.Runner, cfg Config, log *slog.Logger) (*Scheduler, error) {
	if cfg.Jobs < 1 || cfg.Threads < 1 {
		return nil, fmt.Errorf("jobs (%d) and threads (%d) must be >= 1", cfg.Jobs, cfg.Threads)
	}
	maxProcs := cfg.MaxProcs
	if maxProcs == 0 {
		maxProcs = runtime.NumCPU()
	}
	if cfg.Jobs*cfg.Threads > maxProcs {
		return nil, fmt.Errorf("%d jobs x %d threads exceeds the %d available processing units",
			cfg.Jobs, cfg.Threads, maxProcs)
	}
	if cfg.BootSeed == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		var mu sync.Mutex
		cfg.BootSeed = func() int {
			mu.Lock()
			defer mu.Unlock()
			return rng.Intn(1 << 30)
		}
	}
	return &Scheduler{runner: runner, cfg: cfg, log: log}, nil
}

// Run executes one bootstrap job per locus with a positive demand and
// returns each locus's output directory. The first failing job cancels the
// rest of the batch; partial results are discarded.
func (s *Scheduler) Run(ctx context.Context, ls []loci.Locus, demand map[string]int, seeds map[string]int) (map[string]string, error) {
	jobs := make([]raxml.Job, 0, len(ls))
	for _, l := range ls {
		n := demand[l.Name]
		if n == 0 {
			s.log.Debug("locus unused by any replicate, skipping", "locus", l.Name)
			continue
		}
		seed, ok := seeds[l.Name]
		if !ok {
			return nil, &raxml.ParseError{Locus: l.Name, Path: l.Alignment, Reason: "no recovered seed for locus"}
		}
		jobs = append(jobs, raxml.Job{
			Locus:     l.Name,
			Alignment: l.Alignment,
			Trees:     n,
			Seed:      seed,
			BootSeed:  s.cfg.BootSeed(),
			Threads:   s.cfg.Threads,
			Outgroup:  s.cfg.Outgroup,
			Outdir:    filepath.Join(s.cfg.OutDir, l.Name),
		})
	}

	var mu sync.Mutex
	dirs := make(map[string]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Jobs)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			res, err := s.runner.Run(gctx, j)
			if err != nil {
				return err
			}
			s.log.Info("bootstraps complete",
				"locus", res.Locus,
				"seconds", res.Seconds,
				"patterns", res.Patterns,
				"trees", j.Trees,
			)
			mu.Lock()
			dirs[res.Locus] = res.Outdir
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dirs, nil
}
