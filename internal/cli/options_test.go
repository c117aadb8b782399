// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t,
		"--alignments", "aln",
		"--best-trees", "best",
		"--output", "out",
	)
	if o.Bootreps != 100 || o.Threads != 1 || o.Jobs != 1 || o.Verbosity != "INFO" {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestAllFlags(t *testing.T) {
	o := mustParse(t,
		"--alignments", "aln",
		"--best-trees", "best",
		"--output", "out",
		"--bootreps", "250",
		"--outgroup", "danio",
		"--threads", "4",
		"--jobs", "3",
		"--yes",
	)
	if o.Bootreps != 250 || o.Outgroup != "danio" || o.Threads != 4 || o.Jobs != 3 || !o.Yes {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorMissingAlignments(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--best-trees", "b", "--output", "o"})
	if err == nil {
		t.Fatalf("expected error when --alignments missing")
	}
}

func TestErrorMissingOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--alignments", "a", "--best-trees", "b"})
	if err == nil {
		t.Fatalf("expected error when --output missing")
	}
}

func TestErrorBadBootreps(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--alignments", "a", "--best-trees", "b", "--output", "o", "--bootreps", "0",
	})
	if err == nil {
		t.Fatalf("expected error for --bootreps 0")
	}
}

func TestErrorBadJobs(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--alignments", "a", "--best-trees", "b", "--output", "o", "--jobs", "0",
	})
	if err == nil {
		t.Fatalf("expected error for --jobs 0")
	}
}
