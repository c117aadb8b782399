// internal/seeds/collector_test.go
package seeds

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mlboot/internal/raxml"
)

func writeRun(t *testing.T, root, locus, log string) {
	t.Helper()
	dir := filepath.Join(root, locus)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if log != "" {
		if err := os.WriteFile(filepath.Join(dir, "RAxML_info."+locus), []byte(log), 0o644); err != nil {
			t.Fatalf("write log: %v", err)
		}
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "uce-1", "RAxML was called as follows:\n\nraxmlHPC -m GTRGAMMA -p 12345 -s uce-1.phylip\n")
	writeRun(t, root, "uce-2", "RAxML was called as follows:\n\nraxmlHPC -p 67 -s uce-2.phylip\n")
	// Aggregate artifact must be skipped.
	if err := os.WriteFile(filepath.Join(root, "all-best-trees.tre"), []byte("(a,b);\n"), 0o644); err != nil {
		t.Fatalf("write aggregate: %v", err)
	}

	seeds, err := Collect(root)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(seeds) != 2 || seeds["uce-1"] != 12345 || seeds["uce-2"] != 67 {
		t.Fatalf("seeds = %v", seeds)
	}
}

func TestCollectMissingLog(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "uce-1", "")
	_, err := Collect(root)
	var pe *raxml.ParseError
	if !errors.As(err, &pe) || pe.Locus != "uce-1" {
		t.Fatalf("want ParseError for uce-1, got %v", err)
	}
}

func TestCollectMissingSeedIsFatal(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "uce-1", "RAxML was called as follows:\n\nraxmlHPC -p 1 -s a\n")
	writeRun(t, root, "uce-2", "RAxML was called as follows:\n\nraxmlHPC -s b\n")
	_, err := Collect(root)
	var pe *raxml.ParseError
	if !errors.As(err, &pe) || pe.Locus != "uce-2" {
		t.Fatalf("want ParseError for uce-2, got %v", err)
	}
}
