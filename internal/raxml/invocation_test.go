// internal/raxml/invocation_test.go
package raxml

import (
	"errors"
	"testing"
)

func TestRecoverSeed(t *testing.T) {
	log := []byte("RAxML was called as follows:\n\nraxmlHPC -m GTRGAMMA -p 12345 -s aln.phylip\n\n")
	seed, err := RecoverSeed("uce-1", "RAxML_info.uce-1", log)
	if err != nil {
		t.Fatalf("RecoverSeed: %v", err)
	}
	if seed != 12345 {
		t.Fatalf("seed = %d, want 12345", seed)
	}
}

func TestRecoverSeedQuotedArgs(t *testing.T) {
	log := []byte("RAxML was called as follows:\n\nraxmlHPC -s 'my aln.phylip' -m GTRGAMMA -p 777 -n best\n")
	seed, err := RecoverSeed("uce-2", "log", log)
	if err != nil {
		t.Fatalf("RecoverSeed: %v", err)
	}
	if seed != 777 {
		t.Fatalf("seed = %d, want 777", seed)
	}
}

func TestRecoverSeedMissingFlag(t *testing.T) {
	log := []byte("RAxML was called as follows:\n\nraxmlHPC -m GTRGAMMA -s aln.phylip\n")
	_, err := RecoverSeed("uce-3", "log", log)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Locus != "uce-3" {
		t.Fatalf("want ParseError for uce-3, got %v", err)
	}
}

func TestRecoverSeedMissingBlock(t *testing.T) {
	_, err := RecoverSeed("uce-4", "log", []byte("This is RAxML version 8.2.12\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want ParseError, got %v", err)
	}
}

func TestRecoverSeedBadValue(t *testing.T) {
	log := []byte("RAxML was called as follows:\n\nraxmlHPC -p notanumber -s aln\n")
	if _, err := RecoverSeed("uce-5", "log", log); err == nil {
		t.Fatalf("expected error for non-numeric seed")
	}
}
