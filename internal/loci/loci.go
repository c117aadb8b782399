// internal/loci/loci.go
package loci

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locus is one alignment to bootstrap. The name is the alignment file's base
// name without extension and keys every downstream map (seeds, demand,
// output directories).
type Locus struct {
	Name      string
	Alignment string
}

// Discover lists the per-locus alignments in dir. Entries are returned in
// directory order (sorted by name); hidden files and subdirectories are
// ignored.
func Discover(dir string) ([]Locus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []Locus
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, Locus{
			Name:      strings.TrimSuffix(name, filepath.Ext(name)),
			Alignment: filepath.Join(dir, name),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no alignments found in %s", dir)
	}
	return out, nil
}

// Names projects the locus names in order.
func Names(ls []Locus) []string {
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = l.Name
	}
	return names
}
