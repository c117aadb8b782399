// internal/assemble/assemble.go
package assemble

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mlboot-core/replicate"
	"mlboot-core/treebank"
)

// bootstrapMarker identifies the tree file the search tool writes into a
// job's output directory (RAxML_bootstrap.<run name>).
const bootstrapMarker = "bootstrap"

// Error is fatal: replicate outputs cannot be trusted when a locus's tree
// file is ambiguous or its pool drains at the wrong time.
type Error struct {
	Locus  string
	Reason string
}

func (e *Error) Error() string { return fmt.Sprintf("locus %s: %s", e.Locus, e.Reason) }

// FileName names replicate i's multi-locus tree file.
func FileName(i int) string { return fmt.Sprintf("boot.%04d.tre", i) }

// Run reassembles the multi-locus replicates from the per-locus bootstrap
// tree files in dirs. Every locus's trees are loaded front to back into a
// pool, then each replicate draws one unused tree per locus occurrence, in
// replicate order, and is written to outDir as one file. All locus files are
// verified before the first replicate file is written, and every pool must
// drain exactly as the last replicate referencing it completes.
func Run(reps []replicate.Replicate, dirs map[string]string, outDir string) error {
	pool := treebank.New()
	for locus, dir := range dirs {
		path, err := treeFile(locus, dir)
		if err != nil {
			return err
		}
		trees, err := readLines(path)
		if err != nil {
			return &Error{Locus: locus, Reason: err.Error()}
		}
		pool.Load(locus, trees)
	}

	for i, rep := range reps {
		var b strings.Builder
		for _, locus := range rep {
			tree, err := pool.Next(locus)
			if err != nil {
				return &Error{Locus: locus, Reason: err.Error()}
			}
			b.WriteString(tree)
			b.WriteByte('\n')
		}
		if err := os.WriteFile(filepath.Join(outDir, FileName(i)), []byte(b.String()), 0o644); err != nil {
			return err
		}
	}

	if err := pool.Drained(); err != nil {
		de := err.(*treebank.DrainError)
		return &Error{Locus: de.Locus, Reason: de.Error()}
	}
	return nil
}

// treeFile locates the single bootstrap output file in a job directory.
// Zero or several matches means the directory's provenance is ambiguous.
func treeFile(locus, dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &Error{Locus: locus, Reason: err.Error()}
	}
	var matches []string
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), bootstrapMarker) {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	if len(matches) != 1 {
		return "", &Error{Locus: locus, Reason: fmt.Sprintf("found %d bootstrap tree files in %s, want exactly 1", len(matches), dir)}
	}
	return matches[0], nil
}

func readLines(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var lines []string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // newick lines can run long
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
