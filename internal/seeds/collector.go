// internal/seeds/collector.go
package seeds

import (
	"os"
	"path/filepath"
	"strings"

	"mlboot/internal/raxml"
)

// aggregatePrefix marks the combined all-best-trees artifact that lives
// alongside the per-locus run directories and carries no seed of its own.
const aggregatePrefix = "all-best-trees"

// Collect recovers the -p seed of every prior best-tree run under dir. Each
// per-locus subdirectory must hold exactly one RAxML_info.* log; the seed is
// scraped from the invocation record inside it. Any locus without a
// recoverable seed is fatal, since that seed is a required input to the
// locus's bootstrap job.
func Collect(dir string) (map[string]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	seeds := make(map[string]int)
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, aggregatePrefix) || strings.HasPrefix(name, ".") {
			continue
		}
		logPath, err := infoLog(filepath.Join(dir, name))
		if err != nil {
			return nil, &raxml.ParseError{Locus: name, Path: filepath.Join(dir, name), Reason: err.Error()}
		}
		data, err := os.ReadFile(logPath)
		if err != nil {
			return nil, &raxml.ParseError{Locus: name, Path: logPath, Reason: err.Error()}
		}
		seed, err := raxml.RecoverSeed(name, logPath, data)
		if err != nil {
			return nil, err
		}
		seeds[name] = seed
	}
	return seeds, nil
}

func infoLog(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "RAxML_info.*"))
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		return "", errInfoCount(len(matches))
	}
	return matches[0], nil
}

type errInfoCount int

func (n errInfoCount) Error() string {
	if n == 0 {
		return "no RAxML_info log found"
	}
	return "multiple RAxML_info logs found"
}
