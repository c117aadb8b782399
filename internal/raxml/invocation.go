// internal/raxml/invocation.go
package raxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// invocationMarker delimits the block in a RAxML info log that records the
// command line the run was started with.
const invocationMarker = "RAxML was called as follows:"

// ParseError means a prior run's info log could not yield the seed that
// produced the locus's best tree. Without it the bootstrap run cannot be
// tied back to the original search, so this is fatal.
type ParseError struct {
	Locus  string
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("locus %s: %s: %s", e.Locus, e.Path, e.Reason)
}

// RecoverSeed extracts the -p seed from the invocation record embedded in a
// RAxML info log. The recorded command line is tokenized with shell-quoting
// rules, so quoted arguments containing spaces do not shift the flag scan.
func RecoverSeed(locus, path string, log []byte) (int, error) {
	_, rest, found := strings.Cut(string(log), invocationMarker)
	if !found {
		return 0, &ParseError{Locus: locus, Path: path, Reason: "no invocation record found"}
	}
	var cmdline string
	for _, line := range strings.Split(rest, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cmdline = line
			break
		}
	}
	if cmdline == "" {
		return 0, &ParseError{Locus: locus, Path: path, Reason: "invocation record is empty"}
	}
	tokens, err := shlex.Split(cmdline)
	if err != nil {
		return 0, &ParseError{Locus: locus, Path: path, Reason: "unparseable invocation: " + err.Error()}
	}
	for i, tok := range tokens {
		if tok != "-p" {
			continue
		}
		if i+1 >= len(tokens) {
			break
		}
		seed, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return 0, &ParseError{Locus: locus, Path: path, Reason: "bad -p value " + tokens[i+1]}
		}
		return seed, nil
	}
	return 0, &ParseError{Locus: locus, Path: path, Reason: "no -p seed in invocation record"}
}
