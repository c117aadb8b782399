// internal/raxml/output.go
package raxml

import (
	"fmt"
	"regexp"
	"strconv"
)

// ToolError means the external search tool failed outright or its output no
// longer matches the expected report format (crash, incompatible version).
// It is not retried: a missing locus output would silently corrupt
// reassembly, so the whole batch aborts.
type ToolError struct {
	Locus  string
	Reason string
	Output string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("locus %s: bootstrap search failed: %s", e.Locus, e.Reason)
}

var (
	overallTimeRx = regexp.MustCompile(`Overall Time for \d+ Bootstraps ([\d.]+)`)
	patternsRx    = regexp.MustCompile(`Alignment Patterns: (\d+)`)
)

// ParseRunOutput extracts the bootstrap wall time and the distinct alignment
// pattern count from the tool's combined output.
func ParseRunOutput(locus string, out []byte) (seconds float64, patterns int, err error) {
	m := overallTimeRx.FindSubmatch(out)
	if m == nil {
		return 0, 0, &ToolError{Locus: locus, Reason: "no 'Overall Time for N Bootstraps' in output", Output: string(out)}
	}
	seconds, err = strconv.ParseFloat(string(m[1]), 64)
	if err != nil {
		return 0, 0, &ToolError{Locus: locus, Reason: "unparseable bootstrap time " + string(m[1]), Output: string(out)}
	}
	m = patternsRx.FindSubmatch(out)
	if m == nil {
		return 0, 0, &ToolError{Locus: locus, Reason: "no 'Alignment Patterns' in output", Output: string(out)}
	}
	patterns, err = strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, 0, &ToolError{Locus: locus, Reason: "unparseable pattern count " + string(m[1]), Output: string(out)}
	}
	return seconds, patterns, nil
}
