// core/treebank/pool.go
package treebank

import "fmt"

// DrainError reports a mismatch between the trees loaded for a locus and the
// trees drawn from it during assembly. Either direction (leftover trees or an
// over-draw) means the per-locus demand counts were miscalculated.
type DrainError struct {
	Locus  string
	Loaded int
	Drawn  int
}

func (e *DrainError) Error() string {
	if e.Drawn > e.Loaded {
		return fmt.Sprintf("locus %s: drew %d trees but only %d were loaded", e.Locus, e.Drawn, e.Loaded)
	}
	return fmt.Sprintf("locus %s: %d of %d trees left undrawn after assembly", e.Locus, e.Loaded-e.Drawn, e.Loaded)
}

// Pool holds each locus's bootstrap trees in generation order. Draws advance
// a cursor into the immutable loaded slice rather than mutating it, so the
// full sequence stays inspectable after assembly.
type Pool struct {
	trees map[string][]string
	next  map[string]int
}

func New() *Pool {
	return &Pool{
		trees: make(map[string][]string),
		next:  make(map[string]int),
	}
}

// Load registers a locus's trees, replacing any previous load.
func (p *Pool) Load(locus string, trees []string) {
	p.trees[locus] = trees
	p.next[locus] = 0
}

// Next returns the locus's next unused tree, front to back. Drawing past the
// end (or from an unloaded locus) returns a *DrainError.
func (p *Pool) Next(locus string) (string, error) {
	trees, ok := p.trees[locus]
	if !ok {
		return "", &DrainError{Locus: locus, Loaded: 0, Drawn: 1}
	}
	i := p.next[locus]
	if i >= len(trees) {
		return "", &DrainError{Locus: locus, Loaded: len(trees), Drawn: i + 1}
	}
	p.next[locus] = i + 1
	return trees[i], nil
}

// Remaining reports how many trees a locus has left undrawn.
func (p *Pool) Remaining(locus string) int {
	return len(p.trees[locus]) - p.next[locus]
}

// Drained returns a *DrainError for the first locus with undrawn trees, or
// nil when every loaded locus was consumed exactly.
func (p *Pool) Drained() error {
	for locus, trees := range p.trees {
		if p.next[locus] != len(trees) {
			return &DrainError{Locus: locus, Loaded: len(trees), Drawn: p.next[locus]}
		}
	}
	return nil
}
