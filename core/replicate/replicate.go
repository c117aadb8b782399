// core/replicate/replicate.go
package replicate

// Source supplies uniform random draws. *math/rand.Rand satisfies it;
// tests can script exact outputs.
type Source interface {
	Intn(n int) int
}

// Replicate is one multi-locus bootstrap replicate: an ordered sequence of
// locus names of length equal to the total locus count. Loci are drawn with
// replacement, so a replicate may reference the same locus several times.
type Replicate []string

// Sample draws bootreps replicates from loci. Each replicate is built from
// len(loci) independent uniform draws with replacement.
func Sample(src Source, loci []string, bootreps int) []Replicate {
	reps := make([]Replicate, bootreps)
	for i := range reps {
		rep := make(Replicate, len(loci))
		for j := range rep {
			rep[j] = loci[src.Intn(len(loci))]
		}
		reps[i] = rep
	}
	return reps
}

// Demand counts, per locus, how many times it occurs across all replicates.
// That count is the number of single-locus bootstrap trees the locus must
// produce. The counts over all loci always sum to bootreps * len(loci).
func Demand(reps []Replicate) map[string]int {
	demand := make(map[string]int)
	for _, rep := range reps {
		for _, name := range rep {
			demand[name]++
		}
	}
	return demand
}
