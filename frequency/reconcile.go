package frequency

import (
	"sort"

	"github.com/theoremus-urban-solutions/gtfs-frequency/geometry"
)

// Reconcile resolves a route's candidate segments into a disjoint,
// count-labeled partition.
//
// It runs a greedy fixpoint over a worklist: each round pops one probe
// and scans the remaining items in order; the first item that overlaps
// the probe is replaced, together with the probe, by the merge
// operator's overlap and residual pieces, and the scan stops there. A
// probe that matches nothing is confirmed unique. Because only the
// first match per round is resolved, results for three-or-more-way
// overlaps depend on input order; callers that need reproducible output
// should pass candidates in a stable order.
//
// Once every segment is confirmed unique, equal-count segments are
// coalesced back into maximal connected lines.
func (r *Reconciler) Reconcile(candidates []Segment) ([]Segment, error) {
	seed := make([]Segment, len(candidates))
	copy(seed, candidates)

	// Every successful merge consumes two segments and emits pieces
	// that are pairwise disjoint, so the number of rounds is quadratic
	// in the input size. Anything beyond that means the backend gave
	// inconsistent overlap answers.
	maxRounds := len(candidates)*len(candidates) + len(candidates) + 1

	var unique []Segment
	for rounds := 0; len(seed) > 0; rounds++ {
		if rounds >= maxRounds {
			return nil, ErrNoConvergence
		}
		probe := seed[0]
		next := make([]Segment, 0, len(seed))
		matched := false
		for _, cand := range seed[1:] {
			if matched {
				next = append(next, cand)
				continue
			}
			overlap, residual, err := r.Merge(probe, cand)
			if err != nil {
				return nil, err
			}
			if len(overlap) > 0 {
				next = append(next, overlap...)
				next = append(next, residual...)
				matched = true
			} else {
				next = append(next, cand)
			}
		}
		if !matched {
			unique = append(unique, probe)
		}
		seed = next
	}

	return r.coalesce(unique)
}

// coalesce groups segments by count and re-merges each group into
// maximal connected lines, emitting one segment per connected piece.
func (r *Reconciler) coalesce(segments []Segment) ([]Segment, error) {
	groups := make(map[uint32][]*geometry.Line)
	for _, s := range segments {
		groups[s.Count] = append(groups[s.Count], s.Line)
	}

	counts := make([]uint32, 0, len(groups))
	for c := range groups {
		counts = append(counts, c)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] < counts[j] })

	var out []Segment
	for _, c := range counts {
		merged, err := r.Geo.MergeLines(groups[c])
		if err != nil {
			return nil, err
		}
		for _, l := range merged {
			out = append(out, Segment{Line: l, Count: c})
		}
	}
	return out, nil
}
