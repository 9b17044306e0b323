package mapping

// Aggregator accumulates maximum-size mappings within one pass.
//
// It is deliberately not safe for concurrent use: each search task owns
// its aggregators outright and only the finished result is published.
type Aggregator struct {
	best     int
	mappings []Mapping
}

// NewAggregator returns an empty aggregator with best size -1, so the
// first insertion of any size (including an empty mapping at size 0)
// establishes the initial best.
func NewAggregator() *Aggregator {
	return &Aggregator{best: -1}
}

// Add applies the insertion rule to candidate m.
//
//	size > best  — clear the set, reset best, keep m
//	size == best — append unless an equal pair-set is already present
//	size < best  — discard
//
// The candidate is cloned on insertion; the caller may keep mutating
// its working copy.
func (a *Aggregator) Add(m Mapping) {
	switch {
	case m.Size() > a.best:
		a.best = m.Size()
		a.mappings = a.mappings[:0]
		a.mappings = append(a.mappings, m.Clone())
	case m.Size() == a.best:
		for _, kept := range a.mappings {
			if kept.EqualSet(m) {
				return
			}
		}
		a.mappings = append(a.mappings, m.Clone())
	}
}

// Best returns the best size seen so far (-1 before any insertion).
func (a *Aggregator) Best() int { return a.best }

// Len returns the number of distinct maximum mappings kept.
func (a *Aggregator) Len() int { return len(a.mappings) }

// Mappings returns a copy of the kept maximum-size mappings.
func (a *Aggregator) Mappings() []Mapping {
	out := make([]Mapping, len(a.mappings))
	for i, m := range a.mappings {
		out[i] = m.Clone()
	}

	return out
}
