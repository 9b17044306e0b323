package mapping

// Pair maps source atom index S onto target atom index T.
type Pair struct {
	S, T int
}

// Mapping is an ordered set of index pairs, injective in both directions.
type Mapping []Pair

// Size returns the number of mapped pairs.
func (m Mapping) Size() int { return len(m) }

// Clone returns an independent copy of the mapping.
func (m Mapping) Clone() Mapping { return append(Mapping(nil), m...) }

// Swapped returns the mapping with source and target roles exchanged.
// Used when the extension search reorients the smaller graph.
func (m Mapping) Swapped() Mapping {
	out := make(Mapping, len(m))
	for i, p := range m {
		out[i] = Pair{S: p.T, T: p.S}
	}

	return out
}

// HasSource reports whether source index s is already mapped.
func (m Mapping) HasSource(s int) bool {
	for _, p := range m {
		if p.S == s {
			return true
		}
	}

	return false
}

// HasTarget reports whether target index t is already mapped.
func (m Mapping) HasTarget(t int) bool {
	for _, p := range m {
		if p.T == t {
			return true
		}
	}

	return false
}

// TargetOf returns the target index mapped to source s, or -1.
func (m Mapping) TargetOf(s int) int {
	for _, p := range m {
		if p.S == s {
			return p.T
		}
	}

	return -1
}

// Injective reports whether no source and no target index repeats.
func (m Mapping) Injective() bool {
	src := make(map[int]struct{}, len(m))
	dst := make(map[int]struct{}, len(m))
	for _, p := range m {
		if _, dup := src[p.S]; dup {
			return false
		}
		if _, dup := dst[p.T]; dup {
			return false
		}
		src[p.S] = struct{}{}
		dst[p.T] = struct{}{}
	}

	return true
}

// EqualSet reports whether m and o contain the same pairs, regardless
// of insertion order.
func (m Mapping) EqualSet(o Mapping) bool {
	if len(m) != len(o) {
		return false
	}
	set := make(map[Pair]struct{}, len(m))
	for _, p := range m {
		set[p] = struct{}{}
	}
	for _, p := range o {
		if _, ok := set[p]; !ok {
			return false
		}
	}

	return true
}
