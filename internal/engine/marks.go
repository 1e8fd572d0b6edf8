package engine

// MarkSet is an ordered, duplicate-free set of marks. Sets are treated as
// immutable: every operation returns a new slice.
type MarkSet []MarkType

// Has reports whether the set contains t.
func (m MarkSet) Has(t MarkType) bool {
	for _, mark := range m {
		if mark == t {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same marks in the same order.
func (m MarkSet) Equal(other MarkSet) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// Remove returns the set without t.
func (m MarkSet) Remove(t MarkType) MarkSet {
	if !m.Has(t) {
		return m
	}
	out := make(MarkSet, 0, len(m)-1)
	for _, mark := range m {
		if mark != t {
			out = append(out, mark)
		}
	}
	return out
}

// AddMark returns set with t added in schema order. A mark that excludes all
// others replaces the set, and nothing can be added next to one.
func (s *Schema) AddMark(set MarkSet, t MarkType) MarkSet {
	if set.Has(t) {
		return set
	}
	if s.excludesAll(t) {
		return MarkSet{t}
	}
	for _, existing := range set {
		if s.excludesAll(existing) {
			return set
		}
	}
	out := make(MarkSet, 0, len(set)+1)
	inserted := false
	for _, existing := range set {
		if !inserted && s.rank(t) < s.rank(existing) {
			out = append(out, t)
			inserted = true
		}
		out = append(out, existing)
	}
	if !inserted {
		out = append(out, t)
	}
	return out
}
