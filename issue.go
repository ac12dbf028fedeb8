package formz

import (
	"maps"
	"slices"
)

// Issue is a validation finding for one field. Scalar fields carry a Leaf;
// composite fields carry Nested findings keyed by their own fields.
type Issue[E comparable] struct {
	Leaf   E
	Nested Issues[E]
}

// Issues maps field keys to findings.
type Issues[E comparable] map[string]Issue[E]

// Leaf builds a scalar finding.
func Leaf[E comparable](e E) Issue[E] {
	return Issue[E]{Leaf: e}
}

// Nest builds a composite finding.
func Nest[E comparable](issues Issues[E]) Issue[E] {
	return Issue[E]{Nested: issues}
}

// Empty reports whether the issue carries no finding at any depth.
func (i Issue[E]) Empty() bool {
	var zero E
	if i.Leaf != zero {
		return false
	}
	return !i.Nested.Any()
}

// Equal reports whether two issues describe the same findings.
func (i Issue[E]) Equal(other Issue[E]) bool {
	if i.Leaf != other.Leaf {
		return false
	}
	return i.Nested.Equal(other.Nested)
}

// Any reports whether at least one entry is non-empty.
func (is Issues[E]) Any() bool {
	for _, i := range is {
		if !i.Empty() {
			return true
		}
	}
	return false
}

// Equal compares two issue maps entry by entry. Empty entries are ignored
// so that nil and an empty map compare equal.
func (is Issues[E]) Equal(other Issues[E]) bool {
	for k, i := range is {
		if !i.Equal(other[k]) {
			return false
		}
	}
	for k, o := range other {
		if _, ok := is[k]; !ok && !o.Empty() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (is Issues[E]) Clone() Issues[E] {
	if is == nil {
		return nil
	}
	out := make(Issues[E], len(is))
	for k, i := range is {
		out[k] = Issue[E]{Leaf: i.Leaf, Nested: i.Nested.Clone()}
	}
	return out
}

func (is Issues[E]) keys() []string {
	return slices.Sorted(maps.Keys(is))
}
