package formz

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// ErrUnsupportedShape is returned when a value that is neither a keyed
// composite nor an ordered sequence is used where a container is required.
var ErrUnsupportedShape = errors.New("unsupported value shape")

// absent marks an explicit removal.
type absent struct{}

// Absent is passed as a value to delete a key from its container. For
// sequences the element is removed and later indices shift down.
var Absent any = absent{}

func isAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// isComposite reports whether v is one of the two container shapes.
func isComposite(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// copyComposite deep-copies a container. Leaves are copied by assignment.
func copyComposite(v any) (any, error) {
	switch c := v.(type) {
	case map[string]any:
		return copyMap(c), nil
	case []any:
		return copySeq(c), nil
	default:
		return nil, fmt.Errorf("copy %T: %w", v, ErrUnsupportedShape)
	}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyLeafOrComposite(v)
	}
	return out
}

func copySeq(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = copyLeafOrComposite(v)
	}
	return out
}

func copyLeafOrComposite(v any) any {
	switch c := v.(type) {
	case map[string]any:
		return copyMap(c)
	case []any:
		return copySeq(c)
	default:
		return v
	}
}

// emptyLike returns an empty container of the same shape as v, defaulting
// to a keyed composite.
func emptyLike(v any) any {
	if _, ok := v.([]any); ok {
		return []any{}
	}
	return map[string]any{}
}

func sameShape(a, b any) bool {
	_, as := a.([]any)
	_, bs := b.([]any)
	return as == bs
}

// index parses a sequence key.
func index(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func lookup(c any, key string) (any, bool) {
	switch x := c.(type) {
	case map[string]any:
		v, ok := x[key]
		return v, ok
	case []any:
		i, ok := index(key)
		if !ok || i >= len(x) {
			return nil, false
		}
		return x[i], true
	default:
		return nil, false
	}
}

// assign writes v at key and returns the (possibly reallocated) container.
// Writing past the end of a sequence pads it with nil.
func assign(c any, key string, v any) any {
	switch x := c.(type) {
	case map[string]any:
		if x == nil {
			x = map[string]any{}
		}
		x[key] = v
		return x
	case []any:
		i, ok := index(key)
		if !ok {
			return x
		}
		for len(x) <= i {
			x = append(x, nil)
		}
		x[i] = v
		return x
	default:
		return map[string]any{key: v}
	}
}

// remove deletes key and returns the container.
func remove(c any, key string) any {
	switch x := c.(type) {
	case map[string]any:
		delete(x, key)
		return x
	case []any:
		i, ok := index(key)
		if !ok || i >= len(x) {
			return x
		}
		return slices.Delete(x, i, i+1)
	default:
		return c
	}
}

func length(c any) int {
	switch x := c.(type) {
	case map[string]any:
		return len(x)
	case []any:
		return len(x)
	default:
		return 0
	}
}

// keys returns the keys of c in a stable order: sorted for composites,
// ascending index for sequences.
func keys(c any) []string {
	switch x := c.(type) {
	case map[string]any:
		return slices.Sorted(maps.Keys(x))
	case []any:
		out := make([]string, len(x))
		for i := range x {
			out[i] = strconv.Itoa(i)
		}
		return out
	default:
		return nil
	}
}

func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
