package formz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopyComposite_Deep(t *testing.T) {
	src := map[string]any{
		"address": map[string]any{"city": "Lyon"},
		"tags":    []any{"a", map[string]any{"b": 1}},
	}
	got, err := copyComposite(src)
	if err != nil {
		t.Fatalf("copyComposite failed: %v", err)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}

	got.(map[string]any)["address"].(map[string]any)["city"] = "Paris"
	got.(map[string]any)["tags"].([]any)[1].(map[string]any)["b"] = 2

	if src["address"].(map[string]any)["city"] != "Lyon" {
		t.Error("expected nested map to be copied")
	}
	if src["tags"].([]any)[1].(map[string]any)["b"] != 1 {
		t.Error("expected nested sequence element to be copied")
	}
}

func TestCopyComposite_UnsupportedShape(t *testing.T) {
	for _, v := range []any{"text", 42, nil, struct{}{}} {
		if _, err := copyComposite(v); !errors.Is(err, ErrUnsupportedShape) {
			t.Errorf("expected ErrUnsupportedShape for %T, got %v", v, err)
		}
	}
}

func TestAssign_PadsSequence(t *testing.T) {
	got := assign([]any{"a"}, "2", "c")
	if diff := cmp.Diff([]any{"a", nil, "c"}, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_ShiftsSequence(t *testing.T) {
	got := remove([]any{"a", "b", "c"}, "1")
	if diff := cmp.Diff([]any{"a", "c"}, got); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if got := remove([]any{"a"}, "5"); len(got.([]any)) != 1 {
		t.Error("expected out-of-range removal to be ignored")
	}
}

func TestKeys_Order(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys(map[string]any{"c": 1, "a": 2, "b": 3})); diff != "" {
		t.Errorf("map keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "1"}, keys([]any{"x", "y"})); diff != "" {
		t.Errorf("sequence keys mismatch (-want +got):\n%s", diff)
	}
	if keys("scalar") != nil {
		t.Error("expected no keys for a scalar")
	}
}

func TestLookup_Sequence(t *testing.T) {
	seq := []any{"x"}
	if v, ok := lookup(seq, "0"); !ok || v != "x" {
		t.Errorf("expected 'x', got %v (%v)", v, ok)
	}
	for _, k := range []string{"1", "-1", "name"} {
		if _, ok := lookup(seq, k); ok {
			t.Errorf("expected %q to be absent", k)
		}
	}
}

func TestAbsent(t *testing.T) {
	if !isAbsent(Absent) {
		t.Error("expected Absent to be recognized")
	}
	if isAbsent(nil) {
		t.Error("expected nil to be a value, not a removal")
	}
	if isComposite(Absent) {
		t.Error("expected Absent not to be a composite")
	}
}
