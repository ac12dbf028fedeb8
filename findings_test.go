package formz

import "testing"

func TestSetErrors_RoundTrip(t *testing.T) {
	form := newTestForm(t, map[string]any{"name": ""})
	root := form.Root()

	root.SetErrors(Issues[string]{"name": Leaf("required")})
	issue, ok := root.Issue("name")
	if !ok || issue.Leaf != "required" {
		t.Errorf("expected 'required', got %q (present %v)", issue.Leaf, ok)
	}
	if !root.Error() {
		t.Error("expected error flag set")
	}

	root.SetErrors(Issues[string]{})
	if _, ok := root.Issue("name"); ok {
		t.Error("expected finding cleared")
	}
	if root.Error() {
		t.Error("expected error flag cleared")
	}
}

func TestSetError_IdenticalIsNoOp(t *testing.T) {
	form := newTestForm(t, nil)
	root := form.Root()

	var field counter
	root.Listen("name", field.listener())

	if !root.SetError("name", Leaf("required")) {
		t.Fatal("expected first write to change")
	}
	if root.SetError("name", Leaf("required")) {
		t.Error("expected identical finding to be a no-op")
	}
	if root.SetError("other", Issue[string]{}) {
		t.Error("expected clearing an unset key to be a no-op")
	}
	if field.calls != 1 {
		t.Errorf("expected 1 notification, got %d", field.calls)
	}
}

func TestSetErrors_NotifiesAnyOnce(t *testing.T) {
	form := newTestForm(t, nil)
	root := form.Root()
	root.SetErrors(Issues[string]{"stale": Leaf("x")})

	var all, stale counter
	root.ListenAny(all.listener())
	root.Listen("stale", stale.listener())

	root.SetErrors(Issues[string]{"a": Leaf("x"), "b": Leaf("y")})

	if all.calls != 1 || all.bulk != 1 {
		t.Errorf("expected 1 bulk any notification, got %d (%d bulk)", all.calls, all.bulk)
	}
	if stale.calls != 1 || stale.bulk != 1 {
		t.Errorf("expected cleared key notified once in bulk, got %d (%d bulk)", stale.calls, stale.bulk)
	}
	if _, ok := root.Issue("stale"); ok {
		t.Error("expected stale finding cleared")
	}
}

func TestSetError_SeedsAndClearsChild(t *testing.T) {
	form := newTestForm(t, map[string]any{"address": map[string]any{"city": ""}})
	root := form.Root()
	address, _ := root.Child("address")

	root.SetError("address", Nest(Issues[string]{"city": Leaf("required")}))
	if issue, _ := address.Issue("city"); issue.Leaf != "required" {
		t.Errorf("expected child finding 'required', got %q", issue.Leaf)
	}

	root.SetError("address", Issue[string]{})
	if address.Error() {
		t.Errorf("expected child findings cleared, got %v", address.ErrorMap())
	}
}

func TestSetError_ChildPushesUp(t *testing.T) {
	form := newTestForm(t, map[string]any{"address": map[string]any{"city": ""}})
	root := form.Root()
	address, _ := root.Child("address")

	var parentField counter
	root.Listen("address", parentField.listener())

	address.SetError("city", Leaf("required"))

	issue, ok := root.Issue("address")
	if !ok || issue.Nested["city"].Leaf != "required" {
		t.Errorf("expected nested finding on parent, got %+v", issue)
	}
	if parentField.calls != 1 {
		t.Errorf("expected parent field notified once, got %d", parentField.calls)
	}

	address.SetError("city", Issue[string]{})
	if root.Error() {
		t.Errorf("expected parent findings cleared, got %v", root.ErrorMap())
	}
}

func TestValidate_NestedFindingsReachChild(t *testing.T) {
	form := newTestForm(t, map[string]any{
		"name":    "ada",
		"address": map[string]any{"city": ""},
	})
	form.Validator(func(values any) Issues[string] {
		m := values.(map[string]any)
		if m["address"].(map[string]any)["city"] == "" {
			return Issues[string]{"address": Nest(Issues[string]{"city": Leaf("required")})}
		}
		return nil
	})
	root := form.Root()
	address, _ := root.Child("address")

	_ = root.Validate()
	if issue, _ := address.Issue("city"); issue.Leaf != "required" {
		t.Fatalf("expected child finding 'required', got %q", issue.Leaf)
	}

	address.SetValue("city", "Paris")
	if address.Error() || root.Error() {
		t.Errorf("expected findings cleared after fix, child %v root %v", address.ErrorMap(), root.ErrorMap())
	}
}
