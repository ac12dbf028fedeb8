package formz

import "testing"

func TestNodeCreated(t *testing.T) {
	if NodeCreated.Name() != "formz.node.created" {
		t.Errorf("expected name 'formz.node.created', got %q", NodeCreated.Name())
	}
}

func TestNodeReleased(t *testing.T) {
	if NodeReleased.Name() != "formz.node.released" {
		t.Errorf("expected name 'formz.node.released', got %q", NodeReleased.Name())
	}
}

func TestValidatorMissing(t *testing.T) {
	if ValidatorMissing.Name() != "formz.validator.missing" {
		t.Errorf("expected name 'formz.validator.missing', got %q", ValidatorMissing.Name())
	}
}

func TestSubscriptionUnknown(t *testing.T) {
	if SubscriptionUnknown.Name() != "formz.subscription.unknown" {
		t.Errorf("expected name 'formz.subscription.unknown', got %q", SubscriptionUnknown.Name())
	}
}

func TestMutationDeferred(t *testing.T) {
	if MutationDeferred.Name() != "formz.mutation.deferred" {
		t.Errorf("expected name 'formz.mutation.deferred', got %q", MutationDeferred.Name())
	}
}

func TestStateCopyFailed(t *testing.T) {
	if StateCopyFailed.Name() != "formz.state.copy.failed" {
		t.Errorf("expected name 'formz.state.copy.failed', got %q", StateCopyFailed.Name())
	}
}
