package focus

import "testing"

func TestContainsFocusedWithinSubtree(t *testing.T) {
	reg := NewRegistry()
	field := reg.Handle()
	popup := field.Child()
	other := reg.Handle()

	popup.Focus()
	if !field.ContainsFocused() {
		t.Fatalf("expected focus on child handle to count as inside the field subtree")
	}

	other.Focus()
	if field.ContainsFocused() {
		t.Fatalf("expected focus on unrelated handle to be outside the field subtree")
	}
}

func TestContainsSelf(t *testing.T) {
	reg := NewRegistry()
	field := reg.Handle()
	field.Focus()

	if !field.IsFocused() {
		t.Fatalf("expected field to hold focus after Focus")
	}
	if !field.Contains(field) {
		t.Fatalf("expected handle to contain itself")
	}
}

func TestBlurClearsFocus(t *testing.T) {
	reg := NewRegistry()
	field := reg.Handle()
	field.Focus()
	reg.Blur()

	if reg.Focused() != nil {
		t.Fatalf("expected no focused handle after Blur, got %v", reg.Focused())
	}
	if field.ContainsFocused() {
		t.Fatalf("expected ContainsFocused to be false with nothing focused")
	}
}

func TestNilHandleIsInert(t *testing.T) {
	var h *Handle
	h.Focus()
	if h.IsFocused() || h.ContainsFocused() || h.Contains(nil) {
		t.Fatalf("expected nil handle to report no focus state")
	}
	if h.Child() != nil {
		t.Fatalf("expected nil handle to derive nil child")
	}
}
