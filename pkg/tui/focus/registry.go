// Package focus tracks keyboard-focus ownership across widgets.
//
// Bubble Tea has no global notion of focus; each program decides which
// component receives key events. Registry gives widgets an opaque Handle
// they can acquire, focus, and test containment against, so a widget can
// answer "does focus currently rest somewhere inside me?" without knowing
// what the rest of the program looks like.
package focus

// Handle is an opaque token for a focusable region. Handles form a tree:
// a handle derived with Child belongs to its parent's subtree.
type Handle struct {
	id     int
	parent *Handle
	reg    *Registry
}

// Registry owns the single focused handle for a program.
type Registry struct {
	nextID  int
	focused *Handle
}

// NewRegistry creates an empty registry with nothing focused.
func NewRegistry() *Registry {
	return &Registry{}
}

// Handle acquires a new top-level focusable handle.
func (r *Registry) Handle() *Handle {
	r.nextID++
	return &Handle{id: r.nextID, reg: r}
}

// Focused returns the currently focused handle, or nil.
func (r *Registry) Focused() *Handle {
	return r.focused
}

// Blur clears focus entirely.
func (r *Registry) Blur() {
	r.focused = nil
}

// Child derives a handle that lives inside h's focus subtree.
func (h *Handle) Child() *Handle {
	if h == nil || h.reg == nil {
		return nil
	}
	h.reg.nextID++
	return &Handle{id: h.reg.nextID, parent: h, reg: h.reg}
}

// Focus makes h the focused handle.
func (h *Handle) Focus() {
	if h == nil || h.reg == nil {
		return
	}
	h.reg.focused = h
}

// IsFocused reports whether h itself holds focus.
func (h *Handle) IsFocused() bool {
	return h != nil && h.reg != nil && h.reg.focused == h
}

// ContainsFocused reports whether focus rests on h or any handle in its
// subtree.
func (h *Handle) ContainsFocused() bool {
	if h == nil || h.reg == nil {
		return false
	}
	return h.Contains(h.reg.focused)
}

// Contains reports whether other is h or a descendant of h.
func (h *Handle) Contains(other *Handle) bool {
	if h == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == h {
			return true
		}
	}
	return false
}
