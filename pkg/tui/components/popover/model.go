// Package popover hosts a floating surface over a background view.
package popover

import (
	overlaymgr "tableflip.dev/datepick/pkg/tui/ui/overlay"
)

// Model composes a background view with at most one floating surface. The
// surface is painted over the background and owns pointer hits inside its
// bounds; content underneath never receives them.
type Model struct {
	width  int
	height int

	background string

	content   string
	placement overlaymgr.Placement
	visible   bool

	rect overlaymgr.Rect
}

// New constructs a host sized to width x height.
func New(width, height int) *Model {
	m := &Model{}
	m.SetSize(width, height)
	return m
}

// SetSize updates the viewport bounds.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	m.width = width
	m.height = height
}

// SetBackground records the background view.
func (m *Model) SetBackground(view string) {
	m.background = view
}

// Show mounts the surface with the provided placement.
func (m *Model) Show(content string, placement overlaymgr.Placement) {
	m.content = content
	m.placement = placement
	m.visible = true
}

// Hide removes the surface.
func (m *Model) Hide() {
	m.visible = false
	m.content = ""
	m.rect = overlaymgr.Rect{}
}

// Visible reports whether a surface is currently mounted.
func (m *Model) Visible() bool { return m.visible }

// View renders the composed view and records where the surface landed.
func (m *Model) View() string {
	if !m.visible {
		m.rect = overlaymgr.Rect{}
		return m.background
	}
	view, rect := overlaymgr.Compose(m.background, m.width, m.height, m.content, m.placement)
	m.rect = rect
	return view
}

// Rect returns the region the surface occupied in the last View.
func (m *Model) Rect() overlaymgr.Rect { return m.rect }

// Contains reports whether the cell at (x, y) hits the surface. Callers use
// it to split pointer events into inside/outside interaction.
func (m *Model) Contains(x, y int) bool {
	return m.visible && m.rect.Contains(x, y)
}
