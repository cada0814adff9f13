package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// Size is the density token shared by form controls. It changes padding and
// cell spacing, not layout bounds.
type Size int

const (
	// SizeMedium is the standard control density.
	SizeMedium Size = iota
	// SizeSmall tightens spacing for dense layouts.
	SizeSmall
	// SizeLarge loosens spacing for spotlight placement.
	SizeLarge
)

// String returns the token name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}
