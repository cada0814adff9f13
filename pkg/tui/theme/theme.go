// Package theme centralizes Lip Gloss styles for the widget kit.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across the picker widgets.
type Theme struct {
	Field   FieldTheme
	Popover PopoverTheme
	Preset  PresetTheme
	Status  lipgloss.Style
	Help    lipgloss.Style
}

// FieldTheme styles the picker's summary field.
type FieldTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
	Glyph        lipgloss.Style
}

// PopoverTheme styles the floating calendar surface.
type PopoverTheme struct {
	Frame lipgloss.Style
}

// PresetTheme styles the quick-select column.
type PresetTheme struct {
	Label    lipgloss.Style
	Selected lipgloss.Style
}

// RangeFill derives the in-range cell background by blending the selection
// color toward the surface color.
func RangeFill(selection, surface string) color.Color {
	a, err := colorful.Hex(selection)
	if err != nil {
		return lipgloss.Color(selection)
	}
	b, err := colorful.Hex(surface)
	if err != nil {
		return lipgloss.Color(selection)
	}
	return lipgloss.Color(a.BlendLab(b, 0.55).Clamped().Hex())
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Field: FieldTheme{
			Frame: frame,
			FocusedFrame: frame.
				BorderForeground(lipgloss.Color("63")),
			Text:        lipgloss.NewStyle(),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Glyph:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Popover: PopoverTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
		},
		Preset: PresetTheme{
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
