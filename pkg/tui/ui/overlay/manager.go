// Package overlay composes floating surfaces over a background view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Placement controls overlay alignment and sizing. When Anchored is set the
// overlay is pinned at (AnchorX, AnchorY) and clamped to stay inside the
// viewport with Margin columns/rows to spare; otherwise Horizontal/Vertical
// alignment applies.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int

	Anchored bool
	AnchorX  int
	AnchorY  int
	Margin   int
}

// Anchor returns a placement pinned just below the given cell.
func Anchor(x, y, margin int) Placement {
	return Placement{Anchored: true, AnchorX: x, AnchorY: y + 1, Margin: margin}
}

// Rect is the viewport region an overlay occupied after composition, used
// for pointer hit-testing.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell at (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds, and reports the region the
// overlay landed in.
func Compose(background string, width, height int, foreground string, placement Placement) (string, Rect) {
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n"), Rect{}
	}

	fgLines := strings.Split(foreground, "\n")

	overlayWidth := placement.Width
	if overlayWidth <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > overlayWidth {
				overlayWidth = w
			}
		}
	}
	if overlayWidth <= 0 {
		return strings.Join(bgLines, "\n"), Rect{}
	}
	if overlayWidth > width {
		overlayWidth = width
	}

	overlayHeight := placement.Height
	if overlayHeight <= 0 {
		overlayHeight = len(fgLines)
	}
	if overlayHeight <= 0 {
		return strings.Join(bgLines, "\n"), Rect{}
	}
	if overlayHeight > height {
		overlayHeight = height
	}

	offsetX, offsetY := computeOffsets(width, height, overlayWidth, overlayHeight, placement)

	for row := 0; row < overlayHeight; row++ {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, overlayWidth)

		baseLine := bgLines[destY]
		prefix := sliceWidth(baseLine, 0, offsetX)
		suffix := sliceWidth(baseLine, offsetX+overlayWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	rect := Rect{X: offsetX, Y: offsetY, Width: overlayWidth, Height: overlayHeight}
	return strings.Join(bgLines, "\n"), rect
}

func computeOffsets(width, height, overlayWidth, overlayHeight int, placement Placement) (int, int) {
	if placement.Anchored {
		return clampAnchor(placement.AnchorX, placement.Margin, overlayWidth, width),
			clampAnchor(placement.AnchorY, placement.Margin, overlayHeight, height)
	}

	h := placement.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := placement.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	offsetX := placement.MarginX
	switch h {
	case lipgloss.Right:
		offsetX = width - overlayWidth - placement.MarginX
	case lipgloss.Center:
		offsetX = (width - overlayWidth) / 2
	}
	offsetX = clampOffset(offsetX, overlayWidth, width)

	offsetY := placement.MarginY
	switch v {
	case lipgloss.Bottom:
		offsetY = height - overlayHeight - placement.MarginY
	case lipgloss.Center:
		offsetY = (height - overlayHeight) / 2
	}
	offsetY = clampOffset(offsetY, overlayHeight, height)

	return offsetX, offsetY
}

// clampAnchor keeps an anchored overlay fully on screen with margin cells
// to spare when the viewport allows it.
func clampAnchor(offset, margin, size, bound int) int {
	max := bound - size - margin
	if offset > max {
		offset = max
	}
	if offset < margin {
		offset = margin
	}
	if offset < 0 {
		offset = 0
	}
	if offset > bound-size {
		offset = bound - size
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func clampOffset(offset, size, bound int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > bound-size {
		offset = bound - size
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := lipgloss.Width(s)
	if currWidth >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-currWidth)
}

func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if end > lipgloss.Width(s) {
		end = lipgloss.Width(s)
	}
	if start >= end {
		return ""
	}

	runes := []rune(s)
	result := strings.Builder{}
	widthSeen := 0
	for _, r := range runes {
		rw := lipgloss.Width(string(r))
		next := widthSeen + rw
		if next <= start {
			widthSeen = next
			continue
		}
		if widthSeen >= end {
			break
		}
		if next > end {
			break
		}
		result.WriteRune(r)
		widthSeen = next
	}
	return result.String()
}
