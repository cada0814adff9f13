package overlay

import (
	"strings"
	"testing"
)

func TestComposeAnchoredPlacesBelowAnchor(t *testing.T) {
	bg := strings.TrimRight(strings.Repeat("..........\n", 6), "\n")
	view, rect := Compose(bg, 10, 6, "XXX\nXXX", Anchor(2, 1, 1))

	if rect.X != 2 || rect.Y != 2 {
		t.Fatalf("expected overlay at (2,2), got (%d,%d)", rect.X, rect.Y)
	}
	lines := strings.Split(view, "\n")
	if lines[2][2:5] != "XXX" {
		t.Fatalf("expected overlay content on row 2, got %q", lines[2])
	}
	if lines[1] != ".........." {
		t.Fatalf("expected row above the anchor untouched, got %q", lines[1])
	}
}

func TestComposeAnchoredClampsToViewport(t *testing.T) {
	bg := strings.TrimRight(strings.Repeat("..........\n", 5), "\n")

	// Anchor near the right/bottom edge: overlay must pull back inside the
	// margin rather than spill off screen.
	_, rect := Compose(bg, 10, 5, "XXXX\nXXXX", Anchor(9, 4, 1))
	if rect.X != 10-4-1 {
		t.Fatalf("expected x clamped to %d, got %d", 10-4-1, rect.X)
	}
	if rect.Y != 5-2-1 {
		t.Fatalf("expected y clamped to %d, got %d", 5-2-1, rect.Y)
	}
}

func TestComposeAnchoredTinyViewport(t *testing.T) {
	bg := "....\n...."

	// Overlay as wide as the viewport: the margin cannot be honored but the
	// overlay must stay at a valid offset.
	_, rect := Compose(bg, 4, 2, "XXXX", Anchor(3, 0, 1))
	if rect.X != 0 {
		t.Fatalf("expected x forced to 0, got %d", rect.X)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Fatalf("expected corners inside rect")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Fatalf("expected cells outside rect to miss")
	}
}

func TestComposeEmptyForegroundKeepsBackground(t *testing.T) {
	bg := "ab\ncd"
	view, rect := Compose(bg, 2, 2, "", Placement{})
	if view != "ab\ncd" {
		t.Fatalf("expected background unchanged, got %q", view)
	}
	if rect != (Rect{}) {
		t.Fatalf("expected zero rect for empty overlay")
	}
}
