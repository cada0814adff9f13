package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/tui/ui"
)

//go:embed help.md
var helpText string

var _ ui.Component = (*Model)(nil)

// Model renders the key reference inside a bordered, scrollable viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
}

// New constructs a help overlay model sized to the provided bounds.
func New(width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Margin(0).
		Padding(0, 1)
	model := &Model{
		viewport: vp,
		frame:    frame,
	}
	model.SetSize(width, height)
	return model
}

// Init implements the component contract.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

// View renders the help content inside the frame.
func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// SetSize configures the overlay dimensions and re-renders the content.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	frameX := m.frame.GetHorizontalFrameSize()
	frameY := m.frame.GetVerticalFrameSize()

	m.viewport.SetWidth(max(width-frameX, 1))
	m.viewport.SetHeight(max(height-frameY, 1))
	m.viewport.SetContent(renderContent())
	m.viewport.SetYOffset(0)
}

func renderContent() string {
	heading := lipgloss.NewStyle().Bold(true)
	sub := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	lines := strings.Split(strings.TrimSpace(helpText), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "## "):
			out = append(out, sub.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "# "):
			out = append(out, heading.Render(strings.TrimPrefix(line, "# ")))
		case strings.HasPrefix(line, "- "):
			out = append(out, "  "+strings.TrimPrefix(line, "- "))
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
