// Package teaui hosts the Bubble Tea program for the datepick demo.
package teaui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
	"tableflip.dev/datepick/pkg/tui/components/help"
	"tableflip.dev/datepick/pkg/tui/components/popover"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/focus"
	"tableflip.dev/datepick/pkg/tui/theme"
	"tableflip.dev/datepick/pkg/tui/ui/overlay"
)

const (
	singleID events.ComponentID = "appointment"
	rangeID  events.ComponentID = "report-window"
	noteID   events.ComponentID = "note"
)

// Model is the demo UI: a single-day picker, a range picker with presets,
// and a note input so focus can land on something that is not a picker.
type Model struct {
	ctx         context.Context
	persistence store.Persistence

	reg    *focus.Registry
	single *datepicker.Model
	ranged *datepicker.Model

	note       textinput.Model
	noteHandle *focus.Handle

	pop      *popover.Model
	help     *help.Model
	helpOpen bool
	th       theme.Theme

	// field regions from the last render, for pointer routing
	singleRect overlay.Rect
	rangeRect  overlay.Rect
	noteRect   overlay.Rect

	status string

	termWidth  int
	termHeight int
}

// New builds the demo model backed by the given history store.
func New(p store.Persistence) *Model {
	reg := focus.NewRegistry()

	single := datepicker.New(singleID, reg)
	single.SetCleanable(true)
	single.SetPlaceholder("Pick a day")

	ranged := datepicker.NewRange(rangeID, reg)
	ranged.SetNumberOfMonths(2)
	now := time.Now()
	ranged.SetPresets([]datepicker.Preset{
		datepicker.PresetSingle("Today", now),
		datepicker.LastDays("Last 7 days", 7, now),
		datepicker.LastDays("Last 30 days", 30, now),
	})

	ti := textinput.New()
	ti.Placeholder = "Add a note"
	ti.CharLimit = 120
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := &Model{
		ctx:         context.Background(),
		persistence: p,
		reg:         reg,
		single:      single,
		ranged:      ranged,
		note:        ti,
		noteHandle:  reg.Handle(),
		pop:         popover.New(80, 24),
		help:        help.New(48, 16),
		th:          theme.Default(),
		status:      "tab move, enter open, esc close, ? help, q quit",
	}
	single.FocusHandle().Focus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes messages to the focused widget.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.pop.SetSize(msg.Width, msg.Height)
		m.single.SetSize(msg.Width, msg.Height)
		m.ranged.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width*2/3, msg.Height*2/3)
		return m, nil

	case events.DateChangeMsg:
		return m, m.recordChange(msg)

	case events.CalendarSelectMsg:
		m.status = msg.Describe()
		return m, nil

	case events.FocusMsg:
		m.status = msg.Describe()
		if msg.Component == noteID {
			return m, m.note.Focus()
		}
		return m, nil

	case events.BlurMsg:
		if msg.Component == noteID {
			m.note.Blur()
		}
		return m, nil

	case events.DebugMsg:
		m.status = msg.Describe()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		return m, m.handleClick(msg.X, msg.Y)

	case tea.MouseReleaseMsg:
		if p := m.openPicker(); p != nil && !m.pop.Contains(msg.X, msg.Y) {
			p.OutsideRelease()
		}
		return m, nil
	}
	return m, nil
}

// recordChange reflects a committed pick in the status line and persists it.
func (m *Model) recordChange(msg events.DateChangeMsg) tea.Cmd {
	m.status = msg.Describe()
	if m.persistence == nil {
		return nil
	}
	pick := store.FromDate(string(msg.Component), msg.Date, time.Now())
	if err := m.persistence.Record(pick); err != nil {
		return events.DebugCmd(msg.Component, "record", err.Error())
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.helpOpen {
		switch msg.String() {
		case "esc", "q", "?":
			m.helpOpen = false
			return nil
		}
		return m.help.Update(msg)
	}

	if m.noteHandle.IsFocused() {
		switch msg.String() {
		case "esc", "tab":
			m.single.FocusHandle().Focus()
			return tea.Batch(events.BlurCmd(noteID), events.FocusCmd(singleID))
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return cmd
	}

	picker := m.focusedPicker()
	if picker != nil {
		cmd, consumed := picker.HandleKey(msg)
		if consumed {
			return cmd
		}
	}

	// unconsumed keys belong to the app scope
	switch msg.String() {
	case "tab":
		return m.cycleFocus()
	case "?":
		m.helpOpen = true
		return nil
	case "esc", "q":
		return tea.Quit
	}
	return nil
}

// cycleFocus moves focus single -> range -> note -> single and announces
// the move through focus events. Only reachable while no popover is open;
// open popovers consume navigation keys first.
func (m *Model) cycleFocus() tea.Cmd {
	switch {
	case m.single.FocusHandle().ContainsFocused():
		m.ranged.FocusHandle().Focus()
		return events.FocusCmd(rangeID)
	case m.ranged.FocusHandle().ContainsFocused():
		m.noteHandle.Focus()
		return events.FocusCmd(noteID)
	default:
		m.single.FocusHandle().Focus()
		return tea.Batch(events.BlurCmd(noteID), events.FocusCmd(singleID))
	}
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	if p := m.openPicker(); p != nil {
		if m.pop.Contains(x, y) {
			rect := m.pop.Rect()
			return p.PopoverClick(x-rect.X, y-rect.Y)
		}
		// closing on an outside press waits for the release
		return nil
	}

	switch {
	case m.singleRect.Contains(x, y):
		return tea.Batch(events.BlurCmd(noteID), m.single.FieldClick(x-m.singleRect.X))
	case m.rangeRect.Contains(x, y):
		return tea.Batch(events.BlurCmd(noteID), m.ranged.FieldClick(x-m.rangeRect.X))
	case m.noteRect.Contains(x, y):
		m.noteHandle.Focus()
		return events.FocusCmd(noteID)
	}
	return nil
}

// focusedPicker returns the picker whose subtree holds focus, if any.
func (m *Model) focusedPicker() *datepicker.Model {
	if m.single.FocusHandle().ContainsFocused() {
		return m.single
	}
	if m.ranged.FocusHandle().ContainsFocused() {
		return m.ranged
	}
	return nil
}

// openPicker returns the picker currently showing its popover, if any.
func (m *Model) openPicker() *datepicker.Model {
	if m.single.Open() {
		return m.single
	}
	if m.ranged.Open() {
		return m.ranged
	}
	return nil
}

// View renders the form and floats the open popover above it.
func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("datepick")

	singleField := m.single.View()
	rangeField := m.ranged.View()

	noteLabel := m.th.Help.Render("note ")
	noteLine := noteLabel + m.note.View()

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		singleField,
		rangeField,
		noteLine,
		"",
		m.th.Status.Render(m.status),
	)

	// field rows: title and blank line above, each field is 3 rows tall
	m.singleRect = overlay.Rect{X: 0, Y: 2, Width: m.single.FieldWidth(), Height: 3}
	m.rangeRect = overlay.Rect{X: 0, Y: 5, Width: m.ranged.FieldWidth(), Height: 3}
	m.noteRect = overlay.Rect{X: 0, Y: 8, Width: lipgloss.Width(noteLine), Height: 1}

	m.pop.SetBackground(body)
	if m.helpOpen {
		m.pop.Show(m.help.View(), overlay.Placement{})
		return m.pop.View()
	}
	p := m.openPicker()
	if p == nil {
		m.pop.Hide()
		return m.pop.View()
	}

	anchor := m.singleRect
	if p == m.ranged {
		anchor = m.rangeRect
	}
	m.pop.Show(p.PopoverView(), overlay.Anchor(anchor.X, anchor.Y+anchor.Height-1, datepicker.PopoverMargin))
	return m.pop.View()
}

// Run starts the program with mouse support enabled.
func Run(ctx context.Context, p store.Persistence) error {
	prog := tea.NewProgram(New(p),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := prog.Run()
	return err
}
