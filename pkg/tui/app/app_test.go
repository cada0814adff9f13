package teaui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/components/calendar"
	"tableflip.dev/datepick/pkg/tui/events"
)

type memoryStore struct {
	picks []store.Pick
}

func (s *memoryStore) Record(p store.Pick) error {
	s.picks = append(s.picks, p)
	return nil
}

func (s *memoryStore) List(ctx context.Context) []store.Pick { return s.picks }

func (s *memoryStore) Clear(ctx context.Context) error {
	s.picks = nil
	return nil
}

type failingStore struct{}

func (failingStore) Record(store.Pick) error { return errors.New("disk full") }

func (failingStore) List(ctx context.Context) []store.Pick { return nil }

func (failingStore) Clear(ctx context.Context) error { return nil }

func keyPress(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: name}
}

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.View()
	return m
}

func TestInitialFocusOnSinglePicker(t *testing.T) {
	m := New(nil)
	if got := m.focusedPicker(); got != m.single {
		t.Fatalf("expected single picker focused at startup")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := sized(New(nil))

	m.handleKey(keyPress("tab"))
	if got := m.focusedPicker(); got != m.ranged {
		t.Fatalf("expected range picker focused after one tab")
	}

	m.handleKey(keyPress("tab"))
	if !m.noteHandle.IsFocused() {
		t.Fatalf("expected note input focused after two tabs")
	}

	m.handleKey(keyPress("tab"))
	if got := m.focusedPicker(); got != m.single {
		t.Fatalf("expected focus to wrap back to the single picker")
	}
}

func TestEnterOpensFocusedPicker(t *testing.T) {
	m := sized(New(nil))

	m.handleKey(keyPress("enter"))
	if !m.single.Open() {
		t.Fatalf("expected enter to open the focused picker")
	}
	if m.openPicker() != m.single {
		t.Fatalf("expected open picker to be the single picker")
	}
}

func TestEscClosesOpenPickerWithoutQuitting(t *testing.T) {
	m := sized(New(nil))
	m.handleKey(keyPress("enter"))

	cmd := m.handleKey(keyPress("esc"))
	if m.single.Open() {
		t.Fatalf("expected esc to close the popover")
	}
	if cmd != nil {
		t.Fatalf("expected consumed esc to produce no command")
	}
}

func TestEscQuitsWhenNothingOpen(t *testing.T) {
	m := sized(New(nil))

	cmd := m.handleKey(keyPress("esc"))
	if cmd == nil {
		t.Fatalf("expected unconsumed esc to reach the app scope")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit, got %T", cmd())
	}
}

func TestFieldClickOpensPicker(t *testing.T) {
	m := sized(New(nil))

	m.Update(tea.MouseClickMsg{X: m.singleRect.X + 1, Y: m.singleRect.Y + 1, Button: tea.MouseLeft})
	if !m.single.Open() {
		t.Fatalf("expected click on the field to open the popover")
	}
}

func TestOutsideReleaseClosesPicker(t *testing.T) {
	m := sized(New(nil))
	m.handleKey(keyPress("enter"))
	m.View()

	rect := m.pop.Rect()
	m.Update(tea.MouseReleaseMsg{X: rect.X + rect.Width + 2, Y: rect.Y, Button: tea.MouseLeft})
	if m.single.Open() {
		t.Fatalf("expected release outside the popover to close it")
	}
}

func TestDateChangeRecorded(t *testing.T) {
	ms := &memoryStore{}
	m := sized(New(ms))

	day := calendar.Single(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	m.Update(events.DateChangeMsg{Component: singleID, Date: day})

	if len(ms.picks) != 1 {
		t.Fatalf("expected one recorded pick, got %d", len(ms.picks))
	}
	if ms.picks[0].Picker != string(singleID) {
		t.Fatalf("unexpected picker name %q", ms.picks[0].Picker)
	}
	if m.status == "" {
		t.Fatalf("expected status line to reflect the change")
	}
}

func TestFocusEventsDriveNoteInput(t *testing.T) {
	m := sized(New(nil))

	m.Update(events.FocusMsg{Component: noteID})
	if !m.note.Focused() {
		t.Fatalf("expected a focus event to focus the note input")
	}

	m.Update(events.BlurMsg{Component: noteID})
	if m.note.Focused() {
		t.Fatalf("expected a blur event to blur the note input")
	}
}

func TestRecordFailureSurfacesDebugEvent(t *testing.T) {
	m := sized(New(failingStore{}))

	day := calendar.Single(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	_, cmd := m.Update(events.DateChangeMsg{Component: singleID, Date: day})
	if cmd == nil {
		t.Fatalf("expected a failed record to produce a debug event")
	}
	msg, ok := cmd().(events.DebugMsg)
	if !ok {
		t.Fatalf("expected a debug message, got %T", cmd())
	}
	if msg.Context != "record" || msg.Detail != "disk full" {
		t.Fatalf("unexpected debug payload: %v", msg)
	}

	m.Update(msg)
	if m.status != msg.Describe() {
		t.Fatalf("expected the status line to surface the failure, got %q", m.status)
	}
}

func TestCalendarSelectUpdatesStatus(t *testing.T) {
	m := sized(New(nil))

	day := calendar.Single(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	msg := events.CalendarSelectMsg{Component: singleID, Date: day}
	m.Update(msg)
	if m.status != msg.Describe() {
		t.Fatalf("expected status to reflect the selection, got %q", m.status)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := sized(New(nil))

	m.handleKey(keyPress("?"))
	if !m.helpOpen {
		t.Fatalf("expected ? to open help")
	}
	if m.handleKey(keyPress("enter")); m.openPicker() != nil {
		t.Fatalf("expected keys to stay inside the help overlay")
	}

	m.handleKey(keyPress("esc"))
	if m.helpOpen {
		t.Fatalf("expected esc to close help")
	}
}

func TestNoteFocusKeepsKeysOutOfPickers(t *testing.T) {
	m := sized(New(nil))
	m.handleKey(keyPress("tab"))
	m.handleKey(keyPress("tab")) // note focused

	m.handleKey(keyPress("enter"))
	if m.openPicker() != nil {
		t.Fatalf("expected enter in the note input to open nothing")
	}
}
