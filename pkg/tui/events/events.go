// Package events defines the typed messages widgets exchange through the
// Bubble Tea runtime.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/tui/components/calendar"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// DateChangeMsg announces that a picker committed a new value through a
// user interaction. Programmatic assignment never produces one.
type DateChangeMsg struct {
	Component ComponentID
	Date      calendar.Date
}

// Describe renders the change in a human-friendly format for logs.
func (m DateChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, m.Date)
}

// DateChangeCmd wraps DateChangeMsg into a tea.Cmd for callers that want to
// emit the event as part of an Update result.
func DateChangeCmd(component ComponentID, date calendar.Date) tea.Cmd {
	return func() tea.Msg {
		return DateChangeMsg{Component: component, Date: date}
	}
}

// CalendarSelectMsg fires when a calendar completes a selection gesture.
type CalendarSelectMsg struct {
	Component ComponentID
	Date      calendar.Date
}

// Describe renders the selection for logs.
func (m CalendarSelectMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, m.Date)
}

// CalendarSelectCmd wraps CalendarSelectMsg in a tea.Cmd.
func CalendarSelectCmd(component ComponentID, date calendar.Date) tea.Cmd {
	return func() tea.Msg {
		return CalendarSelectMsg{Component: component, Date: date}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}
