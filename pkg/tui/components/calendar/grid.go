package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Grid geometry. Each day cell is two characters wide with a one-column
// gap, seven columns per week.
const (
	cellWidth = 2
	cellGap   = 1
	gridWidth = 7*cellWidth + 6*cellGap
)

// Options controls month grid styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	OutsideStyle  lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	InRangeStyle  lipgloss.Style
	DisabledStyle lipgloss.Style
	CursorStyle   lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for month grid rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OutsideStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		InRangeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(lipgloss.Color("15")),
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		CursorStyle:   lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// MonthView carries the per-render state the grid needs to mark cells.
type MonthView struct {
	// Date is the committed picker value.
	Date Date
	// Pending is the accumulated range start before the gesture completes.
	Pending time.Time
	// Cursor is the keyboard cursor day.
	Cursor time.Time
	// Now marks today.
	Now time.Time
	// Disabled marks unselectable days.
	Disabled Matcher
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// WeeksIn returns the number of week rows the month grid occupies.
func WeeksIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return (int(first.Weekday()) + DaysIn(month) + 6) / 7
}

// RenderMonth produces the lines for one month: a centered title, the
// weekday header, then week rows.
func RenderMonth(month time.Time, view MonthView, opts Options) []string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := DaysIn(first)
	startOffset := int(first.Weekday())

	title := first.Format("January 2006")
	lines := []string{
		opts.TitleStyle.Width(gridWidth).Align(lipgloss.Center).Render(title),
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	gap := strings.Repeat(" ", cellGap)
	rows := (startOffset + daysInMonth + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.OutsideStyle.Render(strings.Repeat(" ", cellWidth)))
				continue
			}
			cells = append(cells, renderDay(first.AddDate(0, 0, day-1), day, view, opts))
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	return lines
}

func renderDay(date time.Time, day int, view MonthView, opts Options) string {
	text := fmt.Sprintf("%*d", cellWidth, day)

	style := opts.DayStyle
	switch {
	case view.Disabled != nil && view.Disabled(date):
		style = opts.DisabledStyle
	case isEdge(view, date):
		style = opts.SelectedStyle
	case view.Date.IsRange() && view.Date.Contains(date):
		style = opts.InRangeStyle
	}
	if !view.Now.IsZero() && Day(view.Now).Equal(date) {
		style = style.Inherit(opts.TodayStyle)
	}
	if !view.Cursor.IsZero() && Day(view.Cursor).Equal(date) {
		style = style.Inherit(opts.CursorStyle)
	}
	return style.Render(text)
}

// isEdge marks the committed single day, either range end, or the pending
// range start.
func isEdge(view MonthView, date time.Time) bool {
	if !view.Pending.IsZero() && view.Pending.Equal(date) {
		return true
	}
	if s, ok := view.Date.Start(); ok && s.Equal(date) {
		return true
	}
	if e, ok := view.Date.End(); ok && e.Equal(date) {
		return true
	}
	return false
}

// DayAt maps grid-local coordinates to a day of the month. The y axis
// counts lines as rendered by RenderMonth (title first, then the header
// when shown).
func DayAt(month time.Time, x, y int, opts Options) (time.Time, bool) {
	headerLines := 1
	if opts.ShowHeader {
		headerLines = 2
	}
	row := y - headerLines
	if row < 0 || x < 0 || x >= gridWidth {
		return time.Time{}, false
	}
	col := x / (cellWidth + cellGap)
	if col > 6 {
		return time.Time{}, false
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	day := row*7 + col - int(first.Weekday()) + 1
	if day < 1 || day > DaysIn(first) {
		return time.Time{}, false
	}
	return first.AddDate(0, 0, day-1), true
}
