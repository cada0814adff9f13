// Package calendar renders an interactive month grid and the Date value
// type shared with the date picker.
package calendar

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/tui/ui"
)

const monthGap = 2

var _ ui.Component = (*Model)(nil)

// Model is the month-grid widget. It owns cursor navigation, month paging
// and the selection gesture; a completed gesture is delivered synchronously
// to every handler registered with OnSelect.
type Model struct {
	date    Date
	pending time.Time
	month   time.Time
	cursor  time.Time
	now     time.Time

	disabled Matcher
	months   int
	size     ui.Size
	opts     Options

	onSelect []func(Date)

	width  int
	height int
}

// New constructs a calendar anchored on the current month.
func New() *Model {
	now := Day(time.Now())
	return &Model{
		month:  firstOfMonth(now),
		cursor: now,
		now:    now,
		months: 1,
		opts:   DefaultOptions(),
	}
}

// Init implements tea.Model for embedding convenience.
func (m *Model) Init() tea.Cmd { return nil }

// OnSelect registers a selection handler for the lifetime of the calendar.
// Handlers run inline while the gesture is processed and must not re-enter
// Select or SetDate.
func (m *Model) OnSelect(fn func(Date)) {
	if fn != nil {
		m.onSelect = append(m.onSelect, fn)
	}
}

// Date returns the committed value.
func (m *Model) Date() Date { return m.date }

// SetDate replaces the committed value, drops any half-finished range
// gesture and scrolls the displayed window to the value when set.
func (m *Model) SetDate(d Date) {
	m.date = d
	m.pending = time.Time{}
	if day, ok := d.Start(); ok {
		m.month = firstOfMonth(day)
		m.cursor = day
	} else if day, ok := d.End(); ok {
		m.month = firstOfMonth(day)
		m.cursor = day
	}
}

// SetDisabled installs the matcher marking days unselectable.
func (m *Model) SetDisabled(disabled Matcher) {
	m.disabled = disabled
}

// SetNumberOfMonths sets how many consecutive months are displayed.
func (m *Model) SetNumberOfMonths(n int) {
	if n < 1 {
		n = 1
	}
	m.months = n
}

// SetControlSize applies the density token.
func (m *Model) SetControlSize(size ui.Size) {
	m.size = size
}

// SetNow overrides the reference day used to mark today.
func (m *Model) SetNow(now time.Time) {
	m.now = Day(now)
}

// SetStyles replaces the grid styling.
func (m *Model) SetStyles(opts Options) {
	m.opts = opts
}

// SetSize records the layout bounds.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the keyboard cursor day.
func (m *Model) Cursor() time.Time { return m.cursor }

// Month returns the first displayed month.
func (m *Model) Month() time.Time { return m.month }

// Update handles cursor movement, month paging and gesture completion.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "pgup", "[":
		m.pageMonths(-1)
	case "pgdown", "]":
		m.pageMonths(1)
	case "t":
		m.cursor = m.now
		m.ensureVisible(m.cursor)
	case "enter", " ", "space":
		m.Select(m.cursor)
	}
	return nil
}

// Select completes a selection gesture on day. In single mode every pick
// emits. In range mode the first pick pins the start and the second emits
// the pair exactly as picked, first then second, with no reordering.
// Disabled days are ignored.
func (m *Model) Select(day time.Time) {
	day = Day(day)
	if day.IsZero() {
		return
	}
	if m.disabled != nil && m.disabled(day) {
		return
	}
	m.cursor = day
	m.ensureVisible(day)

	if !m.date.IsRange() {
		m.emit(Single(day))
		return
	}
	if m.pending.IsZero() {
		m.pending = day
		return
	}
	start := m.pending
	m.pending = time.Time{}
	m.emit(Range(start, day))
}

func (m *Model) emit(d Date) {
	m.date = d
	for _, fn := range m.onSelect {
		fn(d)
	}
}

// ClickDay maps widget-local coordinates to a day and completes the
// gesture on a hit.
func (m *Model) ClickDay(x, y int) bool {
	day, ok := m.DayAt(x, y)
	if !ok {
		return false
	}
	m.Select(day)
	return true
}

// DayAt resolves widget-local coordinates to a displayed day.
func (m *Model) DayAt(x, y int) (time.Time, bool) {
	pad := m.hpad()
	block := gridWidth + 2*pad
	for i := 0; i < m.months; i++ {
		left := i * (block + monthGap)
		if x < left+pad || x >= left+pad+gridWidth {
			continue
		}
		return DayAt(m.month.AddDate(0, i, 0), x-left-pad, y, m.opts)
	}
	return time.Time{}, false
}

// View renders the configured window of months side by side.
func (m *Model) View() string {
	pad := m.hpad()
	style := lipgloss.NewStyle().Padding(0, pad)

	blocks := make([]string, 0, m.months)
	for i := 0; i < m.months; i++ {
		month := m.month.AddDate(0, i, 0)
		lines := RenderMonth(month, MonthView{
			Date:     m.date,
			Pending:  m.pending,
			Cursor:   m.cursor,
			Now:      m.now,
			Disabled: m.disabled,
		}, m.opts)
		blocks = append(blocks, style.Render(strings.Join(lines, "\n")))
	}
	if len(blocks) == 1 {
		return blocks[0]
	}
	gap := strings.Repeat(" ", monthGap)
	joined := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			joined = append(joined, gap)
		}
		joined = append(joined, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

// Width returns the rendered width of the month window.
func (m *Model) Width() int {
	block := gridWidth + 2*m.hpad()
	return m.months*block + (m.months-1)*monthGap
}

// Height returns the rendered height of the month window.
func (m *Model) Height() int {
	weeks := 0
	for i := 0; i < m.months; i++ {
		if w := WeeksIn(m.month.AddDate(0, i, 0)); w > weeks {
			weeks = w
		}
	}
	header := 1
	if m.opts.ShowHeader {
		header = 2
	}
	return header + weeks
}

func (m *Model) hpad() int {
	switch m.size {
	case ui.SizeSmall:
		return 0
	case ui.SizeLarge:
		return 2
	default:
		return 1
	}
}

func (m *Model) moveCursor(days int) {
	if m.cursor.IsZero() {
		m.cursor = m.now
	}
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.ensureVisible(m.cursor)
}

func (m *Model) pageMonths(delta int) {
	m.month = m.month.AddDate(0, delta, 0)
	// Keep the cursor inside the displayed window.
	if firstOfMonth(m.cursor).Before(m.month) {
		m.cursor = m.month
	}
	last := m.month.AddDate(0, m.months, -1)
	if m.cursor.After(last) {
		m.cursor = last
	}
}

func (m *Model) ensureVisible(day time.Time) {
	first := firstOfMonth(day)
	if first.Before(m.month) {
		m.month = first
		return
	}
	lastVisible := m.month.AddDate(0, m.months, -1)
	if day.After(lastVisible) {
		m.month = first.AddDate(0, -(m.months - 1), 0)
	}
}

func firstOfMonth(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
