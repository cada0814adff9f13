// Package datepicker implements the date-selection field: a summary field
// that opens a floating calendar with optional quick-select presets and a
// clear action, in single-day or day-range mode.
package datepicker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/datepick/pkg/tui/components/calendar"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/focus"
	"tableflip.dev/datepick/pkg/tui/theme"
	"tableflip.dev/datepick/pkg/tui/ui"
)

const (
	clearGlyph = "✕"
	openGlyph  = "▾"
	presetGap  = 2
	// PopoverMargin is the viewport margin the popover keeps when clamped.
	PopoverMargin = 1
)

var _ ui.Component = (*Model)(nil)

// Model is the date picker controller. It owns the committed value, the
// calendar sub-widget, the open/closed popover state and the configuration
// surface. Every date change flows through a single mutation path which
// closes the popover and, for user-driven changes only, notifies change
// observers.
//
// The mutation path is not re-entrancy guarded: OnChange handlers and the
// calendar's selection handlers must not trigger another selection or
// mutation in the same call stack.
type Model struct {
	id     events.ComponentID
	handle *focus.Handle
	popup  *focus.Handle

	date        calendar.Date
	cleanable   bool
	placeholder string
	open        bool
	size        ui.Size
	width       int
	dateFormat  string
	cal         *calendar.Model
	months      int
	presets     []Preset

	presetFocus bool
	presetIndex int

	onChange []func(calendar.Date)
	pending  []tea.Cmd

	th theme.Theme

	layoutWidth  int
	layoutHeight int
}

// New creates a single-day picker.
func New(id events.ComponentID, reg *focus.Registry) *Model {
	return newPicker(id, reg, false)
}

// NewRange creates a day-range picker.
func NewRange(id events.ComponentID, reg *focus.Registry) *Model {
	return newPicker(id, reg, true)
}

// newPicker fixes the mode at construction: the calendar is created
// eagerly, seeded with the empty value, and the forwarding handler is
// registered for the lifetime of the picker.
func newPicker(id events.ComponentID, reg *focus.Registry, isRange bool) *Model {
	date := calendar.EmptySingle()
	placeholder := "Select date"
	if isRange {
		date = calendar.EmptyRange()
		placeholder = "Select date range"
	}

	th := theme.Default()
	cal := calendar.New()
	cal.SetDate(date)
	opts := calendar.DefaultOptions()
	opts.InRangeStyle = lipgloss.NewStyle().
		Background(theme.RangeFill("#5f5faf", "#1c1c2c")).
		Foreground(lipgloss.Color("15"))
	cal.SetStyles(opts)

	handle := reg.Handle()
	m := &Model{
		id:          id,
		handle:      handle,
		popup:       handle.Child(),
		date:        date,
		placeholder: placeholder,
		dateFormat:  calendar.DefaultFormat,
		cal:         cal,
		months:      1,
		th:          th,
	}

	cal.OnSelect(func(d calendar.Date) {
		m.pending = append(m.pending,
			events.CalendarSelectCmd(m.id, d),
			m.updateDate(d, true))
		m.handle.Focus()
	})

	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// FocusHandle exposes the field's focus handle.
func (m *Model) FocusHandle() *focus.Handle { return m.handle }

// Open reports whether the popover is showing.
func (m *Model) Open() bool { return m.open }

// Date returns the committed value.
func (m *Model) Date() calendar.Date { return m.date }

// Calendar exposes the owned calendar sub-widget.
func (m *Model) Calendar() *calendar.Model { return m.cal }

// SetDate assigns the value programmatically. No change notification is
// produced; notifications are reserved for user interaction.
func (m *Model) SetDate(d calendar.Date) {
	m.updateDate(d, false)
}

// SetDisabled forwards the matcher marking days unselectable.
func (m *Model) SetDisabled(disabled calendar.Matcher) {
	m.cal.SetDisabled(disabled)
}

// SetDateFormat sets the strftime pattern for the field summary.
func (m *Model) SetDateFormat(pattern string) {
	m.dateFormat = pattern
}

// SetPlaceholder sets the text shown while no value is set.
func (m *Model) SetPlaceholder(text string) {
	m.placeholder = text
}

// SetCleanable shows a clear action while the field holds a value.
func (m *Model) SetCleanable(cleanable bool) {
	m.cleanable = cleanable
}

// SetWidth fixes the field width; zero sizes the field to its content.
func (m *Model) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	m.width = width
}

// SetNumberOfMonths sets how many months the popover calendar shows.
func (m *Model) SetNumberOfMonths(n int) {
	if n < 1 {
		n = 1
	}
	m.months = n
	m.cal.SetNumberOfMonths(n)
}

// SetPresets installs the quick-select column.
func (m *Model) SetPresets(presets []Preset) {
	m.presets = append([]Preset(nil), presets...)
	m.presetIndex = 0
	m.presetFocus = false
}

// SetControlSize applies the density token to the field and the calendar.
func (m *Model) SetControlSize(size ui.Size) {
	m.size = size
	m.cal.SetControlSize(size)
}

// SetSize records the layout bounds the host granted the widget.
func (m *Model) SetSize(width, height int) {
	m.layoutWidth = width
	m.layoutHeight = height
}

// OnChange registers a change observer for the lifetime of the picker.
// Observers fire for every user-driven change (calendar selection, preset,
// clear) and never for programmatic SetDate.
func (m *Model) OnChange(fn func(calendar.Date)) {
	if fn != nil {
		m.onChange = append(m.onChange, fn)
	}
}

// Init implements tea.Model for embedding convenience.
func (m *Model) Init() tea.Cmd { return nil }

// updateDate is the single mutation path. Order matters: the calendar is
// synchronized before the popover closes, and the popover closes before
// any observer hears about the change.
func (m *Model) updateDate(d calendar.Date, emit bool) tea.Cmd {
	m.date = d
	m.cal.SetDate(d)
	m.open = false
	if !emit {
		return nil
	}
	for _, fn := range m.onChange {
		fn(d)
	}
	return events.DateChangeCmd(m.id, d)
}

// Escape reacts to the cancel action and reports whether it was consumed.
// With the popover closed the cancel belongs to an ancestor scope and the
// picker leaves it untouched.
func (m *Model) Escape() bool {
	if !m.open {
		return false
	}
	m.focusBackIfNeeded()
	m.open = false
	return true
}

// focusBackIfNeeded restores focus to the field when the popover closes,
// but only if focus currently rests inside the field's own subtree. Focus
// sitting on an unrelated widget stays where the user put it.
func (m *Model) focusBackIfNeeded() {
	if !m.open {
		return
	}
	if m.handle.ContainsFocused() {
		m.handle.Focus()
	}
}

// OutsideRelease reacts to a mouse release outside the popover bounds.
func (m *Model) OutsideRelease() {
	m.Escape()
}

// Clean resets the active variant to its fully-empty form. It is a
// user-driven change and notifies observers.
func (m *Model) Clean() tea.Cmd {
	if m.date.IsRange() {
		return m.updateDate(calendar.EmptyRange(), true)
	}
	return m.updateDate(calendar.EmptySingle(), true)
}

// SelectPreset applies a preset value. User-driven: observers fire.
func (m *Model) SelectPreset(p Preset) tea.Cmd {
	return m.updateDate(p.value, true)
}

// toggleCalendar flips the popover. Interaction paths only reach it while
// the popover is closed; closing an open popover goes through Escape or an
// outside release.
func (m *Model) toggleCalendar() {
	m.open = !m.open
	if m.open {
		m.presetFocus = false
		m.presetIndex = 0
		m.popup.Focus()
	}
}

// Update handles Bubble Tea messages for the focused picker.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return cmd
	}
	return nil
}

// HandleKey processes a key press and reports whether it was consumed, so
// hosts can propagate unconsumed keys (notably the cancel action while the
// popover is closed) to enclosing scopes.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if key == "esc" {
		return nil, m.Escape()
	}

	if !m.open {
		switch key {
		case "enter", " ", "space", "down":
			m.toggleCalendar()
			return nil, true
		}
		return nil, false
	}

	if len(m.presets) > 0 && key == "tab" {
		m.presetFocus = !m.presetFocus
		return nil, true
	}
	if m.presetFocus {
		return m.handlePresetKey(key)
	}

	cmd := m.cal.Update(msg)
	return batch(append(m.takePending(), cmd)), true
}

func (m *Model) handlePresetKey(key string) (tea.Cmd, bool) {
	switch key {
	case "up", "k":
		if m.presetIndex > 0 {
			m.presetIndex--
		}
		return nil, true
	case "down", "j":
		if m.presetIndex < len(m.presets)-1 {
			m.presetIndex++
		}
		return nil, true
	case "enter", " ", "space":
		return m.SelectPreset(m.presets[m.presetIndex]), true
	}
	return nil, true
}

// FieldClick reacts to a click at column x inside the field. A click on
// the clear action clears; any other click opens the popover. The handler
// is only bound while the popover is closed.
func (m *Model) FieldClick(x int) tea.Cmd {
	if m.open {
		return nil
	}
	m.handle.Focus()
	if m.cleanable && m.date.IsSet() && m.clearHit(x) {
		return m.Clean()
	}
	m.toggleCalendar()
	return nil
}

// PopoverClick routes a click at popover-local coordinates to the preset
// column or the calendar grid.
func (m *Model) PopoverClick(x, y int) tea.Cmd {
	if !m.open {
		return nil
	}
	frame := m.th.Popover.Frame
	x -= frame.GetBorderLeftSize() + frame.GetPaddingLeft()
	y -= frame.GetBorderTopSize() + frame.GetPaddingTop()
	if x < 0 || y < 0 {
		return nil
	}

	if w := m.presetColumnWidth(); w > 0 {
		if x < w {
			if y >= 0 && y < len(m.presets) {
				m.presetIndex = y
				return m.SelectPreset(m.presets[y])
			}
			return nil
		}
		x -= w + presetGap
		if x < 0 {
			return nil
		}
	}

	m.cal.ClickDay(x, y)
	return batch(m.takePending())
}

// View renders the summary field.
func (m *Model) View() string {
	summary, ok := m.date.Format(m.dateFormat)
	if !ok {
		summary = m.placeholder
	}

	glyph := m.th.Field.Glyph.Render(openGlyph)
	if m.showClear() {
		glyph = m.th.Field.Glyph.Render(clearGlyph)
	}

	frame := m.th.Field.Frame
	if m.handle.ContainsFocused() {
		frame = m.th.Field.FocusedFrame
	}
	frame = frame.Padding(0, m.fieldPad())

	labelWidth := m.innerWidth() - 2
	if labelWidth < 1 {
		labelWidth = 1
	}
	label := summary
	if lipgloss.Width(label) > labelWidth {
		label = truncate.StringWithTail(label, uint(labelWidth), "…")
	}
	style := m.th.Field.Text
	if !ok {
		style = m.th.Field.Placeholder
	}
	body := style.Width(labelWidth).Render(label)
	return frame.Render(body + " " + glyph)
}

// FieldWidth returns the rendered width of the field.
func (m *Model) FieldWidth() int {
	return lipgloss.Width(m.View())
}

// PopoverView renders the floating surface: the preset column, when
// configured, beside the calendar.
func (m *Model) PopoverView() string {
	cal := m.cal.View()
	if len(m.presets) == 0 {
		return m.th.Popover.Frame.Render(cal)
	}

	w := m.presetColumnWidth()
	lines := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		style := m.th.Preset.Label
		if m.presetFocus && i == m.presetIndex {
			style = m.th.Preset.Selected
		}
		lines = append(lines, style.Width(w).Render(p.Label))
	}
	column := strings.Join(lines, "\n")

	gap := strings.Repeat(" ", presetGap)
	content := lipgloss.JoinHorizontal(lipgloss.Top, column, gap, cal)
	return m.th.Popover.Frame.Render(content)
}

func (m *Model) showClear() bool {
	return m.cleanable && m.date.IsSet()
}

// clearHit tests whether column x lands on the trailing clear glyph. The
// glyph sits just inside the right border and padding.
func (m *Model) clearHit(x int) bool {
	w := m.FieldWidth()
	return x >= w-2-m.fieldPad() && x < w
}

func (m *Model) innerWidth() int {
	if m.width > 0 {
		return m.width
	}
	inner := lipgloss.Width(m.bestLabel()) + 2
	if inner < 12 {
		inner = 12
	}
	if m.layoutWidth > 0 {
		frameX := 2 + 2*m.fieldPad()
		if limit := m.layoutWidth - frameX; limit > 0 && inner > limit {
			inner = limit
		}
	}
	return inner
}

func (m *Model) bestLabel() string {
	if s, ok := m.date.Format(m.dateFormat); ok {
		return s
	}
	return m.placeholder
}

func (m *Model) presetColumnWidth() int {
	w := 0
	for _, p := range m.presets {
		if l := lipgloss.Width(p.Label); l > w {
			w = l
		}
	}
	return w
}

func (m *Model) fieldPad() int {
	switch m.size {
	case ui.SizeSmall:
		return 0
	case ui.SizeLarge:
		return 2
	default:
		return 1
	}
}

func (m *Model) takePending() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

func batch(cmds []tea.Cmd) tea.Cmd {
	filtered := cmds[:0]
	for _, c := range cmds {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return tea.Batch(filtered...)
	}
}
