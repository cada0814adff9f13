package calendar

import (
	"testing"
	"time"
)

func TestSingleSelectEmitsOnce(t *testing.T) {
	m := New()
	m.SetDate(EmptySingle())
	m.SetNow(day(2024, time.March, 1))

	var got []Date
	m.OnSelect(func(d Date) { got = append(got, d) })

	m.Select(day(2024, time.March, 5))

	if len(got) != 1 {
		t.Fatalf("expected one selection, got %d", len(got))
	}
	if s, ok := got[0].Start(); !ok || !s.Equal(day(2024, time.March, 5)) {
		t.Fatalf("expected selection of 2024-03-05, got %v", got[0])
	}
	if !m.Date().IsSet() {
		t.Fatalf("expected calendar to hold the committed value")
	}
}

func TestRangeAccumulation(t *testing.T) {
	m := New()
	m.SetDate(EmptyRange())

	var got []Date
	m.OnSelect(func(d Date) { got = append(got, d) })

	m.Select(day(2024, time.January, 10))
	if len(got) != 0 {
		t.Fatalf("expected no emission after the first pick, got %d", len(got))
	}

	m.Select(day(2024, time.January, 3))
	if len(got) != 1 {
		t.Fatalf("expected emission after the second pick, got %d", len(got))
	}

	// Picks are kept in gesture order, even when inverted.
	start, _ := got[0].Start()
	end, _ := got[0].End()
	if !start.Equal(day(2024, time.January, 10)) || !end.Equal(day(2024, time.January, 3)) {
		t.Fatalf("expected range 01/10 - 01/03 as picked, got %v", got[0])
	}
}

func TestSetDateDropsPendingGesture(t *testing.T) {
	m := New()
	m.SetDate(EmptyRange())

	var emitted int
	m.OnSelect(func(Date) { emitted++ })

	m.Select(day(2024, time.February, 1))
	m.SetDate(EmptyRange())
	m.Select(day(2024, time.February, 10))

	if emitted != 0 {
		t.Fatalf("expected SetDate to reset the gesture, got %d emissions", emitted)
	}
}

func TestDisabledDaysIgnored(t *testing.T) {
	m := New()
	m.SetDate(EmptySingle())
	m.SetDisabled(MatchWeekdays(time.Sunday))

	var emitted int
	m.OnSelect(func(Date) { emitted++ })

	m.Select(day(2024, time.June, 16)) // a Sunday
	if emitted != 0 {
		t.Fatalf("expected disabled day to be ignored")
	}

	m.Select(day(2024, time.June, 17))
	if emitted != 1 {
		t.Fatalf("expected enabled day to emit, got %d", emitted)
	}
}

func TestCursorMovementScrollsWindow(t *testing.T) {
	m := New()
	m.SetDate(Single(day(2024, time.March, 31)))

	m.moveCursor(1) // into April
	if !m.Cursor().Equal(day(2024, time.April, 1)) {
		t.Fatalf("expected cursor on 2024-04-01, got %v", m.Cursor())
	}
	if m.Month().Month() != time.April {
		t.Fatalf("expected window to scroll to April, got %v", m.Month())
	}

	m.moveCursor(-1) // back into March
	if m.Month().Month() != time.March {
		t.Fatalf("expected window to scroll back to March, got %v", m.Month())
	}
}

func TestDayAtResolvesCells(t *testing.T) {
	m := New()
	m.SetDate(Single(day(2024, time.March, 5)))

	// Medium density pads the grid by one column.
	// March 2024 starts on a Friday: day 1 sits in column 5 of week row 0.
	// Rows: title, header, then weeks. Column 5 starts at x = 5*3 = 15.
	got, ok := m.DayAt(1+15, 2)
	if !ok {
		t.Fatalf("expected a day at the first cell of March")
	}
	if !got.Equal(day(2024, time.March, 1)) {
		t.Fatalf("expected 2024-03-01, got %v", got)
	}

	if _, ok := m.DayAt(0, 0); ok {
		t.Fatalf("expected the title row to miss")
	}
}

func TestViewDimensions(t *testing.T) {
	m := New()
	m.SetDate(Single(day(2024, time.March, 5)))
	m.SetNumberOfMonths(2)

	if w := m.Width(); w != 2*(gridWidth+2)+monthGap {
		t.Fatalf("unexpected width %d", w)
	}
	if h := m.Height(); h < 2+4 {
		t.Fatalf("unexpected height %d", h)
	}
}
