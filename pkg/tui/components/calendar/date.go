package calendar

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultFormat is the strftime pattern pickers fall back to.
const DefaultFormat = "%Y/%m/%d"

// Date is the value a picker carries: a single day or a day range. Either
// side may be unset; the zero time.Time means "no value". Days are stored
// truncated to midnight UTC, there is no time-of-day component.
//
// Range ordering is not validated. An inverted range (end before start) is
// stored and rendered exactly as provided.
type Date struct {
	isRange bool
	start   time.Time
	end     time.Time
}

// Single returns a single-day value.
func Single(day time.Time) Date {
	return Date{start: Day(day)}
}

// EmptySingle returns an unset single-day value.
func EmptySingle() Date {
	return Date{}
}

// Range returns a day-range value. Both ends are kept as given.
func Range(start, end time.Time) Date {
	return Date{isRange: true, start: Day(start), end: Day(end)}
}

// EmptyRange returns a range value with both ends unset.
func EmptyRange() Date {
	return Date{isRange: true}
}

// Day truncates t to midnight UTC. The zero time stays zero.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsRange reports whether the value is in range mode.
func (d Date) IsRange() bool { return d.isRange }

// IsSet reports whether any inner day is present.
func (d Date) IsSet() bool {
	return !d.start.IsZero() || !d.end.IsZero()
}

// Start returns the single day or range start, with presence.
func (d Date) Start() (time.Time, bool) {
	return d.start, !d.start.IsZero()
}

// End returns the range end, with presence. Always absent in single mode.
func (d Date) End() (time.Time, bool) {
	if !d.isRange {
		return time.Time{}, false
	}
	return d.end, !d.end.IsZero()
}

// Format renders the value with a strftime pattern. The boolean is false
// when there is nothing to show and the caller should fall back to a
// placeholder.
//
// Range values render as "start - end" when both ends are present, and as
// just the present end otherwise.
func (d Date) Format(pattern string) (string, bool) {
	if !d.isRange {
		if d.start.IsZero() {
			return "", false
		}
		return strftime.Format(pattern, d.start), true
	}
	switch {
	case d.start.IsZero() && d.end.IsZero():
		return "", false
	case d.end.IsZero():
		return strftime.Format(pattern, d.start), true
	case d.start.IsZero():
		return strftime.Format(pattern, d.end), true
	default:
		return strftime.Format(pattern, d.start) + " - " + strftime.Format(pattern, d.end), true
	}
}

// String renders the value with the default pattern, for logs.
func (d Date) String() string {
	s, ok := d.Format(DefaultFormat)
	if !ok {
		if d.isRange {
			return "range:unset"
		}
		return "unset"
	}
	return s
}

// Contains reports whether day falls inside the value: equal to the single
// day, or within the closed range span. Partial ranges only match their
// present end. An inverted range contains nothing between its ends.
func (d Date) Contains(day time.Time) bool {
	day = Day(day)
	if !d.isRange {
		return !d.start.IsZero() && d.start.Equal(day)
	}
	switch {
	case d.start.IsZero() && d.end.IsZero():
		return false
	case d.end.IsZero():
		return d.start.Equal(day)
	case d.start.IsZero():
		return d.end.Equal(day)
	default:
		return !day.Before(d.start) && !day.After(d.end)
	}
}

// Matcher reports whether a day is disabled for selection.
type Matcher func(day time.Time) bool

// MatchBefore disables every day before cutoff.
func MatchBefore(cutoff time.Time) Matcher {
	cutoff = Day(cutoff)
	return func(day time.Time) bool {
		return Day(day).Before(cutoff)
	}
}

// MatchAfter disables every day after cutoff.
func MatchAfter(cutoff time.Time) Matcher {
	cutoff = Day(cutoff)
	return func(day time.Time) bool {
		return Day(day).After(cutoff)
	}
}

// MatchWeekdays disables the given weekdays.
func MatchWeekdays(days ...time.Weekday) Matcher {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return func(day time.Time) bool {
		return set[day.Weekday()]
	}
}

// MatchDays disables an explicit list of days.
func MatchDays(days ...time.Time) Matcher {
	set := make(map[time.Time]bool, len(days))
	for _, d := range days {
		set[Day(d)] = true
	}
	return func(day time.Time) bool {
		return set[Day(day)]
	}
}

// MatchAny disables a day when any matcher does.
func MatchAny(matchers ...Matcher) Matcher {
	return func(day time.Time) bool {
		for _, m := range matchers {
			if m != nil && m(day) {
				return true
			}
		}
		return false
	}
}
