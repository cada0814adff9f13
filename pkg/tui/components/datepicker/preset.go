package datepicker

import (
	"time"

	"tableflip.dev/datepick/pkg/tui/components/calendar"
)

// Preset is a quick-select entry shown beside the calendar. Presets are
// immutable: built once by the host and owned by the picker for its
// lifetime.
type Preset struct {
	Label string
	value calendar.Date
}

// PresetSingle creates a preset carrying a single day.
func PresetSingle(label string, day time.Time) Preset {
	return Preset{Label: label, value: calendar.Single(day)}
}

// PresetRange creates a preset carrying a day range.
func PresetRange(label string, start, end time.Time) Preset {
	return Preset{Label: label, value: calendar.Range(start, end)}
}

// Value returns the date the preset applies.
func (p Preset) Value() calendar.Date {
	return p.value
}

// LastDays returns a range preset covering the n days ending today.
func LastDays(label string, n int, now time.Time) Preset {
	end := calendar.Day(now)
	return PresetRange(label, end.AddDate(0, 0, -(n-1)), end)
}
