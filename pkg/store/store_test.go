package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/tui/components/calendar"
)

type tempConfig struct {
	path string
}

func (c *tempConfig) BasePath() string { return c.path }

func TestRecordListRoundTrip(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	single := FromDate("meeting", calendar.Single(at), at)
	rng := FromDate("report", calendar.Range(at.AddDate(0, 0, -6), at), at.Add(time.Second))

	if err := p.Record(single); err != nil {
		t.Fatalf("record single: %v", err)
	}
	if err := p.Record(rng); err != nil {
		t.Fatalf("record range: %v", err)
	}

	got := p.List(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(got))
	}
	if got[0].Picker != "meeting" || got[1].Picker != "report" {
		t.Fatalf("expected picks ordered by record time, got %v then %v", got[0].Picker, got[1].Picker)
	}

	d := got[1].Date()
	if !d.IsRange() {
		t.Fatalf("expected range pick to round-trip as range")
	}
	s, _ := d.Start()
	if !s.Equal(calendar.Day(at.AddDate(0, 0, -6))) {
		t.Fatalf("unexpected range start %v", s)
	}
}

func TestClear(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	at := time.Now()
	if err := p.Record(FromDate("meeting", calendar.Single(at), at)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := p.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := p.List(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty history after clear, got %d", len(got))
	}
}
