// Package store persists committed picks so the demo UI can show history
// across runs.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/datepick/pkg/tui/components/calendar"
)

// Pick records one committed selection.
type Pick struct {
	ID         string    `json:"id"`
	Picker     string    `json:"picker"`
	IsRange    bool      `json:"isRange"`
	Start      time.Time `json:"start,omitempty"`
	End        time.Time `json:"end,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Date rebuilds the calendar value the pick captured.
func (p Pick) Date() calendar.Date {
	if p.IsRange {
		return calendar.Range(p.Start, p.End)
	}
	return calendar.Single(p.Start)
}

// FromDate captures a calendar value into a pick for the given picker.
func FromDate(picker string, d calendar.Date, at time.Time) Pick {
	start, _ := d.Start()
	end, _ := d.End()
	return Pick{
		ID:         fmt.Sprintf("%s-%d", picker, at.UnixNano()),
		Picker:     picker,
		IsRange:    d.IsRange(),
		Start:      start,
		End:        end,
		RecordedAt: at,
	}
}

// Persistence defines the persistence contract for pick history.
type Persistence interface {
	Record(p Pick) error
	List(ctx context.Context) []Pick
	Clear(ctx context.Context) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

// keyToPathTransform shards picks into one directory per picker id, keys
// look like "picker/id".
func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	last := len(parts) - 1
	return &diskv.PathKey{
		Path:     parts[:last],
		FileName: parts[last] + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return strings.Join(pk.Path, "/") + "/" + name
}

func (p *persistence) Record(pick Pick) error {
	if pick.ID == "" {
		return fmt.Errorf("pick has no id")
	}
	val, err := json.Marshal(pick)
	if err != nil {
		return err
	}
	return p.d.Write(pick.Picker+"/"+pick.ID, val)
}

func (p *persistence) List(ctx context.Context) []Pick {
	all := make([]Pick, 0)
	for key := range p.d.Keys(ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		pick := Pick{}
		if err := json.Unmarshal(val, &pick); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, pick)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].RecordedAt.Before(all[j].RecordedAt)
	})
	return all
}

func (p *persistence) Clear(ctx context.Context) error {
	for key := range p.d.Keys(ctx.Done()) {
		if err := p.d.Erase(key); err != nil {
			return err
		}
	}
	return nil
}
