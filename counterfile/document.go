package counterfile

import (
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/captionkit/counter"
)

// Counter keys stored in a document.
const (
	KeyMain  = "main"
	KeyCycle = "cycle"
)

// Document is the on-disk representation of one named store.
type Document struct {
	// ID is a stable identity assigned at creation.
	ID string `yaml:"id" json:"id"`

	// CreatedAt and UpdatedAt track document lifecycle.
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`

	// Counters maps counter keys (main, cycle) to their values. Absent
	// keys mean the counter has never been rendered.
	Counters map[string]int `yaml:"counters" json:"counters"`
}

// newDocument creates a fresh document with no counters.
func newDocument(now time.Time) Document {
	return Document{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Counters:  make(map[string]int),
	}
}

// snapshot converts the counters map to a counter.Snapshot, preserving key
// absence.
func (d Document) snapshot() counter.Snapshot {
	var snap counter.Snapshot
	if v, ok := d.Counters[KeyMain]; ok {
		snap = snap.WithMain(v)
	}
	if v, ok := d.Counters[KeyCycle]; ok {
		snap = snap.WithCycle(v)
	}
	return snap
}

// setSnapshot replaces the counters map from a snapshot.
func (d *Document) setSnapshot(snap counter.Snapshot, now time.Time) {
	d.Counters = make(map[string]int)
	if v, ok := snap.Main(); ok {
		d.Counters[KeyMain] = v
	}
	if v, ok := snap.Cycle(); ok {
		d.Counters[KeyCycle] = v
	}
	d.UpdatedAt = now
}
