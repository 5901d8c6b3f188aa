// Package library holds the in-memory index of discovered tracks together
// with its load-status state machine.
package library

import (
	"errors"
	"fmt"
	"sync"

	"github.com/megawave/megawave/internal/model"
)

var ErrNotFound = errors.New("track not found")

// Status is the observable state of the library's load cycle.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// Index is the shared track collection. The scanner is its sole writer;
// request handlers only read. Queries issued while a load is in flight may
// observe a partially rebuilt index.
type Index struct {
	mu     sync.RWMutex
	status Status
	order  []model.ID
	byID   map[model.ID]*model.Track
}

func NewIndex() *Index {
	idx := &Index{}
	idx.reset()
	return idx
}

func (idx *Index) reset() {
	idx.status = StatusIdle
	idx.order = nil
	idx.byID = make(map[model.ID]*model.Track)
}

// Reset clears tracks and returns the index to idle. Art entries are kept
// elsewhere and survive resets.
func (idx *Index) Reset() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.reset()
}

// Status returns the current load status.
func (idx *Index) Status() Status {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.status
}

// SetStatus transitions the load state machine.
func (idx *Index) SetStatus(s Status) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.status = s
}

// Append admits a track into the index. Tracks that failed extraction are
// never admitted; insertion order defines the default enumeration order.
func (idx *Index) Append(t *model.Track) error {
	if !t.OK {
		return fmt.Errorf("append %q: track failed extraction", t.ID)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.byID[t.ID]; exists {
		return fmt.Errorf("append %q: duplicate id", t.ID)
	}
	idx.order = append(idx.order, t.ID)
	idx.byID[t.ID] = t
	return nil
}

// Get returns the track with the given ID, or ErrNotFound.
func (idx *Index) Get(id model.ID) (*model.Track, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	t, ok := idx.byID[id]
	if !ok {
		return nil, fmt.Errorf("track %q: %w", id, ErrNotFound)
	}
	return t, nil
}

// Len reports how many tracks the index holds.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.order)
}

// Serialize projects every track into its wire shape, in insertion order.
func (idx *Index) Serialize(artLink model.ArtLinker) []model.SerializedTrack {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]model.SerializedTrack, 0, len(idx.order))
	for _, id := range idx.order {
		if t, ok := idx.byID[id]; ok {
			out = append(out, t.Serialize(artLink))
		}
	}
	return out
}
