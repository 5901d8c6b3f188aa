// Package art deduplicates embedded album images by content identity and
// issues stable opaque IDs for them.
package art

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/megawave/megawave/internal/model"
)

// LinkPrefix is the route prefix an art entry's link points at.
const LinkPrefix = "/api/library/art/"

var ErrNotFound = errors.New("art entry not found")

// Entry is one deduplicated image blob. Entries are immutable and live for
// the whole process; reloading the library does not clear them.
type Entry struct {
	// Bytes is the raw image content
	Bytes []byte

	// Mime is the image content type as declared by the tag frame
	Mime string

	// Data is a base64 data URI of the content
	Data string

	// Link is the path the entry can be fetched at
	Link string
}

// Store interns image blobs. Identical byte content always yields the same
// ID; dedup is keyed by a SHA-256 of the content so the key cost stays
// bounded no matter how large the images are.
type Store struct {
	mu     sync.RWMutex
	byID   map[model.ID]*Entry
	byHash map[[sha256.Size]byte]model.ID
}

func NewStore() *Store {
	return &Store{
		byID:   make(map[model.ID]*Entry),
		byHash: make(map[[sha256.Size]byte]model.ID),
	}
}

// Intern stores raw image content and returns its ID. First-seen content
// creates a new entry; content seen before returns the existing ID.
func (s *Store) Intern(raw []byte, mime string) model.ID {
	key := sha256.Sum256(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byHash[key]; ok {
		return id
	}

	id := model.NewID()
	s.byHash[key] = id
	s.byID[id] = &Entry{
		Bytes: raw,
		Mime:  mime,
		Data:  fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw)),
		Link:  LinkPrefix + id.String(),
	}
	return id
}

// Fetch returns the entry for id, or ErrNotFound.
func (s *Store) Fetch(id model.ID) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("fetch %q: %w", id, ErrNotFound)
	}
	return entry, nil
}

// Link resolves an art ID to its link.
func (s *Store) Link(id model.ID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return entry.Link, true
}

// Len reports how many distinct images are interned.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
