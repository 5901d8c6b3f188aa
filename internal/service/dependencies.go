package service

import (
	"github.com/megawave/megawave/internal/art"
	"github.com/megawave/megawave/internal/library"
	"github.com/megawave/megawave/internal/model"
)

// Library is the read side of the track index.
type Library interface {
	Status() library.Status
	Get(id model.ID) (*model.Track, error)
	Serialize(artLink model.ArtLinker) []model.SerializedTrack
}

// ArtStore resolves interned album art.
type ArtStore interface {
	Fetch(id model.ID) (*art.Entry, error)
	Link(id model.ID) (string, bool)
}
