package scanner

import (
	"github.com/megawave/megawave/internal/model"
)

// Extractor turns a discovered file into a Track. A returned error means
// this one file is skipped; it never aborts the load.
type Extractor interface {
	Extract(dir, name string, fileType model.FileType) (*model.Track, error)
}

// ArtStore interns embedded images found during extraction.
type ArtStore interface {
	Intern(raw []byte, mime string) model.ID
}
