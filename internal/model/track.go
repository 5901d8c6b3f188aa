package model

// Tags is the metadata extracted from an audio file. A nil Tags means the
// tag reader could not make sense of the file; defaults apply instead.
type Tags struct {
	// Title of the song, empty when not tagged
	Title string

	// Album names, usually zero or one
	Album []string

	// Artist names
	Artist []string

	// TrackNo is the position within the album, nil when not tagged
	TrackNo *int

	// Duration in seconds, nil when it could not be determined
	Duration *float64

	// Raw is a printable dump of every tag found, for passthrough display
	Raw string
}

// DefaultTags is what a track carries when its tags are unreadable.
func DefaultTags() *Tags {
	return &Tags{}
}

// Track represents one discovered audio file. A Track is immutable once
// the scanner has finished constructing it.
type Track struct {
	ID ID

	// SourceDir is the directory the file was discovered under
	SourceDir string

	// RelativeName is the file name within SourceDir
	RelativeName string

	// AbsolutePath is derived once at construction and never recomputed
	AbsolutePath string

	FileType FileType

	// OK reports whether metadata extraction succeeded. Tracks with
	// OK == false never enter the library.
	OK bool

	Tags *Tags

	// ArtIDs reference deduplicated entries in the art store
	ArtIDs []ID
}
