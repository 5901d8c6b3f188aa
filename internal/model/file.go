package model

import (
	"path/filepath"
	"strings"
)

// FileType is a recognized audio container type, determined from the file
// extension at discovery time.
type FileType string

const (
	FileTypeMP3 FileType = "mp3"
	FileTypeWAV FileType = "wav"
)

var mediaTypes = map[FileType]string{
	FileTypeMP3: "audio/mpeg",
	FileTypeWAV: "audio/wav",
}

// FileTypeFromPath reports whether fileName has a recognized audio
// extension and which container type it maps to. Unrecognized extensions
// never become tracks.
func FileTypeFromPath(fileName string) (FileType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch t := FileType(ext); t {
	case FileTypeMP3, FileTypeWAV:
		return t, true
	}
	return "", false
}

// MediaType returns the HTTP content type for the container, or an empty
// string for unknown types.
func (t FileType) MediaType() string {
	return mediaTypes[t]
}

func (t FileType) String() string {
	return string(t)
}
