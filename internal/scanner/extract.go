package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"

	"github.com/megawave/megawave/internal/model"
)

// TagExtractor reads track metadata with the dhowden/tag parser and pushes
// any embedded artwork into the art store.
type TagExtractor struct {
	Art ArtStore
}

// Extract builds a Track for the file at dir/name. The file must be
// openable; unreadable tags are not an error, the track then carries
// default metadata.
func (e *TagExtractor) Extract(dir, name string, fileType model.FileType) (*model.Track, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", dir, err)
	}

	track := &model.Track{
		ID:           model.NewID(),
		SourceDir:    dir,
		RelativeName: name,
		AbsolutePath: filepath.Join(absDir, name),
		FileType:     fileType,
	}

	f, err := os.Open(track.AbsolutePath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", track.AbsolutePath, err)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		track.Tags = model.DefaultTags()
	} else {
		track.Tags = buildTags(meta)
		if pic := meta.Picture(); pic != nil && len(pic.Data) > 0 {
			track.ArtIDs = append(track.ArtIDs, e.Art.Intern(pic.Data, pic.MIMEType))
		}
	}

	if length, ok := probeDuration(track.AbsolutePath, fileType); ok {
		track.Tags.Duration = &length
	}

	track.OK = true
	return track, nil
}

func buildTags(meta tag.Metadata) *model.Tags {
	tags := &model.Tags{
		Title:  meta.Title(),
		Album:  wrapValue(meta.Album()),
		Artist: wrapValue(meta.Artist()),
		Raw:    dumpRaw(meta.Raw()),
	}

	if no, _ := meta.Track(); no > 0 {
		tags.TrackNo = &no
	}
	return tags
}

func wrapValue(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// dumpRaw renders the full tag map as sorted key=value lines. Binary
// payloads (artwork frames) are elided.
func dumpRaw(raw map[string]interface{}) string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch raw[k].(type) {
		case *tag.Picture, []byte:
			continue
		}
		fmt.Fprintf(&b, "%s=%v\n", k, raw[k])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
