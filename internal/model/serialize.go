package model

// SongLinkPrefix is the route prefix a serialized track's link points at.
const SongLinkPrefix = "/api/library/songs/"

// TrackNumber is the wire shape of a track's position within its album.
type TrackNumber struct {
	No int `json:"no"`
}

// SerializedTrack is the representation of a track sent over the wire.
// Absent lists serialize as null, not as empty arrays.
type SerializedTrack struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Album    []string     `json:"album"`
	Artist   []string     `json:"artist"`
	Art      []string     `json:"art"`
	Length   *float64     `json:"length"`
	Track    *TrackNumber `json:"track"`
	FileType string       `json:"fileType"`
	Meta     string       `json:"meta"`
	Link     string       `json:"link"`
}

// ArtLinker resolves an art ID to a retrievable link.
type ArtLinker func(id ID) (string, bool)

// Serialize projects the track into its wire shape. The transform is pure:
// it reads the track and resolves art links, nothing else.
func (t *Track) Serialize(artLink ArtLinker) SerializedTrack {
	tags := t.Tags
	if tags == nil {
		tags = DefaultTags()
	}

	name := tags.Title
	if name == "" {
		name = t.RelativeName
	}

	var trackNo *TrackNumber
	if tags.TrackNo != nil {
		trackNo = &TrackNumber{No: *tags.TrackNo}
	}

	var art []string
	for _, id := range t.ArtIDs {
		if link, ok := artLink(id); ok {
			art = append(art, link)
		}
	}

	return SerializedTrack{
		ID:       t.ID.String(),
		Name:     name,
		Album:    normalizeList(tags.Album),
		Artist:   normalizeList(tags.Artist),
		Art:      art,
		Length:   tags.Duration,
		Track:    trackNo,
		FileType: t.FileType.String(),
		Meta:     tags.Raw,
		Link:     SongLinkPrefix + t.ID.String(),
	}
}

// normalizeList maps empty lists to nil so they serialize as null.
func normalizeList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
