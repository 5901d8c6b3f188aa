// Package query filters and sorts the serialized track list according to
// the songs endpoint's query parameters.
package query

import (
	"strings"

	"github.com/megawave/megawave/internal/model"
)

// Params are the three independent operators of a songs query. Each one is
// optional; they compose as filter, then subkey filter, then sort.
type Params struct {
	Filter       string
	SubkeyFilter string
	Sort         string
}

// Apply narrows and orders songs per the query parameters. The input slice
// is not modified.
func Apply(songs []model.SerializedTrack, p Params) []model.SerializedTrack {
	out := make([]model.SerializedTrack, len(songs))
	copy(out, songs)

	if p.Filter != "" {
		out = applyFilter(out, p.Filter)
	}
	if p.SubkeyFilter != "" {
		out = applySubkeyFilter(out, p.SubkeyFilter)
	}
	sortSongs(out, p)
	return out
}

// matchField is which field a general filter matched on, tested in the
// fixed priority name, artist, album.
type matchField int

const (
	matchNone matchField = iota
	matchName
	matchArtist
	matchAlbum
)

func matchesFilter(song *model.SerializedTrack, term string) matchField {
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(song.Name), term) {
		return matchName
	}
	for _, artist := range song.Artist {
		if strings.Contains(strings.ToLower(artist), term) {
			return matchArtist
		}
	}
	for _, album := range song.Album {
		if strings.Contains(strings.ToLower(album), term) {
			return matchAlbum
		}
	}
	return matchNone
}

// applyFilter regroups matching songs into buckets by match field. The
// output order is artist matches, then name matches, then album matches;
// every song lands in at most one bucket.
func applyFilter(songs []model.SerializedTrack, term string) []model.SerializedTrack {
	var byArtist, byName, byAlbum []model.SerializedTrack

	for i := range songs {
		switch matchesFilter(&songs[i], term) {
		case matchArtist:
			byArtist = append(byArtist, songs[i])
		case matchName:
			byName = append(byName, songs[i])
		case matchAlbum:
			byAlbum = append(byAlbum, songs[i])
		}
	}

	out := make([]model.SerializedTrack, 0, len(byArtist)+len(byName)+len(byAlbum))
	out = append(out, byArtist...)
	out = append(out, byName...)
	return append(out, byAlbum...)
}

// splitSubkeyFilter parses a "field-value" term. The value may itself
// contain dashes. A term without a dash is malformed and reported as
// not-ok; the caller then leaves the list untouched.
func splitSubkeyFilter(term string) (field, value string, ok bool) {
	field, value, ok = strings.Cut(term, "-")
	return
}

func applySubkeyFilter(songs []model.SerializedTrack, term string) []model.SerializedTrack {
	field, value, ok := splitSubkeyFilter(term)
	if !ok {
		return songs
	}

	out := songs[:0]
	for i := range songs {
		if fieldEquals(&songs[i], field, value) {
			out = append(out, songs[i])
		}
	}
	return out
}

// fieldEquals is an exact, case-insensitive match against one named field.
// List fields match when any element equals the value.
func fieldEquals(song *model.SerializedTrack, field, value string) bool {
	switch field {
	case "artist":
		return listEquals(song.Artist, value)
	case "album":
		return listEquals(song.Album, value)
	case "name":
		return strings.EqualFold(song.Name, value)
	case "fileType":
		return strings.EqualFold(song.FileType, value)
	case "id":
		return song.ID == value
	}
	return false
}

func listEquals(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
