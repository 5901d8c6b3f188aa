package query

import (
	"math"
	"sort"
	"strings"

	"github.com/megawave/megawave/internal/model"
)

// sentinel sorts after every real value, so tracks missing the sort field
// land at the end of an ascending sort.
const sentinel = "zzzzz"

// sortValue computes the primary sort key for one field. Unknown fields
// yield an empty key for every song, which leaves the order untouched.
func sortValue(song *model.SerializedTrack, field string) string {
	switch field {
	case "artist":
		if len(song.Artist) == 0 {
			return sentinel
		}
		return strings.ToLower(strings.Join(song.Artist, ", "))
	case "album":
		if len(song.Album) == 0 {
			return sentinel
		}
		return strings.ToLower(song.Album[0])
	case "name":
		if song.Name == "" {
			return sentinel
		}
		return strings.ToLower(song.Name)
	}
	return ""
}

// trackNumberKey is the secondary key used for album ordering; tracks
// without a number sort last in ascending order.
func trackNumberKey(song *model.SerializedTrack) float64 {
	if song.Track == nil {
		return math.Inf(1)
	}
	return float64(song.Track.No)
}

func sortSongs(songs []model.SerializedTrack, p Params) {
	if p.Sort == "" {
		defaultSort(songs)
		return
	}

	reverse := strings.HasPrefix(p.Sort, "-")
	field := strings.ReplaceAll(p.Sort, "-", "")

	// When a subkey filter pins a single album and the sort is album
	// descending, the secondary key is negated: within that one album
	// the tracks should still read in ascending track order.
	pinnedAlbum := false
	if f, _, ok := splitSubkeyFilter(p.SubkeyFilter); ok && f == "album" {
		pinnedAlbum = true
	}

	less := func(a, b *model.SerializedTrack) bool {
		pa, pb := sortValue(a, field), sortValue(b, field)
		if reverse {
			// descending swaps the maximal sentinel for a minimal
			// empty string before comparing
			if pa == sentinel {
				pa = ""
			}
			if pb == sentinel {
				pb = ""
			}
		}
		if pa != pb {
			if reverse {
				return pa > pb
			}
			return pa < pb
		}

		if field == "album" {
			sa, sb := trackNumberKey(a), trackNumberKey(b)
			if reverse && pinnedAlbum {
				sa, sb = -sa, -sb
			}
			if sa != sb {
				if reverse {
					return sa > sb
				}
				return sa < sb
			}
		}
		return false
	}

	sort.SliceStable(songs, func(i, j int) bool {
		return less(&songs[i], &songs[j])
	})
}

// defaultSort orders by album name then track number; tracks without an
// album go last, keeping their discovery order among themselves.
func defaultSort(songs []model.SerializedTrack) {
	key := func(song *model.SerializedTrack) (string, float64) {
		if len(song.Album) == 0 {
			return sentinel, math.Inf(1)
		}
		return strings.ToLower(song.Album[0]), trackNumberKey(song)
	}

	sort.SliceStable(songs, func(i, j int) bool {
		pi, si := key(&songs[i])
		pj, sj := key(&songs[j])
		if pi != pj {
			return pi < pj
		}
		return si < sj
	})
}
