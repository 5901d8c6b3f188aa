package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/megawave/megawave/internal/model"
)

func song(name string, album, artist []string, trackNo int) model.SerializedTrack {
	s := model.SerializedTrack{
		Name:   name,
		Album:  album,
		Artist: artist,
	}
	if trackNo > 0 {
		s.Track = &model.TrackNumber{No: trackNo}
	}
	return s
}

func names(songs []model.SerializedTrack) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Name
	}
	return out
}

func TestDefaultSort(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Breed", []string{"Nevermind"}, []string{"Nirvana"}, 4),
		song("Loose Change", nil, nil, 1),
		song("Smells Like Teen Spirit", []string{"Nevermind"}, []string{"Nirvana"}, 1),
		song("Voodoo Child", nil, nil, 0),
		song("Da Funk", []string{"Homework"}, []string{"Daft Punk"}, 7),
	}

	got := Apply(songs, Params{})

	// album/track ascending, then the album-less tracks in their
	// original discovery order
	assert.Equal(t, []string{
		"Da Funk",
		"Smells Like Teen Spirit",
		"Breed",
		"Loose Change",
		"Voodoo Child",
	}, names(got))
}

func TestDefaultSortMissingTrackNumberLast(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Untitled", []string{"Homework"}, nil, 0),
		song("Da Funk", []string{"Homework"}, nil, 7),
		song("Revolution 909", []string{"Homework"}, nil, 2),
	}

	got := Apply(songs, Params{})
	assert.Equal(t, []string{"Revolution 909", "Da Funk", "Untitled"}, names(got))
}

func TestSortAscendingMissingValuesLast(t *testing.T) {
	songs := []model.SerializedTrack{
		song("b-side", nil, nil, 0),
		song("Aerodynamic", []string{"Discovery"}, []string{"Daft Punk"}, 0),
		song("Zero", []string{"Melon Collie"}, []string{"Smashing Pumpkins"}, 0),
	}

	got := Apply(songs, Params{Sort: "artist"})
	assert.Equal(t, []string{"Aerodynamic", "Zero", "b-side"}, names(got))
}

func TestSortDescendingFlipsSentinel(t *testing.T) {
	// descending swaps the maximal sentinel for a minimal empty string,
	// so missing values do not lead the descending order
	songs := []model.SerializedTrack{
		song("Aerodynamic", []string{"Discovery"}, []string{"Daft Punk"}, 0),
		song("b-side", nil, nil, 0),
		song("Zero", []string{"Melon Collie"}, []string{"Smashing Pumpkins"}, 0),
	}

	got := Apply(songs, Params{Sort: "-artist"})
	assert.Equal(t, []string{"Zero", "Aerodynamic", "b-side"}, names(got))
}

func TestSortAlbumDescendingPinnedAlbumReadsAscending(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Breed", []string{"Nevermind"}, []string{"Nirvana"}, 4),
		song("Smells Like Teen Spirit", []string{"Nevermind"}, []string{"Nirvana"}, 1),
		song("Territorial Pissings", []string{"Nevermind"}, []string{"Nirvana"}, 7),
		song("Da Funk", []string{"Homework"}, []string{"Daft Punk"}, 2),
	}

	got := Apply(songs, Params{Sort: "-album", SubkeyFilter: "album-nevermind"})

	// the pinned album still reads in ascending track order despite the
	// descending comparator
	assert.Equal(t, []string{
		"Smells Like Teen Spirit",
		"Breed",
		"Territorial Pissings",
	}, names(got))
}

func TestSortAlbumAscendingSecondaryTrackNumber(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Breed", []string{"Nevermind"}, nil, 4),
		song("Smells Like Teen Spirit", []string{"Nevermind"}, nil, 1),
		song("Da Funk", []string{"Homework"}, nil, 7),
		song("Revolution 909", []string{"Homework"}, nil, 2),
	}

	got := Apply(songs, Params{Sort: "album"})
	assert.Equal(t, []string{
		"Revolution 909",
		"Da Funk",
		"Smells Like Teen Spirit",
		"Breed",
	}, names(got))
}

func TestFilterBucketOrdering(t *testing.T) {
	// all tracks lack albums so the default sort ties and the bucket
	// regrouping stays visible: artist matches lead name matches even
	// though discovery order says otherwise
	songs := []model.SerializedTrack{
		song("Daft Things", nil, []string{"Somebody"}, 0),
		song("Around the World", nil, []string{"Daft Punk"}, 0),
		song("Unrelated", nil, []string{"Nobody"}, 0),
	}

	got := Apply(songs, Params{Filter: "daft"})
	assert.Equal(t, []string{"Around the World", "Daft Things"}, names(got))
}

func TestFilterMatchesAlbum(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Tribute", []string{"Daft Classics"}, []string{"Others"}, 0),
		song("Unrelated", []string{"Elsewhere"}, []string{"Nobody"}, 0),
	}

	got := Apply(songs, Params{Filter: "daft"})
	assert.Equal(t, []string{"Tribute"}, names(got))
}

func TestFilterNeverDuplicates(t *testing.T) {
	// the term hits both this song's name and its artist; the name test
	// runs first, so it lands in the name bucket exactly once
	songs := []model.SerializedTrack{
		song("Nirvana Medley", nil, []string{"Nirvana"}, 0),
		song("Come as You Are", []string{"Nevermind"}, []string{"Nirvana"}, 0),
	}

	got := Apply(songs, Params{Filter: "nirvana"})
	assert.Equal(t, []string{"Come as You Are", "Nirvana Medley"}, names(got))
}

func TestFilterCaseInsensitive(t *testing.T) {
	songs := []model.SerializedTrack{
		song("AERODYNAMIC", nil, nil, 0),
		song("Something Else", nil, nil, 0),
	}

	got := Apply(songs, Params{Filter: "aero"})
	assert.Equal(t, []string{"AERODYNAMIC"}, names(got))
}

func TestSubkeyFilter(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Da Funk", []string{"Homework"}, []string{"Daft Punk"}, 0),
		song("Breed", []string{"Nevermind"}, []string{"Nirvana"}, 0),
		song("Harder Better", []string{"Discovery"}, []string{"Daft Punk"}, 0),
	}

	type testCase struct {
		filter string
		want   []string
	}

	testCases := []testCase{
		{filter: "artist-daft punk", want: []string{"Da Funk", "Harder Better"}},
		{filter: "artist-DAFT PUNK", want: []string{"Da Funk", "Harder Better"}},
		{filter: "album-nevermind", want: []string{"Breed"}},
		{filter: "name-da funk", want: []string{"Da Funk"}},
		// exact, not substring
		{filter: "artist-daft", want: []string{}},
		// unknown field filters everything out
		{filter: "genre-rock", want: []string{}},
		// malformed (no separator) keeps the list unfiltered
		{filter: "nirvana", want: []string{"Da Funk", "Breed", "Harder Better"}},
	}

	for _, tc := range testCases {
		got := Apply(songs, Params{SubkeyFilter: tc.filter, Sort: "x"})
		assert.Equal(t, tc.want, append([]string{}, names(got)...), tc.filter)
	}
}

func TestSubkeyFilterValueMayContainDashes(t *testing.T) {
	songs := []model.SerializedTrack{
		song("One More Time", nil, []string{"Daft-Punk"}, 0),
		song("Other", nil, []string{"Someone"}, 0),
	}

	got := Apply(songs, Params{SubkeyFilter: "artist-Daft-Punk"})
	assert.Equal(t, []string{"One More Time"}, names(got))
}

func TestOperatorsCompose(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Breed", []string{"Nevermind"}, []string{"Nirvana"}, 4),
		song("Smells Like Teen Spirit", []string{"Nevermind"}, []string{"Nirvana"}, 1),
		song("Da Funk", []string{"Homework"}, []string{"Daft Punk"}, 7),
	}

	got := Apply(songs, Params{
		Filter:       "nirvana",
		SubkeyFilter: "album-nevermind",
		Sort:         "name",
	})
	assert.Equal(t, []string{"Breed", "Smells Like Teen Spirit"}, names(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	songs := []model.SerializedTrack{
		song("Zero", []string{"B"}, nil, 0),
		song("Alpha", []string{"A"}, nil, 0),
	}

	_ = Apply(songs, Params{Sort: "name"})
	assert.Equal(t, []string{"Zero", "Alpha"}, names(songs))
}
