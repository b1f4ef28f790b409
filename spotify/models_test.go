package spotify_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-spotify-auth/internal/utils"
	"github.com/jrsteele09/go-spotify-auth/spotify"
	"github.com/stretchr/testify/require"
)

func validTrack() spotify.Track {
	return spotify.Track{
		Album: spotify.SimplifiedAlbum{
			AlbumType:            "album",
			Artists:              []spotify.SimplifiedArtist{{ID: "artist-1", Name: "Artist", URI: "spotify:artist:1"}},
			ID:                   "album-1",
			Name:                 "Album",
			ReleaseDate:          "2020-01-01",
			ReleaseDatePrecision: "day",
			URI:                  "spotify:album:1",
		},
		Artists:     []spotify.SimplifiedArtist{{ID: "artist-1", Name: "Artist", URI: "spotify:artist:1"}},
		DiscNumber:  1,
		DurationMS:  210000,
		ID:          "track-1",
		Name:        "Track",
		TrackNumber: 3,
		URI:         "spotify:track:1",
	}
}

func TestValidate_Artist(t *testing.T) {
	artist := spotify.Artist{
		ID:   "artist-1",
		Name: "Artist",
		URI:  "spotify:artist:1",
	}

	t.Run("valid without popularity", func(t *testing.T) {
		require.NoError(t, spotify.Validate(&artist))
	})

	t.Run("popularity within range", func(t *testing.T) {
		a := artist
		a.Popularity = utils.Ptr(100)
		require.NoError(t, spotify.Validate(&a))
	})

	t.Run("popularity above 100 is rejected", func(t *testing.T) {
		a := artist
		a.Popularity = utils.Ptr(101)
		require.Error(t, spotify.Validate(&a))
	})

	t.Run("negative popularity is rejected", func(t *testing.T) {
		a := artist
		a.Popularity = utils.Ptr(-1)
		require.Error(t, spotify.Validate(&a))
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		a := artist
		a.ID = ""
		require.Error(t, spotify.Validate(&a))
	})
}

func TestValidate_Track(t *testing.T) {
	t.Run("valid track", func(t *testing.T) {
		track := validTrack()
		require.NoError(t, spotify.Validate(&track))
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		track := validTrack()
		track.DurationMS = -1
		require.Error(t, spotify.Validate(&track))
	})

	t.Run("disc number below 1 is rejected", func(t *testing.T) {
		track := validTrack()
		track.DiscNumber = 0
		require.Error(t, spotify.Validate(&track))
	})

	t.Run("track number below 1 is rejected", func(t *testing.T) {
		track := validTrack()
		track.TrackNumber = 0
		require.Error(t, spotify.Validate(&track))
	})

	t.Run("invalid album type is rejected", func(t *testing.T) {
		track := validTrack()
		track.Album.AlbumType = "bootleg"
		require.Error(t, spotify.Validate(&track))
	})

	t.Run("invalid release date precision is rejected", func(t *testing.T) {
		track := validTrack()
		track.Album.ReleaseDatePrecision = "decade"
		require.Error(t, spotify.Validate(&track))
	})
}

func TestValidate_AudioFeatures(t *testing.T) {
	valid := spotify.AudioFeatures{
		Acousticness:     0.1,
		Danceability:     0.5,
		DurationMS:       210000,
		Energy:           0.8,
		ID:               "track-1",
		Instrumentalness: 0,
		Key:              5,
		Liveness:         0.2,
		Loudness:         -7.5,
		Mode:             1,
		Speechiness:      0.05,
		Tempo:            120,
		TimeSignature:    4,
		URI:              "spotify:track:1",
		Valence:          0.6,
	}

	t.Run("valid features", func(t *testing.T) {
		require.NoError(t, spotify.Validate(&valid))
	})

	t.Run("energy above 1 is rejected", func(t *testing.T) {
		f := valid
		f.Energy = 1.2
		require.Error(t, spotify.Validate(&f))
	})

	t.Run("key below -1 is rejected", func(t *testing.T) {
		f := valid
		f.Key = -2
		require.Error(t, spotify.Validate(&f))
	})

	t.Run("mode outside 0..1 is rejected", func(t *testing.T) {
		f := valid
		f.Mode = 2
		require.Error(t, spotify.Validate(&f))
	})

	t.Run("time signature outside 3..7 is rejected", func(t *testing.T) {
		f := valid
		f.TimeSignature = 8
		require.Error(t, spotify.Validate(&f))
	})
}

func TestValidate_Paging(t *testing.T) {
	t.Run("invalid item inside a page is rejected", func(t *testing.T) {
		track := validTrack()
		track.Popularity = utils.Ptr(200)
		page := spotify.TracksPaging{Items: []spotify.Track{track}, Limit: 20, Total: 1}
		require.Error(t, spotify.Validate(&page))
	})

	t.Run("negative offset is rejected", func(t *testing.T) {
		page := spotify.TracksPaging{Limit: 20, Offset: -1}
		require.Error(t, spotify.Validate(&page))
	})
}

func TestUserProfileDecoding(t *testing.T) {
	payload := `{
		"display_name": "Jane",
		"email": "jane@example.com",
		"followers": {"total": 12},
		"id": "jane-id",
		"uri": "spotify:user:jane-id",
		"type": "user"
	}`

	var profile spotify.UserProfile
	require.NoError(t, json.Unmarshal([]byte(payload), &profile))
	require.NoError(t, spotify.Validate(&profile))
	require.Equal(t, "Jane", profile.DisplayName)
	require.Equal(t, 12, utils.Value(profile.Followers).Total)
}
