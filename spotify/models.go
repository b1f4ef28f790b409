package spotify

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator for decoded API responses. Constraints
// on the models below mirror the documented Spotify object ranges.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a decoded API object against its declared constraints.
func Validate(v any) error {
	return validate.Struct(v)
}

// ExternalURLs holds known external URLs for a Spotify object.
type ExternalURLs struct {
	Spotify string `json:"spotify,omitempty"`
}

// Image is an image object attached to Spotify items.
type Image struct {
	URL    string `json:"url" validate:"required"`
	Height *int   `json:"height,omitempty"`
	Width  *int   `json:"width,omitempty"`
}

// Followers carries follower information for a user or artist.
type Followers struct {
	Href  string `json:"href,omitempty"`
	Total int    `json:"total" validate:"gte=0"`
}

// Copyright holds copyright statements for an album.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// ExternalIDs holds known external identifiers for a track or album.
type ExternalIDs struct {
	ISRC string `json:"isrc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	UPC  string `json:"upc,omitempty"`
}

// Restrictions explains why content is restricted in the current market.
type Restrictions struct {
	Reason string `json:"reason,omitempty"`
}

// SimplifiedArtist is the reduced artist shape embedded in tracks and albums.
type SimplifiedArtist struct {
	ExternalURLs *ExternalURLs `json:"external_urls,omitempty"`
	Href         string        `json:"href,omitempty"`
	ID           string        `json:"id" validate:"required"`
	Name         string        `json:"name" validate:"required"`
	Type         string        `json:"type,omitempty"`
	URI          string        `json:"uri" validate:"required"`
}

// Artist is the full Spotify Artist object.
type Artist struct {
	ExternalURLs *ExternalURLs `json:"external_urls,omitempty"`
	Followers    *Followers    `json:"followers,omitempty"`
	Genres       []string      `json:"genres,omitempty"`
	Href         string        `json:"href,omitempty"`
	ID           string        `json:"id" validate:"required"`
	Images       []Image       `json:"images,omitempty" validate:"dive"`
	Name         string        `json:"name" validate:"required"`
	Popularity   *int          `json:"popularity,omitempty" validate:"omitempty,gte=0,lte=100"`
	Type         string        `json:"type,omitempty"`
	URI          string        `json:"uri" validate:"required"`
}

// SimplifiedAlbum is the reduced album shape embedded in tracks.
type SimplifiedAlbum struct {
	AlbumType            string             `json:"album_type" validate:"oneof=album single compilation"`
	Artists              []SimplifiedArtist `json:"artists" validate:"dive"`
	AvailableMarkets     []string           `json:"available_markets,omitempty"`
	ExternalURLs         *ExternalURLs      `json:"external_urls,omitempty"`
	Href                 string             `json:"href,omitempty"`
	ID                   string             `json:"id" validate:"required"`
	Images               []Image            `json:"images,omitempty" validate:"dive"`
	Name                 string             `json:"name" validate:"required"`
	ReleaseDate          string             `json:"release_date"`
	ReleaseDatePrecision string             `json:"release_date_precision" validate:"oneof=year month day"`
	Restrictions         *Restrictions      `json:"restrictions,omitempty"`
	Type                 string             `json:"type,omitempty"`
	URI                  string             `json:"uri" validate:"required"`
	TotalTracks          *int               `json:"total_tracks,omitempty"`
}

// Album is the full Spotify Album object.
type Album struct {
	AlbumType            string             `json:"album_type" validate:"oneof=album single compilation"`
	Artists              []SimplifiedArtist `json:"artists" validate:"dive"`
	AvailableMarkets     []string           `json:"available_markets,omitempty"`
	Copyrights           []Copyright        `json:"copyrights,omitempty"`
	ExternalIDs          *ExternalIDs       `json:"external_ids,omitempty"`
	ExternalURLs         *ExternalURLs      `json:"external_urls,omitempty"`
	Genres               []string           `json:"genres,omitempty"`
	Href                 string             `json:"href,omitempty"`
	ID                   string             `json:"id" validate:"required"`
	Images               []Image            `json:"images,omitempty" validate:"dive"`
	Label                string             `json:"label,omitempty"`
	Name                 string             `json:"name" validate:"required"`
	Popularity           *int               `json:"popularity,omitempty" validate:"omitempty,gte=0,lte=100"`
	ReleaseDate          string             `json:"release_date"`
	ReleaseDatePrecision string             `json:"release_date_precision" validate:"oneof=year month day"`
	Restrictions         *Restrictions      `json:"restrictions,omitempty"`
	TotalTracks          *int               `json:"total_tracks,omitempty"`
	Type                 string             `json:"type,omitempty"`
	URI                  string             `json:"uri" validate:"required"`
}

// Track is the full Spotify Track object.
type Track struct {
	Album            SimplifiedAlbum    `json:"album"`
	Artists          []SimplifiedArtist `json:"artists" validate:"dive"`
	AvailableMarkets []string           `json:"available_markets,omitempty"`
	DiscNumber       int                `json:"disc_number" validate:"gte=1"`
	DurationMS       int                `json:"duration_ms" validate:"gte=0"`
	Explicit         bool               `json:"explicit"`
	ExternalIDs      *ExternalIDs       `json:"external_ids,omitempty"`
	ExternalURLs     *ExternalURLs      `json:"external_urls,omitempty"`
	Href             string             `json:"href,omitempty"`
	ID               string             `json:"id" validate:"required"`
	IsPlayable       *bool              `json:"is_playable,omitempty"`
	IsLocal          bool               `json:"is_local"`
	Name             string             `json:"name" validate:"required"`
	Popularity       *int               `json:"popularity,omitempty" validate:"omitempty,gte=0,lte=100"`
	PreviewURL       string             `json:"preview_url,omitempty"`
	Restrictions     *Restrictions      `json:"restrictions,omitempty"`
	TrackNumber      int                `json:"track_number" validate:"gte=1"`
	Type             string             `json:"type,omitempty"`
	URI              string             `json:"uri" validate:"required"`
}

// PlaylistOwner identifies the user owning a playlist.
type PlaylistOwner struct {
	DisplayName  string        `json:"display_name,omitempty"`
	ExternalURLs *ExternalURLs `json:"external_urls,omitempty"`
	Followers    *Followers    `json:"followers,omitempty"`
	Href         string        `json:"href,omitempty"`
	ID           string        `json:"id" validate:"required"`
	Images       []Image       `json:"images,omitempty" validate:"dive"`
	Type         string        `json:"type,omitempty"`
	URI          string        `json:"uri" validate:"required"`
}

// PlaylistTrack wraps a track with its playlist membership metadata.
type PlaylistTrack struct {
	AddedAt      *time.Time     `json:"added_at,omitempty"`
	AddedBy      *PlaylistOwner `json:"added_by,omitempty"`
	IsLocal      bool           `json:"is_local"`
	PrimaryColor string         `json:"primary_color,omitempty"`
	Track        *Track         `json:"track,omitempty"`
}

// PlaylistTracksRef is the compact tracks reference embedded in a playlist.
type PlaylistTracksRef struct {
	Href  string `json:"href,omitempty"`
	Total int    `json:"total" validate:"gte=0"`
}

// Playlist is the Spotify Playlist object.
type Playlist struct {
	Collaborative bool              `json:"collaborative"`
	Description   string            `json:"description,omitempty"`
	ExternalURLs  *ExternalURLs     `json:"external_urls,omitempty"`
	Followers     *Followers        `json:"followers,omitempty"`
	Href          string            `json:"href,omitempty"`
	ID            string            `json:"id" validate:"required"`
	Images        []Image           `json:"images,omitempty" validate:"dive"`
	Name          string            `json:"name" validate:"required"`
	Owner         PlaylistOwner     `json:"owner"`
	Public        *bool             `json:"public,omitempty"`
	SnapshotID    string            `json:"snapshot_id" validate:"required"`
	Tracks        PlaylistTracksRef `json:"tracks"`
	Type          string            `json:"type,omitempty"`
	URI           string            `json:"uri" validate:"required"`
}

// Paging is the generic Spotify paging container.
type Paging[T any] struct {
	Href     string `json:"href"`
	Items    []T    `json:"items" validate:"dive"`
	Limit    int    `json:"limit" validate:"gte=0"`
	Next     string `json:"next,omitempty"`
	Offset   int    `json:"offset" validate:"gte=0"`
	Previous string `json:"previous,omitempty"`
	Total    int    `json:"total" validate:"gte=0"`
}

// Paging aliases matching the named Spotify response containers.
type (
	TracksPaging    = Paging[Track]
	ArtistsPaging   = Paging[Artist]
	AlbumsPaging    = Paging[Album]
	PlaylistsPaging = Paging[Playlist]
	PlaylistItems   = Paging[PlaylistTrack]
)

// AudioFeatures carries the audio analysis summary for a track. The
// documented ranges are enforced on decode.
type AudioFeatures struct {
	Acousticness     float64 `json:"acousticness" validate:"gte=0,lte=1"`
	AnalysisURL      string  `json:"analysis_url,omitempty"`
	Danceability     float64 `json:"danceability" validate:"gte=0,lte=1"`
	DurationMS       int     `json:"duration_ms" validate:"gte=0"`
	Energy           float64 `json:"energy" validate:"gte=0,lte=1"`
	ID               string  `json:"id" validate:"required"`
	Instrumentalness float64 `json:"instrumentalness" validate:"gte=0,lte=1"`
	Key              int     `json:"key" validate:"gte=-1,lte=11"`
	Liveness         float64 `json:"liveness" validate:"gte=0,lte=1"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode" validate:"gte=0,lte=1"`
	Speechiness      float64 `json:"speechiness" validate:"gte=0,lte=1"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature" validate:"gte=3,lte=7"`
	TrackHref        string  `json:"track_href,omitempty"`
	Type             string  `json:"type,omitempty"`
	URI              string  `json:"uri" validate:"required"`
	Valence          float64 `json:"valence" validate:"gte=0,lte=1"`
}

// SearchResult groups the paging containers a search may return.
type SearchResult struct {
	Tracks    *TracksPaging    `json:"tracks,omitempty"`
	Artists   *ArtistsPaging   `json:"artists,omitempty"`
	Albums    *AlbumsPaging    `json:"albums,omitempty"`
	Playlists *PlaylistsPaging `json:"playlists,omitempty"`
}

// UserProfile is the current user's profile object.
type UserProfile struct {
	Country      string        `json:"country,omitempty"`
	DisplayName  string        `json:"display_name,omitempty"`
	Email        string        `json:"email,omitempty"`
	ExternalURLs *ExternalURLs `json:"external_urls,omitempty"`
	Followers    *Followers    `json:"followers,omitempty"`
	Href         string        `json:"href,omitempty"`
	ID           string        `json:"id" validate:"required"`
	Images       []Image       `json:"images,omitempty" validate:"dive"`
	Product      string        `json:"product,omitempty"`
	Type         string        `json:"type,omitempty"`
	URI          string        `json:"uri" validate:"required"`
}
