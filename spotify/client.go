package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Client is a typed Spotify Web API client authenticated with a bearer
// access token. Responses are decoded into the models in this package and
// validated before being returned.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithBaseURL overrides the Web API base URL, primarily for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client. The replacement is
// responsible for its own authentication.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient constructs a client authenticated with the given access token.
// Construction never validates the token; an invalid or expired token
// surfaces on the first API call.
func NewClient(accessToken string, options ...ClientOption) *Client {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	c := &Client{
		httpClient: oauth2.NewClient(context.Background(), source),
		baseURL:    APIBaseURL,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Factory builds Clients from access tokens. It satisfies the session
// manager's client factory dependency.
type Factory struct {
	options []ClientOption
}

// NewFactory creates a Factory; options are applied to every built client.
func NewFactory(options ...ClientOption) *Factory {
	return &Factory{options: options}
}

func (f *Factory) Build(accessToken string) *Client {
	return NewClient(accessToken, f.options...)
}

// APIError is a non-2xx Web API response body.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify api error %d: %s", e.Status, e.Message)
}

// CurrentUser returns the profile of the user the access token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.get(ctx, "/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UserPlaylists returns a page of the given user's playlists.
func (c *Client) UserPlaylists(ctx context.Context, userID string, limit, offset int) (*PlaylistsPaging, error) {
	var page PlaylistsPaging
	if err := c.get(ctx, "/users/"+url.PathEscape(userID)+"/playlists", pagingQuery(limit, offset), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Playlist returns a playlist by ID.
func (c *Client) Playlist(ctx context.Context, playlistID string) (*Playlist, error) {
	var playlist Playlist
	if err := c.get(ctx, "/playlists/"+url.PathEscape(playlistID), nil, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// PlaylistItems returns a page of the tracks on a playlist.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string, limit, offset int) (*PlaylistItems, error) {
	var page PlaylistItems
	if err := c.get(ctx, "/playlists/"+url.PathEscape(playlistID)+"/tracks", pagingQuery(limit, offset), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Track returns a track by ID.
func (c *Client) Track(ctx context.Context, trackID string) (*Track, error) {
	var track Track
	if err := c.get(ctx, "/tracks/"+url.PathEscape(trackID), nil, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// Album returns an album by ID.
func (c *Client) Album(ctx context.Context, albumID string) (*Album, error) {
	var album Album
	if err := c.get(ctx, "/albums/"+url.PathEscape(albumID), nil, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// Artist returns an artist by ID.
func (c *Client) Artist(ctx context.Context, artistID string) (*Artist, error) {
	var artist Artist
	if err := c.get(ctx, "/artists/"+url.PathEscape(artistID), nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// ArtistTopTracks returns an artist's top tracks for a market.
func (c *Client) ArtistTopTracks(ctx context.Context, artistID, market string) ([]Track, error) {
	var wrapper struct {
		Tracks []Track `json:"tracks" validate:"dive"`
	}
	query := url.Values{"market": {market}}
	if err := c.get(ctx, "/artists/"+url.PathEscape(artistID)+"/top-tracks", query, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Tracks, nil
}

// AudioFeatures returns the audio features for a track.
func (c *Client) AudioFeatures(ctx context.Context, trackID string) (*AudioFeatures, error) {
	var features AudioFeatures
	if err := c.get(ctx, "/audio-features/"+url.PathEscape(trackID), nil, &features); err != nil {
		return nil, err
	}
	return &features, nil
}

// TopTracks returns a page of the current user's top tracks.
func (c *Client) TopTracks(ctx context.Context, limit, offset int) (*TracksPaging, error) {
	var page TracksPaging
	if err := c.get(ctx, "/me/top/tracks", pagingQuery(limit, offset), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Search runs a search query. itemType is a comma-separated list of item
// types, e.g. "track" or "track,artist".
func (c *Client) Search(ctx context.Context, q, itemType string, limit, offset int) (*SearchResult, error) {
	query := pagingQuery(limit, offset)
	query.Set("q", q)
	query.Set("type", itemType)

	var result SearchResult
	if err := c.get(ctx, "/search", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "[Client.get] http.NewRequestWithContext")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "[Client.get] httpClient.Do")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error APIError `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error.Status == 0 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &body.Error
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.get] decoding %s response", path)
	}
	if err := Validate(out); err != nil {
		return errors.Wrapf(err, "[Client.get] invalid %s response", path)
	}
	return nil
}

func pagingQuery(limit, offset int) url.Values {
	return url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
}
