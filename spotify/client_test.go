package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-spotify-auth/spotify"
	"github.com/stretchr/testify/require"
)

func TestClient_CurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"jane-id","uri":"spotify:user:jane-id","display_name":"Jane"}`))
	}))
	defer server.Close()

	client := spotify.NewClient("access-1", spotify.WithBaseURL(server.URL))

	profile, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "jane-id", profile.ID)
	require.Equal(t, "Jane", profile.DisplayName)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"status":401,"message":"The access token expired"}}`))
	}))
	defer server.Close()

	client := spotify.NewClient("stale-token", spotify.WithBaseURL(server.URL))

	_, err := client.CurrentUser(context.Background())
	var apiErr *spotify.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.Status)
	require.Equal(t, "The access token expired", apiErr.Message)
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := spotify.NewClient("access-1", spotify.WithBaseURL(server.URL))

	_, err := client.CurrentUser(context.Background())
	var apiErr *spotify.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.Status)
}

func TestClient_InvalidResponseFailsValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// popularity outside the documented 0..100 range
		_, _ = w.Write([]byte(`{"id":"artist-1","name":"Artist","uri":"spotify:artist:1","popularity":200}`))
	}))
	defer server.Close()

	client := spotify.NewClient("access-1", spotify.WithBaseURL(server.URL))

	_, err := client.Artist(context.Background(), "artist-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid")
}

func TestClient_TopTracksPagingParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/top/tracks", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		require.Equal(t, "5", r.URL.Query().Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"href":"h","items":[],"limit":10,"offset":5,"total":0}`))
	}))
	defer server.Close()

	client := spotify.NewClient("access-1", spotify.WithBaseURL(server.URL))

	page, err := client.TopTracks(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Equal(t, 10, page.Limit)
	require.Empty(t, page.Items)
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "bowie", r.URL.Query().Get("q"))
		require.Equal(t, "artist", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artists":{"href":"h","items":[{"id":"artist-1","name":"Bowie","uri":"spotify:artist:1"}],"limit":20,"offset":0,"total":1}}`))
	}))
	defer server.Close()

	client := spotify.NewClient("access-1", spotify.WithBaseURL(server.URL))

	result, err := client.Search(context.Background(), "bowie", "artist", 20, 0)
	require.NoError(t, err)
	require.NotNil(t, result.Artists)
	require.Len(t, result.Artists.Items, 1)
	require.Equal(t, "Bowie", result.Artists.Items[0].Name)
	require.Nil(t, result.Tracks)
}

func TestFactory_Build(t *testing.T) {
	factory := spotify.NewFactory()
	client := factory.Build("access-1")
	require.NotNil(t, client)
}
