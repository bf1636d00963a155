package twitter_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"twitter-gate-service/twitter"
)

func TestPlaceTrends(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.EqualValues("/1.1/trends/place.json", r.URL.Path)
		require.EqualValues("1", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"trends": [
				{"name": "#golang", "url": "http://twitter.com/search?q=%23golang", "query": "%23golang", "tweet_volume": 12345},
				{"name": "#friday", "tweet_volume": null}
			],
			"as_of": "2023-01-01T00:00:00Z",
			"locations": [{"name": "Worldwide", "woeid": 1}]
		}]`))
	}))
	defer srv.Close()

	cli := twitter.NewLegacyClient(creds(), testConfig(srv.URL))
	trends, err := cli.PlaceTrends(context.Background(), 1)

	require.NoError(err)
	require.Len(trends, 2)
	require.EqualValues("#golang", trends[0].Name)
	require.NotNil(trends[0].TweetVolume)
	require.EqualValues(12345, *trends[0].TweetVolume)
	require.Nil(trends[1].TweetVolume)
}

func TestPlaceTrendsEmptyPayload(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cli := twitter.NewLegacyClient(creds(), testConfig(srv.URL))
	trends, err := cli.PlaceTrends(context.Background(), 1)

	require.NoError(err)
	require.Empty(trends)
}

func TestUploadMedia(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	content := []byte("fake image bytes")
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(os.WriteFile(path, content, 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.EqualValues("/1.1/media/upload.json", r.URL.Path)
		require.NoError(r.ParseForm())
		decoded, err := base64.StdEncoding.DecodeString(r.PostForm.Get("media_data"))
		require.NoError(err)
		require.EqualValues(content, decoded)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"media_id": 710511363345354753, "media_id_string": "710511363345354753"}`))
	}))
	defer srv.Close()

	cli := twitter.NewLegacyClient(creds(), testConfig(srv.URL))
	mediaId, err := cli.UploadMedia(context.Background(), path)

	require.NoError(err)
	require.EqualValues("710511363345354753", mediaId)
}

func TestUploadMediaMissingFile(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cli := twitter.NewLegacyClient(creds(), testConfig("http://localhost:1"))
	_, err := cli.UploadMedia(context.Background(), "/no/such/file.png")

	require.Error(err)
	require.Contains(err.Error(), "/no/such/file.png")
}
