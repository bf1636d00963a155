package twitter_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/json"
	"twitter-gate-service/domain"
	"twitter-gate-service/twitter"
)

func testConfig(url string) twitter.Config {
	return twitter.Config{
		ApiUrl:    url,
		UploadUrl: url,
		Timeout:   time.Second,
	}
}

func creds() twitter.Credentials {
	return twitter.Credentials{
		ApiKey:            "key",
		ApiSecret:         "secret",
		AccessToken:       "token",
		AccessTokenSecret: "token-secret",
		BearerToken:       "bearer",
	}
}

func TestCreateTweetSendsExpectedBody(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	received := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.EqualValues(http.MethodPost, r.Method)
		require.EqualValues("/2/tweets", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(err)
		require.NoError(json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": "100", "text": "hello #a"}}`))
	}))
	defer srv.Close()

	cli := twitter.NewClient(creds(), testConfig(srv.URL))
	tweet, err := cli.CreateTweet(context.Background(), twitter.CreateTweetRequest{
		Text:             "hello #a",
		InReplyToTweetId: "99",
		MediaIds:         []string{"m1"},
	})

	require.NoError(err)
	require.EqualValues("100", tweet.Id)
	require.EqualValues("hello #a", received["text"])
	reply, ok := received["reply"].(map[string]any)
	require.True(ok)
	require.EqualValues("99", reply["in_reply_to_tweet_id"])
	media, ok := received["media"].(map[string]any)
	require.True(ok)
	require.EqualValues([]any{"m1"}, media["media_ids"])
}

func TestUserEmptyEnvelopeReturnsNil(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cli := twitter.NewClient(creds(), testConfig(srv.URL))
	user, err := cli.User(context.Background(), "1")

	require.NoError(err)
	require.Nil(user)
}

func TestUserRequestCarriesBearerToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.EqualValues("Bearer bearer", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": "1", "username": "user"}}`))
	}))
	defer srv.Close()

	cli := twitter.NewClient(creds(), testConfig(srv.URL))
	user, err := cli.User(context.Background(), "1")

	require.NoError(err)
	require.EqualValues("user", user.Username)
}

func TestNonSuccessStatusYieldsUpstreamError(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"title": "Forbidden"}`))
	}))
	defer srv.Close()

	cli := twitter.NewClient(creds(), testConfig(srv.URL))
	_, err := cli.Tweet(context.Background(), "1")

	upstreamErr := domain.UpstreamError{}
	require.ErrorAs(err, &upstreamErr)
	require.EqualValues("v2", upstreamErr.Api)
	require.EqualValues(http.StatusForbidden, upstreamErr.StatusCode)
	require.Contains(upstreamErr.Body, "Forbidden")
}

func TestAuthedUserIdResolvedOnce(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	meCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/2/users/me" {
			meCalls++
			_, _ = w.Write([]byte(`{"data": {"id": "777", "username": "me"}}`))
			return
		}
		require.EqualValues("/2/users/777/likes", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {"liked": true}}`))
	}))
	defer srv.Close()

	cli := twitter.NewClient(creds(), testConfig(srv.URL))

	liked, err := cli.Like(context.Background(), "1")
	require.NoError(err)
	require.True(liked)

	liked, err = cli.Like(context.Background(), "2")
	require.NoError(err)
	require.True(liked)

	require.EqualValues(1, meCalls)
}

func TestTweetListEmptyData(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.EqualValues("42", r.URL.Query().Get("max_results"))
		require.EqualValues("recency", r.URL.Query().Get("sort_order"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meta": {"result_count": 0}}`))
	}))
	defer srv.Close()

	cli := twitter.NewClient(creds(), testConfig(srv.URL))
	tweets, err := cli.SearchRecent(context.Background(), "golang", "recency", 42, "")

	require.NoError(err)
	require.NotNil(tweets)
	require.Empty(tweets)
}
