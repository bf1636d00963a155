package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"twitter-gate-service/domain"
	"twitter-gate-service/service"
	"twitter-gate-service/twitter"
)

type tweetMock struct {
	twitter.Modern

	createdRequests []twitter.CreateTweetRequest
	bookmarks       []domain.Tweet
	removedIds      []string
	failRemovalOf   string
	calls           int
}

func (m *tweetMock) CreateTweet(ctx context.Context, req twitter.CreateTweetRequest) (*domain.Tweet, error) {
	m.calls++
	m.createdRequests = append(m.createdRequests, req)
	return &domain.Tweet{Id: "100", Text: req.Text}, nil
}

func (m *tweetMock) Bookmarks(ctx context.Context) ([]domain.Tweet, error) {
	m.calls++
	return m.bookmarks, nil
}

func (m *tweetMock) RemoveBookmark(ctx context.Context, tweetId string) (bool, error) {
	m.calls++
	if tweetId == m.failRemovalOf {
		return false, errors.New("upstream removal failure")
	}
	m.removedIds = append(m.removedIds, tweetId)
	return true, nil
}

func (m *tweetMock) Unlike(ctx context.Context, tweetId string) (bool, error) {
	m.calls++
	return false, nil
}

type mediaMock struct {
	twitter.Legacy

	uploadedPaths []string
}

func (m *mediaMock) UploadMedia(ctx context.Context, path string) (string, error) {
	m.uploadedPaths = append(m.uploadedPaths, path)
	return "media-" + path, nil
}

func TestPostTweetAppendsHashtags(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &tweetMock{}
	svc := service.NewTweet(clientsMock{modern: modern})

	tweet, err := svc.Post(context.Background(), domain.PostTweetRequest{
		Text: "hello",
		Tags: []string{"a", "b"},
	})

	require.NoError(err)
	require.EqualValues("hello #a #b", tweet.Text)
	require.Len(modern.createdRequests, 1)
	require.EqualValues("hello #a #b", modern.createdRequests[0].Text)
}

func TestPostTweetUploadsMediaBeforeCreate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &tweetMock{}
	legacy := &mediaMock{}
	svc := service.NewTweet(clientsMock{modern: modern, legacy: legacy})

	_, err := svc.Post(context.Background(), domain.PostTweetRequest{
		Text:       "with media",
		MediaPaths: []string{"a.png", "b.png"},
	})

	require.NoError(err)
	require.EqualValues([]string{"a.png", "b.png"}, legacy.uploadedPaths)
	require.Len(modern.createdRequests, 1)
	require.EqualValues([]string{"media-a.png", "media-b.png"}, modern.createdRequests[0].MediaIds)
}

func TestVoteMakesNoClientCalls(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &tweetMock{}
	svc := service.NewTweet(clientsMock{modern: modern})

	resp, err := svc.Vote(context.Background(), domain.VoteRequest{
		TweetId: "42",
		Choice:  "yes",
	})

	require.NoError(err)
	require.EqualValues("voted", resp.Status)
	require.EqualValues("42", resp.TweetId)
	require.EqualValues(0, modern.calls)
}

func TestUnfavoriteNegatesLikedFlag(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &tweetMock{}
	svc := service.NewTweet(clientsMock{modern: modern})

	resp, err := svc.Unfavorite(context.Background(), domain.TweetIdRequest{TweetId: "42"})

	require.NoError(err)
	require.True(resp.Liked)
}

func TestDeleteAllBookmarksStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &tweetMock{
		bookmarks: []domain.Tweet{
			{Id: "1"}, {Id: "2"}, {Id: "3"},
		},
		failRemovalOf: "2",
	}
	svc := service.NewTweet(clientsMock{modern: modern})

	_, err := svc.DeleteAllBookmarks(context.Background())

	require.Error(err)
	require.EqualValues([]string{"1"}, modern.removedIds)
}

func TestDeleteAllBookmarksEmptyList(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &tweetMock{}
	svc := service.NewTweet(clientsMock{modern: modern})

	resp, err := svc.DeleteAllBookmarks(context.Background())

	require.NoError(err)
	require.EqualValues("all bookmarks deleted", resp.Status)
	require.Empty(modern.removedIds)
}
