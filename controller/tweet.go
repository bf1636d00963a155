package controller

import (
	"context"

	"twitter-gate-service/domain"
	"twitter-gate-service/request"
)

type TweetService interface {
	Post(ctx context.Context, req domain.PostTweetRequest) (*domain.Tweet, error)
	Delete(ctx context.Context, req domain.DeleteTweetRequest) (*domain.DeleteTweetResponse, error)
	Details(ctx context.Context, req domain.TweetIdRequest) (*domain.Tweet, error)
	CreatePoll(ctx context.Context, req domain.CreatePollRequest) (*domain.Tweet, error)
	Vote(ctx context.Context, req domain.VoteRequest) (*domain.VoteResponse, error)
	Favorite(ctx context.Context, req domain.TweetIdRequest) (*domain.LikeResponse, error)
	Unfavorite(ctx context.Context, req domain.TweetIdRequest) (*domain.LikeResponse, error)
	Bookmark(ctx context.Context, req domain.BookmarkRequest) (*domain.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, req domain.TweetIdRequest) (*domain.BookmarkResponse, error)
	DeleteAllBookmarks(ctx context.Context) (*domain.DeleteAllBookmarksResponse, error)
}

type Tweet struct {
	service TweetService
}

func NewTweet(service TweetService) Tweet {
	return Tweet{
		service: service,
	}
}

func (c Tweet) Post(ctx *request.Context) error {
	req := domain.PostTweetRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.Text, "text")
	if err != nil {
		return err
	}

	tweet, err := c.service.Post(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweet)
}

func (c Tweet) Delete(ctx *request.Context) error {
	req := domain.DeleteTweetRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.TweetId, "tweet_id")
	if err != nil {
		return err
	}

	resp, err := c.service.Delete(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, resp)
}

func (c Tweet) Details(ctx *request.Context) error {
	req := domain.TweetIdRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.TweetId, "tweet_id")
	if err != nil {
		return err
	}

	tweet, err := c.service.Details(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweet)
}

func (c Tweet) CreatePoll(ctx *request.Context) error {
	req := domain.CreatePollRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.Text, "text")
	if err != nil {
		return err
	}

	tweet, err := c.service.CreatePoll(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweet)
}

func (c Tweet) Vote(ctx *request.Context) error {
	req := domain.VoteRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.TweetId, "tweet_id")
	if err != nil {
		return err
	}

	resp, err := c.service.Vote(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, resp)
}

func (c Tweet) Favorite(ctx *request.Context) error {
	return c.tweetIdCall(ctx, func(reqCtx context.Context, req domain.TweetIdRequest) (any, error) {
		return c.service.Favorite(reqCtx, req)
	})
}

func (c Tweet) Unfavorite(ctx *request.Context) error {
	return c.tweetIdCall(ctx, func(reqCtx context.Context, req domain.TweetIdRequest) (any, error) {
		return c.service.Unfavorite(reqCtx, req)
	})
}

func (c Tweet) Bookmark(ctx *request.Context) error {
	req := domain.BookmarkRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.TweetId, "tweet_id")
	if err != nil {
		return err
	}

	resp, err := c.service.Bookmark(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, resp)
}

func (c Tweet) DeleteBookmark(ctx *request.Context) error {
	return c.tweetIdCall(ctx, func(reqCtx context.Context, req domain.TweetIdRequest) (any, error) {
		return c.service.DeleteBookmark(reqCtx, req)
	})
}

func (c Tweet) DeleteAllBookmarks(ctx *request.Context) error {
	resp, err := c.service.DeleteAllBookmarks(ctx.Context())
	if err != nil {
		return err
	}
	return respondJson(ctx, resp)
}

func (c Tweet) tweetIdCall(
	ctx *request.Context,
	call func(ctx context.Context, req domain.TweetIdRequest) (any, error),
) error {
	req := domain.TweetIdRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.TweetId, "tweet_id")
	if err != nil {
		return err
	}

	resp, err := call(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, resp)
}
