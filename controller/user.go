package controller

import (
	"context"

	"twitter-gate-service/domain"
	"twitter-gate-service/request"
)

type UserService interface {
	Profile(ctx context.Context, req domain.UserIdRequest) (*domain.TwitterUser, error)
	ByScreenName(ctx context.Context, req domain.ScreenNameRequest) (*domain.TwitterUser, error)
	Followers(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error)
	Following(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error)
	FollowersYouKnow(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error)
	Subscriptions(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error)
}

type User struct {
	service UserService
}

func NewUser(service UserService) User {
	return User{
		service: service,
	}
}

func (c User) Profile(ctx *request.Context) error {
	req := domain.UserIdRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.UserId, "user_id")
	if err != nil {
		return err
	}

	user, err := c.service.Profile(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, user)
}

func (c User) ByScreenName(ctx *request.Context) error {
	req := domain.ScreenNameRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.ScreenName, "screen_name")
	if err != nil {
		return err
	}

	user, err := c.service.ByScreenName(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, user)
}

func (c User) Followers(ctx *request.Context) error {
	return c.followList(ctx, c.service.Followers)
}

func (c User) Following(ctx *request.Context) error {
	return c.followList(ctx, c.service.Following)
}

func (c User) FollowersYouKnow(ctx *request.Context) error {
	return c.followList(ctx, c.service.FollowersYouKnow)
}

func (c User) Subscriptions(ctx *request.Context) error {
	return c.followList(ctx, c.service.Subscriptions)
}

func (c User) followList(
	ctx *request.Context,
	list func(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error),
) error {
	req := domain.FollowListRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.UserId, "user_id")
	if err != nil {
		return err
	}

	users, err := list(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, users)
}
