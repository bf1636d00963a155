package service

import (
	"context"

	"github.com/pkg/errors"
	"twitter-gate-service/domain"
)

const (
	followListMaxCount     = 100
	followListDefaultCount = 100
)

type User struct {
	clients TwitterClients
}

func NewUser(clients TwitterClients) User {
	return User{
		clients: clients,
	}
}

func (s User) Profile(ctx context.Context, req domain.UserIdRequest) (*domain.TwitterUser, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	user, err := modern.User(ctx, req.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "get user")
	}
	return user, nil
}

func (s User) ByScreenName(ctx context.Context, req domain.ScreenNameRequest) (*domain.TwitterUser, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	user, err := modern.UserByUsername(ctx, req.ScreenName)
	if err != nil {
		return nil, errors.WithMessage(err, "get user by username")
	}
	return user, nil
}

func (s User) Followers(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, 1, followListMaxCount, followListDefaultCount)
	followers, err := modern.Followers(ctx, req.UserId, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "get followers")
	}
	return followers, nil
}

func (s User) Following(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, 1, followListMaxCount, followListDefaultCount)
	following, err := modern.Following(ctx, req.UserId, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "get following")
	}
	return following, nil
}

// FollowersYouKnow approximates mutual followers by truncating the
// follower list to the requested count. The platform API exposes no
// intersection endpoint, so this is a documented degradation, not a bug.
func (s User) FollowersYouKnow(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, 1, followListMaxCount, followListDefaultCount)
	followers, err := modern.Followers(ctx, req.UserId, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "get followers")
	}
	if len(followers) > count {
		followers = followers[:count]
	}
	return followers, nil
}

// Subscriptions is served by the following list, the platform API has no
// subscriptions concept reachable through this generation.
func (s User) Subscriptions(ctx context.Context, req domain.FollowListRequest) ([]domain.TwitterUser, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, 1, followListMaxCount, followListDefaultCount)
	subscriptions, err := modern.Following(ctx, req.UserId, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "get following")
	}
	return subscriptions, nil
}
