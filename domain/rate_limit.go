package domain

import (
	"time"
)

const (
	CategoryTweetActions  = "tweet_actions"
	CategoryDmActions     = "dm_actions"
	CategoryFollowActions = "follow_actions"
	CategoryLikeActions   = "like_actions"
)

type RateLimitPolicy struct {
	Limit  int
	Window time.Duration
}

// DefaultRateLimitPolicies mirrors the documented per-category limits of
// the Twitter API. The table is fixed at process start.
func DefaultRateLimitPolicies() map[string]RateLimitPolicy {
	return map[string]RateLimitPolicy{
		CategoryTweetActions:  {Limit: 300, Window: 15 * time.Minute},
		CategoryDmActions:     {Limit: 1000, Window: 15 * time.Minute},
		CategoryFollowActions: {Limit: 400, Window: 24 * time.Hour},
		CategoryLikeActions:   {Limit: 1000, Window: 24 * time.Hour},
	}
}
