package routes

import (
	"twitter-gate-service/controller"
	"twitter-gate-service/domain"
	"twitter-gate-service/middleware"
)

type Controllers struct {
	User     controller.User
	Tweet    controller.Tweet
	Timeline controller.Timeline
}

// Descriptor declares one exposed operation. Category names the rate
// limit bucket of the operation; an empty category means the operation
// is not limited.
type Descriptor struct {
	Endpoint string
	Category string
	Handler  middleware.Handler
}

func EndpointDescriptors(c Controllers) []Descriptor {
	return []Descriptor{
		{Endpoint: "get_user_profile", Handler: middleware.HandlerFunc(c.User.Profile)},
		{Endpoint: "get_user_by_id", Handler: middleware.HandlerFunc(c.User.Profile)},
		{Endpoint: "get_user_by_screen_name", Handler: middleware.HandlerFunc(c.User.ByScreenName)},
		{Endpoint: "get_user_followers", Category: domain.CategoryFollowActions, Handler: middleware.HandlerFunc(c.User.Followers)},
		{Endpoint: "get_user_following", Category: domain.CategoryFollowActions, Handler: middleware.HandlerFunc(c.User.Following)},
		{Endpoint: "get_user_followers_you_know", Category: domain.CategoryFollowActions, Handler: middleware.HandlerFunc(c.User.FollowersYouKnow)},
		{Endpoint: "get_user_subscriptions", Category: domain.CategoryFollowActions, Handler: middleware.HandlerFunc(c.User.Subscriptions)},

		{Endpoint: "post_tweet", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.Post)},
		{Endpoint: "delete_tweet", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.Delete)},
		{Endpoint: "get_tweet_details", Handler: middleware.HandlerFunc(c.Tweet.Details)},
		{Endpoint: "create_poll_tweet", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.CreatePoll)},
		{Endpoint: "vote_on_poll", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.Vote)},
		{Endpoint: "favorite_tweet", Category: domain.CategoryLikeActions, Handler: middleware.HandlerFunc(c.Tweet.Favorite)},
		{Endpoint: "unfavorite_tweet", Category: domain.CategoryLikeActions, Handler: middleware.HandlerFunc(c.Tweet.Unfavorite)},
		{Endpoint: "bookmark_tweet", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.Bookmark)},
		{Endpoint: "delete_bookmark", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.DeleteBookmark)},
		{Endpoint: "delete_all_bookmarks", Category: domain.CategoryTweetActions, Handler: middleware.HandlerFunc(c.Tweet.DeleteAllBookmarks)},

		{Endpoint: "get_timeline", Handler: middleware.HandlerFunc(c.Timeline.Home)},
		{Endpoint: "get_latest_timeline", Handler: middleware.HandlerFunc(c.Timeline.Latest)},
		{Endpoint: "search_twitter", Handler: middleware.HandlerFunc(c.Timeline.Search)},
		{Endpoint: "get_trends", Handler: middleware.HandlerFunc(c.Timeline.Trends)},
		{Endpoint: "get_highlights_tweets", Handler: middleware.HandlerFunc(c.Timeline.Highlights)},
		{Endpoint: "get_user_mentions", Handler: middleware.HandlerFunc(c.Timeline.Mentions)},
	}
}
