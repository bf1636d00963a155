package twitter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/json"
	"twitter-gate-service/domain"
)

const (
	DefaultApiUrl    = "https://api.twitter.com"
	DefaultUploadUrl = "https://upload.twitter.com"
	DefaultTimeout   = 30 * time.Second
)

type Config struct {
	ApiUrl    string
	UploadUrl string
	Timeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.ApiUrl == "" {
		c.ApiUrl = DefaultApiUrl
	}
	if c.UploadUrl == "" {
		c.UploadUrl = DefaultUploadUrl
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Modern is the v2 API handle. Lookup methods return nil (or an empty
// slice) when the payload envelope carries no data.
type Modern interface {
	User(ctx context.Context, userId string) (*domain.TwitterUser, error)
	UserByUsername(ctx context.Context, screenName string) (*domain.TwitterUser, error)
	Followers(ctx context.Context, userId string, count int, cursor string) ([]domain.TwitterUser, error)
	Following(ctx context.Context, userId string, count int, cursor string) ([]domain.TwitterUser, error)
	CreateTweet(ctx context.Context, req CreateTweetRequest) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, tweetId string) (bool, error)
	Tweet(ctx context.Context, tweetId string) (*domain.Tweet, error)
	Like(ctx context.Context, tweetId string) (bool, error)
	Unlike(ctx context.Context, tweetId string) (bool, error)
	Bookmark(ctx context.Context, tweetId string) (bool, error)
	RemoveBookmark(ctx context.Context, tweetId string) (bool, error)
	Bookmarks(ctx context.Context) ([]domain.Tweet, error)
	HomeTimeline(ctx context.Context, count int, cursor string, excludeRepliesRetweets bool) ([]domain.Tweet, error)
	SearchRecent(ctx context.Context, query string, sortOrder string, count int, cursor string) ([]domain.Tweet, error)
	UserTweets(ctx context.Context, userId string, count int, cursor string) ([]domain.Tweet, error)
	UserMentions(ctx context.Context, userId string, count int, cursor string) ([]domain.Tweet, error)
}

type CreateTweetRequest struct {
	Text                string
	InReplyToTweetId    string
	MediaIds            []string
	PollOptions         []string
	PollDurationMinutes int
}

// Client talks to the v2 API. Reads go through the bearer-authenticated
// client, user-context operations are signed with OAuth1.
type Client struct {
	appCli      *httpcli.Client
	userCli     *httpcli.Client
	apiUrl      string
	bearerToken string

	meLock       sync.Mutex
	authedUserId string
}

func NewClient(creds Credentials, config Config) *Client {
	config = config.withDefaults()

	oauthConfig := oauth1.NewConfig(creds.ApiKey, creds.ApiSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
	userCli := httpcli.NewWithClient(oauthConfig.Client(oauth1.NoContext, token))
	userCli.GlobalRequestConfig().Timeout = config.Timeout

	appCli := httpcli.New()
	appCli.GlobalRequestConfig().Timeout = config.Timeout

	return &Client{
		appCli:      appCli,
		userCli:     userCli,
		apiUrl:      config.ApiUrl,
		bearerToken: creds.BearerToken,
	}
}

func (c *Client) User(ctx context.Context, userId string) (*domain.TwitterUser, error) {
	return c.user(ctx, c.url("/2/users/%s", userId))
}

func (c *Client) UserByUsername(ctx context.Context, screenName string) (*domain.TwitterUser, error) {
	return c.user(ctx, c.url("/2/users/by/username/%s", screenName))
}

func (c *Client) user(ctx context.Context, url string) (*domain.TwitterUser, error) {
	envelope := userEnvelope{}
	req := c.appRequest(c.appCli.Get(url)).
		QueryParams(map[string]any{"user.fields": userFields})
	err := c.call(ctx, req, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, nil
	}
	user := toUser(*envelope.Data)
	return &user, nil
}

func (c *Client) Followers(ctx context.Context, userId string, count int, cursor string) ([]domain.TwitterUser, error) {
	return c.userList(ctx, c.url("/2/users/%s/followers", userId), count, cursor)
}

func (c *Client) Following(ctx context.Context, userId string, count int, cursor string) ([]domain.TwitterUser, error) {
	return c.userList(ctx, c.url("/2/users/%s/following", userId), count, cursor)
}

func (c *Client) userList(ctx context.Context, url string, count int, cursor string) ([]domain.TwitterUser, error) {
	query := map[string]any{
		"max_results": count,
		"user.fields": "id,name,username",
	}
	if cursor != "" {
		query["pagination_token"] = cursor
	}
	envelope := usersEnvelope{}
	err := c.call(ctx, c.appRequest(c.appCli.Get(url)).QueryParams(query), &envelope)
	if err != nil {
		return nil, err
	}
	users := make([]domain.TwitterUser, 0, len(envelope.Data))
	for _, data := range envelope.Data {
		users = append(users, toUser(data))
	}
	return users, nil
}

func (c *Client) CreateTweet(ctx context.Context, req CreateTweetRequest) (*domain.Tweet, error) {
	body := createTweetBody{Text: req.Text}
	if req.InReplyToTweetId != "" {
		body.Reply = &replyBody{InReplyToTweetId: req.InReplyToTweetId}
	}
	if len(req.MediaIds) > 0 {
		body.Media = &mediaBody{MediaIds: req.MediaIds}
	}
	if len(req.PollOptions) > 0 {
		body.Poll = &pollBody{
			Options:         req.PollOptions,
			DurationMinutes: req.PollDurationMinutes,
		}
	}

	envelope := tweetEnvelope{}
	err := c.call(ctx, c.userCli.Post(c.url("/2/tweets")).JsonRequestBody(body), &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, nil
	}
	tweet := toTweet(*envelope.Data)
	return &tweet, nil
}

func (c *Client) DeleteTweet(ctx context.Context, tweetId string) (bool, error) {
	envelope := deletedEnvelope{}
	err := c.call(ctx, c.userCli.Delete(c.url("/2/tweets/%s", tweetId)), &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Data.Deleted, nil
}

func (c *Client) Tweet(ctx context.Context, tweetId string) (*domain.Tweet, error) {
	envelope := tweetEnvelope{}
	req := c.appRequest(c.appCli.Get(c.url("/2/tweets/%s", tweetId))).
		QueryParams(map[string]any{"tweet.fields": tweetFields})
	err := c.call(ctx, req, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, nil
	}
	tweet := toTweet(*envelope.Data)
	return &tweet, nil
}

func (c *Client) Like(ctx context.Context, tweetId string) (bool, error) {
	me, err := c.me(ctx)
	if err != nil {
		return false, err
	}
	envelope := likedEnvelope{}
	req := c.userCli.Post(c.url("/2/users/%s/likes", me)).JsonRequestBody(tweetIdBody{TweetId: tweetId})
	err = c.call(ctx, req, &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Data.Liked, nil
}

func (c *Client) Unlike(ctx context.Context, tweetId string) (bool, error) {
	me, err := c.me(ctx)
	if err != nil {
		return false, err
	}
	envelope := likedEnvelope{}
	err = c.call(ctx, c.userCli.Delete(c.url("/2/users/%s/likes/%s", me, tweetId)), &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Data.Liked, nil
}

func (c *Client) Bookmark(ctx context.Context, tweetId string) (bool, error) {
	me, err := c.me(ctx)
	if err != nil {
		return false, err
	}
	envelope := bookmarkedEnvelope{}
	req := c.userCli.Post(c.url("/2/users/%s/bookmarks", me)).JsonRequestBody(tweetIdBody{TweetId: tweetId})
	err = c.call(ctx, req, &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Data.Bookmarked, nil
}

func (c *Client) RemoveBookmark(ctx context.Context, tweetId string) (bool, error) {
	me, err := c.me(ctx)
	if err != nil {
		return false, err
	}
	envelope := bookmarkedEnvelope{}
	err = c.call(ctx, c.userCli.Delete(c.url("/2/users/%s/bookmarks/%s", me, tweetId)), &envelope)
	if err != nil {
		return false, err
	}
	return envelope.Data.Bookmarked, nil
}

func (c *Client) Bookmarks(ctx context.Context) ([]domain.Tweet, error) {
	me, err := c.me(ctx)
	if err != nil {
		return nil, err
	}
	req := c.userCli.Get(c.url("/2/users/%s/bookmarks", me)).
		QueryParams(map[string]any{"tweet.fields": tweetFields})
	return c.tweetList(ctx, req)
}

func (c *Client) HomeTimeline(ctx context.Context, count int, cursor string, excludeRepliesRetweets bool) ([]domain.Tweet, error) {
	me, err := c.me(ctx)
	if err != nil {
		return nil, err
	}
	query := map[string]any{
		"max_results":  count,
		"tweet.fields": tweetFields,
	}
	if cursor != "" {
		query["pagination_token"] = cursor
	}
	if excludeRepliesRetweets {
		query["exclude"] = "replies,retweets"
	}
	req := c.userCli.Get(c.url("/2/users/%s/timelines/reverse_chronological", me)).QueryParams(query)
	return c.tweetList(ctx, req)
}

func (c *Client) SearchRecent(ctx context.Context, query string, sortOrder string, count int, cursor string) ([]domain.Tweet, error) {
	queryParams := map[string]any{
		"query":        query,
		"max_results":  count,
		"sort_order":   sortOrder,
		"tweet.fields": tweetFields,
	}
	if cursor != "" {
		queryParams["next_token"] = cursor
	}
	req := c.appRequest(c.appCli.Get(c.url("/2/tweets/search/recent"))).QueryParams(queryParams)
	return c.tweetList(ctx, req)
}

func (c *Client) UserTweets(ctx context.Context, userId string, count int, cursor string) ([]domain.Tweet, error) {
	return c.userTweetList(ctx, c.url("/2/users/%s/tweets", userId), count, cursor)
}

func (c *Client) UserMentions(ctx context.Context, userId string, count int, cursor string) ([]domain.Tweet, error) {
	return c.userTweetList(ctx, c.url("/2/users/%s/mentions", userId), count, cursor)
}

func (c *Client) userTweetList(ctx context.Context, url string, count int, cursor string) ([]domain.Tweet, error) {
	query := map[string]any{
		"max_results":  count,
		"tweet.fields": tweetFields,
	}
	if cursor != "" {
		query["pagination_token"] = cursor
	}
	return c.tweetList(ctx, c.appRequest(c.appCli.Get(url)).QueryParams(query))
}

func (c *Client) tweetList(ctx context.Context, req *httpcli.RequestBuilder) ([]domain.Tweet, error) {
	envelope := tweetsEnvelope{}
	err := c.call(ctx, req, &envelope)
	if err != nil {
		return nil, err
	}
	tweets := make([]domain.Tweet, 0, len(envelope.Data))
	for _, data := range envelope.Data {
		tweets = append(tweets, toTweet(data))
	}
	return tweets, nil
}

// me resolves and caches the id of the authenticated user, several
// user-context endpoints are addressed by it.
func (c *Client) me(ctx context.Context) (string, error) {
	c.meLock.Lock()
	defer c.meLock.Unlock()

	if c.authedUserId != "" {
		return c.authedUserId, nil
	}

	envelope := userEnvelope{}
	err := c.call(ctx, c.userCli.Get(c.url("/2/users/me")), &envelope)
	if err != nil {
		return "", err
	}
	if envelope.Data == nil {
		return "", errors.New("empty payload for authenticated user")
	}

	c.authedUserId = envelope.Data.Id
	return c.authedUserId, nil
}

func (c *Client) appRequest(req *httpcli.RequestBuilder) *httpcli.RequestBuilder {
	return req.Header("Authorization", "Bearer "+c.bearerToken)
}

func (c *Client) call(ctx context.Context, req *httpcli.RequestBuilder, result any) error {
	resp, err := req.Do(ctx)
	if err != nil {
		return errors.WithMessage(err, "call twitter api")
	}
	defer resp.Close()

	body, err := resp.UnsafeBody()
	if err != nil {
		return errors.WithMessage(err, "read response body")
	}
	if !resp.IsSuccess() {
		return domain.UpstreamError{
			Api:        "v2",
			StatusCode: resp.StatusCode(),
			Body:       string(body),
		}
	}

	err = json.Unmarshal(body, result)
	if err != nil {
		return errors.WithMessage(err, "json unmarshal response")
	}
	return nil
}

func (c *Client) url(format string, args ...any) string {
	return c.apiUrl + fmt.Sprintf(format, args...)
}

func toUser(data userData) domain.TwitterUser {
	return domain.TwitterUser{
		Id:              data.Id,
		Name:            data.Name,
		Username:        data.Username,
		ProfileImageUrl: data.ProfileImageUrl,
		Description:     data.Description,
	}
}

func toTweet(data tweetData) domain.Tweet {
	return domain.Tweet{
		Id:        data.Id,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
		AuthorId:  data.AuthorId,
	}
}
