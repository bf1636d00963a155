package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"twitter-gate-service/domain"
)

const (
	timelineMinCount     = 5
	timelineMaxCount     = 100
	timelineDefaultCount = 100

	searchMinCount     = 10
	searchMaxCount     = 100
	searchDefaultCount = 100

	trendsDefaultCount = 50

	worldwideWoeid = 1
)

type TrendsCache interface {
	Get(ctx context.Context, woeid int) ([]domain.Trend, error)
	Set(ctx context.Context, woeid int, trends []domain.Trend) error
}

type Timeline struct {
	clients     TwitterClients
	trendsCache TrendsCache
	logger      log.Logger
}

func NewTimeline(clients TwitterClients, trendsCache TrendsCache, logger log.Logger) Timeline {
	return Timeline{
		clients:     clients,
		trendsCache: trendsCache,
		logger:      logger,
	}
}

// Home returns the algorithmically sorted home timeline.
// SeenTweetIds in the request is accepted but not forwarded, the v2
// timeline endpoint has no parameter for it.
func (s Timeline) Home(ctx context.Context, req domain.TimelineRequest) ([]domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, timelineMinCount, timelineMaxCount, timelineDefaultCount)
	tweets, err := modern.HomeTimeline(ctx, count, req.Cursor, false)
	if err != nil {
		return nil, errors.WithMessage(err, "get home timeline")
	}
	return tweets, nil
}

// Latest returns the reverse chronological timeline without replies and
// retweets.
func (s Timeline) Latest(ctx context.Context, req domain.TimelineRequest) ([]domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, timelineMinCount, timelineMaxCount, timelineDefaultCount)
	tweets, err := modern.HomeTimeline(ctx, count, "", true)
	if err != nil {
		return nil, errors.WithMessage(err, "get home timeline")
	}
	return tweets, nil
}

func (s Timeline) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	sortOrder := "relevancy"
	if req.Product == "Latest" {
		sortOrder = "recency"
	}

	count := clampCount(req.Count, searchMinCount, searchMaxCount, searchDefaultCount)
	if req.Count != nil && *req.Count != count {
		s.logger.Info(ctx, "search count is out of range, clamped",
			log.Int("requested", *req.Count),
			log.Int("effective", count),
		)
	}

	tweets, err := modern.SearchRecent(ctx, req.Query, sortOrder, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "search recent tweets")
	}
	return tweets, nil
}

// Trends goes through the legacy handle: v2 requires a location model
// the legacy API exposes as a single WOEID. Worldwide trends are cached
// for a short time, the category filter and truncation stay local.
func (s Timeline) Trends(ctx context.Context, req domain.TrendsRequest) ([]domain.Trend, error) {
	trends, err := s.trendsCache.Get(ctx, worldwideWoeid)
	if errors.Is(err, domain.ErrTrendsCacheMiss) {
		_, legacy, err := s.clients.Clients(ctx)
		if err != nil {
			return nil, err
		}
		trends, err = legacy.PlaceTrends(ctx, worldwideWoeid)
		if err != nil {
			return nil, errors.WithMessage(err, "get place trends")
		}
		err = s.trendsCache.Set(ctx, worldwideWoeid, trends)
		if err != nil {
			return nil, errors.WithMessage(err, "trends cache set")
		}
	} else if err != nil {
		return nil, errors.WithMessage(err, "trends cache get")
	}

	if req.Category != "" {
		filtered := make([]domain.Trend, 0)
		for _, trend := range trends {
			if trend.Category == req.Category {
				filtered = append(filtered, trend)
			}
		}
		trends = filtered
	}

	count := trendsDefaultCount
	if req.Count != nil && *req.Count >= 0 {
		count = *req.Count
	}
	if len(trends) > count {
		trends = trends[:count]
	}
	return trends, nil
}

// Highlights is proxied through the user timeline, the platform API has
// no highlights endpoint.
func (s Timeline) Highlights(ctx context.Context, req domain.UserTimelineRequest) ([]domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, timelineMinCount, timelineMaxCount, timelineDefaultCount)
	tweets, err := modern.UserTweets(ctx, req.UserId, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "get user tweets")
	}
	return tweets, nil
}

func (s Timeline) Mentions(ctx context.Context, req domain.UserTimelineRequest) ([]domain.Tweet, error) {
	modern, _, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	count := clampCount(req.Count, timelineMinCount, timelineMaxCount, timelineDefaultCount)
	tweets, err := modern.UserMentions(ctx, req.UserId, count, req.Cursor)
	if err != nil {
		return nil, errors.WithMessage(err, "get user mentions")
	}
	return tweets, nil
}
