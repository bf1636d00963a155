package controller

import (
	"context"

	"twitter-gate-service/domain"
	"twitter-gate-service/request"
)

type TimelineService interface {
	Home(ctx context.Context, req domain.TimelineRequest) ([]domain.Tweet, error)
	Latest(ctx context.Context, req domain.TimelineRequest) ([]domain.Tweet, error)
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Tweet, error)
	Trends(ctx context.Context, req domain.TrendsRequest) ([]domain.Trend, error)
	Highlights(ctx context.Context, req domain.UserTimelineRequest) ([]domain.Tweet, error)
	Mentions(ctx context.Context, req domain.UserTimelineRequest) ([]domain.Tweet, error)
}

type Timeline struct {
	service TimelineService
}

func NewTimeline(service TimelineService) Timeline {
	return Timeline{
		service: service,
	}
}

func (c Timeline) Home(ctx *request.Context) error {
	req := domain.TimelineRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}

	tweets, err := c.service.Home(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweets)
}

func (c Timeline) Latest(ctx *request.Context) error {
	req := domain.TimelineRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}

	tweets, err := c.service.Latest(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweets)
}

func (c Timeline) Search(ctx *request.Context) error {
	req := domain.SearchRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.Query, "query")
	if err != nil {
		return err
	}

	tweets, err := c.service.Search(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweets)
}

func (c Timeline) Trends(ctx *request.Context) error {
	req := domain.TrendsRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}

	trends, err := c.service.Trends(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, trends)
}

func (c Timeline) Highlights(ctx *request.Context) error {
	return c.userTimeline(ctx, c.service.Highlights)
}

func (c Timeline) Mentions(ctx *request.Context) error {
	return c.userTimeline(ctx, c.service.Mentions)
}

func (c Timeline) userTimeline(
	ctx *request.Context,
	list func(ctx context.Context, req domain.UserTimelineRequest) ([]domain.Tweet, error),
) error {
	req := domain.UserTimelineRequest{}
	err := bindRequest(ctx, &req)
	if err != nil {
		return err
	}
	err = requireParam(req.UserId, "user_id")
	if err != nil {
		return err
	}

	tweets, err := list(ctx.Context(), req)
	if err != nil {
		return err
	}
	return respondJson(ctx, tweets)
}
