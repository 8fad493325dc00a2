package services

import (
	"context"

	"jobboard_backend/internal/feed"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/services/dto"
)

type FeedService interface {
	ExternalJobs(ctx context.Context) *dto.FeedResponse
}

type FeedServiceImpl struct {
	client *feed.Client
}

func NewFeedService(client *feed.Client) FeedService {
	return &FeedServiceImpl{client: client}
}

// ExternalJobs never fails: an unreachable or malformed upstream degrades to
// an empty list plus a user-visible warning.
func (s *FeedServiceImpl) ExternalJobs(ctx context.Context) *dto.FeedResponse {
	jobs, err := s.client.Fetch(ctx)
	if err != nil {
		logger.CtxWarn(ctx, "external job feed unavailable", "error", err.Error())
		return &dto.FeedResponse{
			Jobs:    []dto.FeedJob{},
			Warning: "External job feed is currently unavailable",
		}
	}
	if jobs == nil {
		jobs = []dto.FeedJob{}
	}
	return &dto.FeedResponse{Jobs: jobs}
}
