package reviews

import (
	"context"
	"strings"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Review, error) {
	filter.LawyerID = strings.TrimSpace(filter.LawyerID)
	filter.CaseType = strings.TrimSpace(filter.CaseType)
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("review query failed", err)
	}
	return items, nil
}

func (s *Service) Stats(ctx context.Context) ([]LawyerStats, error) {
	items, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperr.Internal("review stats query failed", err)
	}
	return items, nil
}

// Submit queues nothing; the review is acknowledged as pending moderation.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	return SubmitResult{
		Success:  true,
		ReviewID: utils.NewID("rev"),
		Status:   "submitted",
		Message:  "Review submitted successfully and is pending moderation",
	}, nil
}
