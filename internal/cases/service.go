package cases

import (
	"context"
	"errors"
	"strings"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

var ErrNotFound = apperr.NotFound("Case not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, status string) ([]Case, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !IsValidStatus(status) {
		return nil, apperr.Validation("invalid query", map[string]string{"status": "oneof"})
	}
	items, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, apperr.Internal("case query failed", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (Case, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Case{}, ErrNotFound
		}
		return Case{}, apperr.Internal("case lookup failed", err)
	}
	return c, nil
}

// Create acknowledges a new case. The case is not stored and cannot be fetched by its id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	return CreateResult{
		Success: true,
		CaseID:  utils.NewID("case"),
		Status:  "created",
		Message: "Case created successfully",
	}, nil
}
