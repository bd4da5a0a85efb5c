package articles

import (
	"context"
	"errors"
	"strings"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

var (
	ErrNotFound      = apperr.NotFound("Article not found")
	ErrSectionExists  = apperr.Conflict("Article for this section already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Article, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("article query failed", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, section string) (Article, error) {
	a, ok, err := s.repo.GetBySection(ctx, strings.TrimSpace(section))
	if err != nil {
		return Article{}, apperr.Internal("article lookup failed", err)
	}
	if !ok {
		return Article{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Article, error) {
	item := Article{
		ID:          utils.NewID("art"),
		Section:     strings.TrimSpace(req.Section),
		Act:         strings.TrimSpace(req.Act),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, ErrDuplicateSection) {
			return Article{}, ErrSectionExists
		}
		return Article{}, apperr.Internal("article insert failed", err)
	}
	return item, nil
}
