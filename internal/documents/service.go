package documents

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/cache"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

var ErrTemplateNotFound = apperr.NotFound("Template not found")

type CatalogResult struct {
	Templates []Template `json:"templates"`
	Total     int        `json:"total"`
}

type Service struct {
	repo  Repository
	cache cache.Cache
	ttl   time.Duration
	log   *slog.Logger
}

func NewService(repo Repository, c cache.Cache, ttl time.Duration, log *slog.Logger) *Service {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Service{repo: repo, cache: c, ttl: ttl, log: log}
}

func (s *Service) Catalog(ctx context.Context, filter CatalogFilter) (CatalogResult, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	key := "documents:templates:" + filter.Query + ":" + filter.Category + ":" + filter.Complexity

	var result CatalogResult
	ok, err := cache.GetJSON(ctx, s.cache, key, &result)
	if err != nil {
		s.log.Warn("documents cache: read failed", slog.String("error", err.Error()))
	}
	if ok {
		return result, nil
	}

	all, err := s.repo.Templates(ctx)
	if err != nil {
		return CatalogResult{}, apperr.Internal("template query failed", err)
	}
	items := make([]Template, 0, len(all))
	for _, t := range all {
		if filter.Matches(t) {
			items = append(items, t)
		}
	}

	result = CatalogResult{Templates: items, Total: len(items)}
	if err := cache.SetJSON(ctx, s.cache, key, result, s.ttl); err != nil {
		s.log.Warn("documents cache: write failed", slog.String("error", err.Error()))
	}
	return result, nil
}

func (s *Service) Schema(ctx context.Context, id string) (Schema, error) {
	schema, ok, err := s.repo.Schema(ctx, strings.TrimSpace(id))
	if err != nil {
		return Schema{}, apperr.Internal("template lookup failed", err)
	}
	if !ok {
		return Schema{}, ErrTemplateNotFound
	}
	return schema, nil
}

// Save acknowledges a draft. Drafts are not stored.
func (s *Service) Save(ctx context.Context, req SaveRequest) (SaveResult, error) {
	return SaveResult{
		DocumentID: utils.NewID("draft"),
		Status:     "saved",
		Message:    "Document saved successfully",
	}, nil
}

func (s *Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	id := strings.TrimSpace(req.TemplateID)
	schema, ok, err := s.repo.Schema(ctx, id)
	if err != nil {
		return GenerateResult{}, apperr.Internal("template lookup failed", err)
	}
	if ok {
		if missing := schema.MissingFields(req.Data); len(missing) > 0 {
			return GenerateResult{}, apperr.Validation("missing required fields", missing)
		}
	} else {
		known, err := s.inCatalog(ctx, id)
		if err != nil {
			return GenerateResult{}, err
		}
		if !known {
			return GenerateResult{}, ErrTemplateNotFound
		}
	}

	docID := utils.NewID("doc")
	return GenerateResult{
		DocumentID:  docID,
		Status:      "generated",
		DownloadURL: "/api/documents/download/" + docID,
	}, nil
}

func (s *Service) inCatalog(ctx context.Context, id string) (bool, error) {
	all, err := s.repo.Templates(ctx)
	if err != nil {
		return false, apperr.Internal("template query failed", err)
	}
	for _, t := range all {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}
