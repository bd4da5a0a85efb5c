package lawyers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/cache"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

var ErrNotFound = apperr.NotFound("Lawyer not found")

const cachePrefix = "lawyers:"

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
	return &Service{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		log:   log,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) (ListResult, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Specialty = strings.TrimSpace(filter.Specialty)
	filter.Location = strings.TrimSpace(filter.Location)

	key := filter.cacheKey()
	var cached ListResult
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return ListResult{}, apperr.Internal("lawyer query failed", err)
	}
	SortDirectory(items)

	result := ListResult{Lawyers: page(items, filter.Limit, filter.Offset), Total: len(items)}
	s.writeCache(ctx, key, result)
	return result, nil
}

func (s *Service) Profile(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	key := cachePrefix + "profile:" + id

	var cached Profile
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	lawyer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, apperr.Internal("lawyer lookup failed", err)
	}

	reviews, err := s.repo.ReviewsFor(ctx, id)
	if err != nil {
		return Profile{}, apperr.Internal("lawyer reviews lookup failed", err)
	}
	if reviews == nil {
		reviews = []ProfileReview{}
	}

	profile := Profile{Lawyer: lawyer, Reviews: reviews}
	s.writeCache(ctx, key, profile)
	return profile, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Lawyer, error) {
	availability := req.Availability
	if availability == "" {
		availability = AvailabilityAvailable
	}
	lawyer := Lawyer{
		ID:             utils.NewID("lawyer"),
		Name:           strings.TrimSpace(req.Name),
		Specialty:      trimAll(req.Specialty),
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
		Experience:     req.Experience,
		HourlyRate:     req.HourlyRate,
		Location:       strings.TrimSpace(req.Location),
		Bio:            strings.TrimSpace(req.Bio),
		Education:      trimAll(req.Education),
		Certifications: trimAll(req.Certifications),
		Languages:      trimAll(req.Languages),
		Availability:   availability,
		ProfileImage:   strings.TrimSpace(req.ProfileImage),
		CaseTypes:      trimAll(req.CaseTypes),
		SuccessRate:    req.SuccessRate,
	}
	if err := s.repo.Create(ctx, lawyer); err != nil {
		return Lawyer{}, apperr.Internal("lawyer insert failed", err)
	}
	s.invalidate(ctx)
	return lawyer, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return apperr.Internal("lawyer delete failed", err)
	}
	s.invalidate(ctx)
	return nil
}

// invalidate drops every cached list and profile after a write.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, cachePrefix); err != nil {
		s.log.Warn("lawyers cache: invalidate failed", slog.String("error", err.Error()))
	}
}

// Cache failures degrade to a miss.
func (s *Service) readCache(ctx context.Context, key string, dst interface{}) bool {
	ok, err := cache.GetJSON(ctx, s.cache, key, dst)
	if err != nil {
		s.log.Warn("lawyers cache: read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return ok
}

func (s *Service) writeCache(ctx context.Context, key string, v interface{}) {
	if err := cache.SetJSON(ctx, s.cache, key, v, s.ttl); err != nil {
		s.log.Warn("lawyers cache: write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func page(items []Lawyer, limit, offset int) []Lawyer {
	if offset >= len(items) {
		return []Lawyer{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
