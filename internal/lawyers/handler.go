package lawyers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/httpx"
	"github.com/kaushals1950/DhaaraAI/internal/middleware"
	"github.com/kaushals1950/DhaaraAI/internal/transport"
	"github.com/kaushals1950/DhaaraAI/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/lawyers", h.List)
	r.Post("/lawyers", h.Create)
	r.Get("/lawyers/{id}", h.Get)
	r.Delete("/lawyers/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	filter, err := parseFilter(r)
	if err != nil {
		transport.WriteAppError(w, log, "lawyers list", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.List(ctx, filter)
	if err != nil {
		transport.WriteAppError(w, log, "lawyers list", err)
		return
	}

	log.Info("lawyers list: ok", slog.Int("count", len(result.Lawyers)), slog.Int("total", result.Total))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	profile, err := h.service.Profile(ctx, id)
	if err != nil {
		transport.WriteAppError(w, log, "lawyers get", err)
		return
	}

	log.Info("lawyers get: ok", slog.String("lawyer_id", profile.Lawyer.ID), slog.Int("reviews", len(profile.Reviews)))
	transport.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("lawyers create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "lawyers create", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	lawyer, err := h.service.Create(ctx, req)
	if err != nil {
		transport.WriteAppError(w, log, "lawyers create", err)
		return
	}

	log.Info("lawyers create: ok", slog.String("lawyer_id", lawyer.ID))
	transport.WriteJSON(w, http.StatusCreated, lawyer)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		transport.WriteAppError(w, log, "lawyers delete", err)
		return
	}

	log.Info("lawyers delete: ok", slog.String("lawyer_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()
	limit, offset, err := httpx.ParseLimitOffset(q, 0, 100)
	if err != nil {
		return Filter{}, apperr.Validation("invalid query", map[string]string{"pagination": err.Error()})
	}

	filter := Filter{
		Query:     q.Get("q"),
		Specialty: httpx.FilterValue(q, "specialty"),
		Location:  httpx.FilterValue(q, "location"),
		Limit:     limit,
		Offset:    offset,
	}

	details := map[string]string{}
	for key, dst := range map[string]**float64{
		"minRate":   &filter.MinRate,
		"maxRate":   &filter.MaxRate,
		"minRating": &filter.MinRating,
	} {
		v, err := httpx.ParseOptionalFloat(q, key)
		if err != nil {
			details[key] = "number"
			continue
		}
		*dst = v
	}
	if len(details) > 0 {
		return Filter{}, apperr.Validation("invalid query", details)
	}
	return filter, nil
}
