package cases

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
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
	r.Get("/cases", h.List)
	r.Post("/cases", h.Create)
	r.Get("/cases/{id}", h.Get)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx, httpx.FilterValue(r.URL.Query(), "status"))
	if err != nil {
		transport.WriteAppError(w, log, "cases list", err)
		return
	}

	log.Info("cases list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"cases": items,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		transport.WriteAppError(w, log, "cases get", err)
		return
	}

	log.Info("cases get: ok", slog.String("case_id", c.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"case": c,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("cases create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "cases create", err)
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "cases create", err)
		return
	}

	log.Info("cases create: ok", slog.String("case_id", result.CaseID), slog.String("case_type", req.CaseType))
	transport.WriteJSON(w, http.StatusOK, result)
}
