package articles

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
	r.Get("/articles", h.List)
	r.Post("/articles", h.Create)
	r.Get("/articles/{section}", h.Get)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "articles list", err)
		return
	}

	log.Info("articles list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"articles": items,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	section := chi.URLParam(r, "section")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, section)
	if err != nil {
		transport.WriteAppError(w, log, "articles get", err)
		return
	}

	log.Info("articles get: ok", slog.String("section", item.Section))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("articles create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "articles create", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		transport.WriteAppError(w, log, "articles create", err)
		return
	}

	log.Info("articles create: ok", slog.String("id", item.ID), slog.String("section", item.Section))
	transport.WriteJSON(w, http.StatusCreated, item)
}
