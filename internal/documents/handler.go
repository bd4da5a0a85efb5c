package documents

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
	r.Get("/documents/templates", h.ListTemplates)
	r.Get("/documents/templates/{id}", h.GetTemplate)
	r.Post("/documents/save", h.Save)
	r.Post("/documents/generate", h.Generate)
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	q := r.URL.Query()
	filter := CatalogFilter{
		Query:      q.Get("q"),
		Category:   httpx.FilterValue(q, "category"),
		Complexity: httpx.FilterValue(q, "complexity"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.Catalog(ctx, filter)
	if err != nil {
		transport.WriteAppError(w, log, "documents templates", err)
		return
	}

	log.Info("documents templates: ok", slog.Int("count", result.Total))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	schema, err := h.service.Schema(ctx, id)
	if err != nil {
		transport.WriteAppError(w, log, "documents template get", err)
		return
	}

	log.Info("documents template get: ok", slog.String("template_id", id))
	transport.WriteJSON(w, http.StatusOK, schema)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req SaveRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("documents save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "documents save", err)
		return
	}

	result, err := h.service.Save(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "documents save", err)
		return
	}

	log.Info("documents save: ok", slog.String("document_id", result.DocumentID), slog.String("template_id", req.TemplateID))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req GenerateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("documents generate: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "documents generate", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.Generate(ctx, req)
	if err != nil {
		transport.WriteAppError(w, log, "documents generate", err)
		return
	}

	log.Info("documents generate: ok", slog.String("document_id", result.DocumentID), slog.String("template_id", req.TemplateID))
	transport.WriteJSON(w, http.StatusOK, result)
}
