package reviews

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

// Routes mounts the review endpoints; limit wraps submission when set.
func (h *Handler) Routes(r chi.Router, limit func(http.Handler) http.Handler) {
	submit := http.Handler(http.HandlerFunc(h.Submit))
	if limit != nil {
		submit = limit(submit)
	}
	r.Get("/reviews", h.List)
	r.Method(http.MethodPost, "/reviews", submit)
	r.Get("/reviews/stats", h.Stats)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	q := r.URL.Query()
	filter := Filter{
		LawyerID: q.Get("lawyerId"),
		CaseType: httpx.FilterValue(q, "caseType"),
		Query:    q.Get("q"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx, filter)
	if err != nil {
		transport.WriteAppError(w, log, "reviews list", err)
		return
	}

	log.Info("reviews list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": items,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.Stats(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "reviews stats", err)
		return
	}

	log.Info("reviews stats: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"lawyerStats": items,
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req SubmitRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("reviews submit: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "reviews submit", err)
		return
	}

	result, err := h.service.Submit(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "reviews submit", err)
		return
	}

	log.Info("reviews submit: ok", slog.String("review_id", result.ReviewID), slog.String("lawyer_id", req.LawyerID), slog.Int("rating", req.Rating))
	transport.WriteJSON(w, http.StatusOK, result)
}
