package accounts

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

func (h *Handler) Routes(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req RegisterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth register: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "auth register", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.service.Register(ctx, req)
	if err != nil {
		transport.WriteAppError(w, log, "auth register", err)
		return
	}

	log.Info("auth register: ok", slog.String("user_id", user.ID), slog.String("role", user.Role))
	transport.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "auth login", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Login(ctx, req)
	if err != nil {
		transport.WriteAppError(w, log, "auth login", err)
		return
	}

	log.Info("auth login: ok")
	transport.WriteJSON(w, http.StatusOK, resp)
}
