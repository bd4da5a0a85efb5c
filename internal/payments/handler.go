package payments

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
	r.Get("/payments/methods", h.ListMethods)
	r.Post("/payments/methods", h.AddMethod)
	r.Post("/payments/process", h.Process)
	r.Get("/payments/transactions", h.ListTransactions)
	r.Get("/escrow", h.ListEscrow)
	r.Post("/escrow/release", h.Release)
}

func (h *Handler) ListMethods(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.PaymentMethods(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "payments list methods", err)
		return
	}

	log.Info("payments list methods: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"paymentMethods": items,
	})
}

func (h *Handler) AddMethod(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req AddMethodRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("payments add method: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "payments add method", err)
		return
	}

	result, err := h.service.AddMethod(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "payments add method", err)
		return
	}

	log.Info("payments add method: ok", slog.String("payment_method_id", result.PaymentMethodID), slog.String("type", req.Type))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req ProcessRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("payments process: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "payments process", err)
		return
	}

	result, err := h.service.Process(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "payments process", err)
		return
	}

	log.Info("payments process: ok",
		slog.String("transaction_id", result.TransactionID),
		slog.Float64("amount", result.Amount),
		slog.Bool("escrow", req.Escrow),
	)
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.Transactions(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "payments list transactions", err)
		return
	}

	log.Info("payments list transactions: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": items,
	})
}

func (h *Handler) ListEscrow(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.EscrowAccounts(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "escrow list", err)
		return
	}

	log.Info("escrow list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"escrowAccounts": items,
	})
}

func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req ReleaseRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("escrow release: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "escrow release", err)
		return
	}

	result, err := h.service.Release(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "escrow release", err)
		return
	}

	log.Info("escrow release: ok",
		slog.String("escrow_id", req.EscrowID),
		slog.String("milestone_id", req.MilestoneID),
		slog.Float64("amount", result.ReleaseAmount),
	)
	transport.WriteJSON(w, http.StatusOK, result)
}
