package chat

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kaushals1950/DhaaraAI/internal/httpx"
	"github.com/kaushals1950/DhaaraAI/internal/middleware"
	"github.com/kaushals1950/DhaaraAI/internal/transport"
)

type Request struct {
	Message string `json:"message"`
}

type Handler struct {
	log *slog.Logger
}

func NewHandler(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// Routes mounts the chat endpoints; limit wraps the classifier endpoint when set.
func (h *Handler) Routes(r chi.Router, limit func(http.Handler) http.Handler) {
	post := http.Handler(http.HandlerFunc(h.Post))
	if limit != nil {
		post = limit(post)
	}
	r.Method(http.MethodPost, "/chat", post)
	r.Get("/chat/categories", h.Categories)
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req Request
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("chat post: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		log.Warn("chat post: missing message")
		transport.WriteError(w, http.StatusBadRequest, "Message is required", nil)
		return
	}

	analysis := Classify(req.Message)
	log.Info("chat post: ok", slog.String("category", analysis.Category))
	transport.WriteJSON(w, http.StatusOK, analysis)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := make([]Rule, 0, len(Rules)+1)
	categories = append(categories, Rules...)
	categories = append(categories, Rule{Category: GeneralCategory, Keywords: []string{}})
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
