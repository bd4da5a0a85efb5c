package communications

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kaushals1950/DhaaraAI/internal/httpx"
	"github.com/kaushals1950/DhaaraAI/internal/middleware"
	"github.com/kaushals1950/DhaaraAI/internal/transport"
	"github.com/kaushals1950/DhaaraAI/internal/validation"
)

// Multipart framing allowance on top of the file size limit.
const multipartOverhead = 1 << 20

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	maxBytes int64
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		maxBytes: maxUploadBytes,
	}
}

// Routes mounts the communication endpoints; limit wraps the upload endpoint when set.
func (h *Handler) Routes(r chi.Router, limit func(http.Handler) http.Handler) {
	upload := http.Handler(http.HandlerFunc(h.Upload))
	if limit != nil {
		upload = limit(upload)
	}

	r.Route("/communications", func(r chi.Router) {
		r.Get("/calls", h.ListCalls)
		r.Post("/calls", h.ScheduleCall)
		r.Get("/availability", h.CallAvailability)
		r.Get("/conversations", h.ListConversations)
		r.Get("/messages", h.ListMessages)
		r.Post("/messages", h.SendMessage)
		r.Method(http.MethodPost, "/upload", upload)
	})
}

func (h *Handler) CallAvailability(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	result, err := h.service.CallAvailability(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		transport.WriteAppError(w, log, "communications availability", err)
		return
	}

	log.Info("communications availability: ok", slog.String("date", result.Date), slog.Int("slots", len(result.Slots)))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ScheduleCall(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req ScheduleCallRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("communications schedule call: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "communications schedule call", err)
		return
	}

	result, err := h.service.ScheduleCall(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "communications schedule call", err)
		return
	}

	log.Info("communications schedule call: ok",
		slog.String("call_id", result.CallID),
		slog.String("lawyer_id", req.LawyerID),
		slog.String("type", req.Type),
	)
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ListCalls(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.CallSessions(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "communications list calls", err)
		return
	}

	log.Info("communications list calls: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"callSessions": items,
	})
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.Conversations(ctx)
	if err != nil {
		transport.WriteAppError(w, log, "communications list conversations", err)
		return
	}

	log.Info("communications list conversations: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"conversations": items,
	})
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	q := r.URL.Query()
	var conversationID *string
	if q.Has("conversationId") {
		id := q.Get("conversationId")
		conversationID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.Messages(ctx, conversationID)
	if err != nil {
		transport.WriteAppError(w, log, "communications list messages", err)
		return
	}

	log.Info("communications list messages: ok", slog.String("conversation_id", q.Get("conversationId")), slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"messages": items,
	})
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)

	var req SendMessageRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("communications send message: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Check(req); err != nil {
		transport.WriteAppError(w, log, "communications send message", err)
		return
	}

	result, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		transport.WriteAppError(w, log, "communications send message", err)
		return
	}

	log.Info("communications send message: ok", slog.String("message_id", result.MessageID), slog.String("conversation_id", req.ConversationID))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := middleware.RequestLogger(h.log, r)
	tooLarge := map[string]string{"file": "max " + strconv.FormatInt(h.maxBytes, 10) + " bytes"}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Warn("communications upload: body too large")
			transport.WriteError(w, http.StatusBadRequest, "file too large", tooLarge)
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			log.Warn("communications upload: invalid form", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
			return
		}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("communications upload: no file")
		transport.WriteError(w, http.StatusBadRequest, "No file provided", nil)
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		log.Warn("communications upload: file too large", slog.Int64("size", header.Size))
		transport.WriteError(w, http.StatusBadRequest, "file too large", tooLarge)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.Upload(ctx, Upload{
		ConversationID: r.FormValue("conversationId"),
		FileName:       header.Filename,
		Size:           header.Size,
		ContentType:    header.Header.Get("Content-Type"),
	}, file)
	if err != nil {
		transport.WriteAppError(w, log, "communications upload", err)
		return
	}

	log.Info("communications upload: ok",
		slog.String("file_id", result.FileID),
		slog.String("conversation_id", r.FormValue("conversationId")),
		slog.Int64("size", result.FileSize),
	)
	transport.WriteJSON(w, http.StatusOK, result)
}
