package communications

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/schedule"
	"github.com/kaushals1950/DhaaraAI/internal/storage"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

type Service struct {
	repo     Repository
	store    storage.FileStore
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, store storage.FileStore, location *time.Location) *Service {
	if store == nil {
		store = storage.NewURLStore("")
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		store:    store,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) ScheduleCall(ctx context.Context, req ScheduleCallRequest) (ScheduleCallResult, error) {
	callID := utils.NewID("call")
	return ScheduleCallResult{
		Success:       true,
		CallID:        callID,
		Status:        CallScheduled,
		JoinURL:       "/communications/call/" + callID,
		ScheduledTime: req.ScheduledTime,
	}, nil
}

// CallAvailability lists open call slots on date; an empty date means today.
func (s *Service) CallAvailability(ctx context.Context, date string) (CallAvailability, error) {
	now := s.now()
	date = strings.TrimSpace(date)
	if date == "" {
		date = now.In(s.location).Format("2006-01-02")
	}
	slots, err := schedule.CallSlots(date, s.location, now)
	if err != nil {
		return CallAvailability{}, apperr.Validation("invalid query", map[string]string{"date": "date"})
	}
	return CallAvailability{
		Date:        date,
		SlotMinutes: schedule.CallSlotMinutes,
		Slots:       slots,
	}, nil
}

func (s *Service) CallSessions(ctx context.Context) ([]CallSession, error) {
	items, err := s.repo.CallSessions(ctx)
	if err != nil {
		return nil, apperr.Internal("call session query failed", err)
	}
	return items, nil
}

func (s *Service) Conversations(ctx context.Context) ([]Conversation, error) {
	items, err := s.repo.Conversations(ctx)
	if err != nil {
		return nil, apperr.Internal("conversation query failed", err)
	}
	return items, nil
}

// Messages lists the thread for conversationID; nil means the caller gave no id.
func (s *Service) Messages(ctx context.Context, conversationID *string) ([]Message, error) {
	if conversationID != nil {
		id := strings.TrimSpace(*conversationID)
		conversationID = &id
	}
	items, err := s.repo.Messages(ctx, conversationID)
	if err != nil {
		return nil, apperr.Internal("message query failed", err)
	}
	return items, nil
}

// SendMessage acknowledges a message without delivering or storing it.
func (s *Service) SendMessage(ctx context.Context, req SendMessageRequest) (SendMessageResult, error) {
	return SendMessageResult{
		Success:   true,
		MessageID: utils.NewID("msg"),
		Timestamp: s.now().In(s.location).Format(time.RFC3339),
		Status:    "sent",
	}, nil
}

func (s *Service) Upload(ctx context.Context, up Upload, body io.Reader) (UploadResult, error) {
	fileID := utils.NewID("file")
	key := fileID + "_" + utils.SafeFileName(up.FileName)

	url, err := s.store.Put(ctx, storage.Object{
		Key:         key,
		Size:        up.Size,
		ContentType: up.ContentType,
	}, body)
	if err != nil {
		return UploadResult{}, apperr.Internal("file storage failed", err)
	}

	return UploadResult{
		Success:    true,
		FileID:     fileID,
		FileName:   up.FileName,
		FileSize:   up.Size,
		FileURL:    url,
		UploadedAt: s.now().In(s.location).Format(time.RFC3339),
	}, nil
}
