package communications

import "time"

const (
	CallScheduled = "scheduled"
	CallActive    = "active"
	CallEnded     = "ended"
	CallMissed    = "missed"
)

type CallSession struct {
	ID            string `json:"id"`
	LawyerName    string `json:"lawyerName"`
	LawyerAvatar  string `json:"lawyerAvatar,omitempty"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	ScheduledTime string `json:"scheduledTime"`
	Duration      string `json:"duration,omitempty"`
	RecordingURL  string `json:"recordingUrl,omitempty"`
}

type Conversation struct {
	ID              string `json:"id"`
	LawyerName      string `json:"lawyerName"`
	LawyerAvatar    string `json:"lawyerAvatar,omitempty"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime string `json:"lastMessageTime"`
	UnreadCount     int    `json:"unreadCount"`
	CaseTitle       string `json:"caseTitle"`
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type Message struct {
	ID             string       `json:"id"`
	ConversationID *string      `json:"conversationId"`
	SenderID       string       `json:"senderId"`
	SenderName     string       `json:"senderName"`
	SenderType     string       `json:"senderType"`
	Content        string       `json:"content"`
	Timestamp      time.Time    `json:"timestamp"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	Read           bool         `json:"read"`
}

type ScheduleCallRequest struct {
	LawyerID      string `json:"lawyerId" validate:"notblank"`
	Type          string `json:"type" validate:"oneof=video audio"`
	ScheduledTime string `json:"scheduledTime"`
}

type CallAvailability struct {
	Date        string   `json:"date"`
	SlotMinutes int      `json:"slotMinutes"`
	Slots       []string `json:"slots"`
}

type ScheduleCallResult struct {
	Success       bool   `json:"success"`
	CallID        string `json:"callId"`
	Status        string `json:"status"`
	JoinURL       string `json:"joinUrl"`
	ScheduledTime string `json:"scheduledTime"`
}

type SendMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"notblank"`
	Content        string `json:"content" validate:"notblank,max=10000"`
}

type SendMessageResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

type Upload struct {
	ConversationID string
	FileName       string
	Size           int64
	ContentType    string
}

type UploadResult struct {
	Success    bool   `json:"success"`
	FileID     string `json:"fileId"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	FileURL    string `json:"fileUrl"`
	UploadedAt string `json:"uploadedAt"`
}
