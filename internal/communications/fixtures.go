package communications

import "time"

func FixtureCallSessions() []CallSession {
	return []CallSession{
		{
			ID:            "call_1",
			LawyerName:    "Sarah Johnson",
			Status:        CallScheduled,
			Type:          "video",
			ScheduledTime: "Today, 2:00 PM",
		},
		{
			ID:            "call_2",
			LawyerName:    "Jennifer Martinez",
			Status:        CallEnded,
			Type:          "video",
			ScheduledTime: "Yesterday, 10:00 AM",
			Duration:      "45 minutes",
			RecordingURL:  "/recordings/call_2.mp4",
		},
		{
			ID:            "call_3",
			LawyerName:    "Robert Williams",
			Status:        CallMissed,
			Type:          "audio",
			ScheduledTime: "Jan 15, 3:00 PM",
		},
	}
}

func FixtureConversations() []Conversation {
	return []Conversation{
		{
			ID:              "conv_1",
			LawyerName:      "Sarah Johnson",
			LastMessage:     "I've reviewed your employment contract. Let's discuss the terms.",
			LastMessageTime: "2 hours ago",
			UnreadCount:     2,
			CaseTitle:       "Employment Contract Review",
		},
		{
			ID:              "conv_2",
			LawyerName:      "Jennifer Martinez",
			LastMessage:     "The divorce papers are ready for your review.",
			LastMessageTime: "1 day ago",
			UnreadCount:     0,
			CaseTitle:       "Divorce Settlement",
		},
		{
			ID:              "conv_3",
			LawyerName:      "Robert Williams",
			LastMessage:     "Thank you for the additional documents.",
			LastMessageTime: "3 days ago",
			UnreadCount:     1,
			CaseTitle:       "Criminal Defense",
		},
	}
}

// FixtureMessages returns the sample thread with timestamps in loc.
func FixtureMessages(loc *time.Location) []Message {
	if loc == nil {
		loc = time.UTC
	}
	return []Message{
		{
			ID:         "msg_1",
			SenderID:   "lawyer_1",
			SenderName: "Sarah Johnson",
			SenderType: "lawyer",
			Content:    "I've reviewed your employment contract. There are a few clauses we should discuss.",
			Timestamp:  time.Date(2024, 1, 20, 14, 30, 0, 0, loc),
			Read:       true,
		},
		{
			ID:         "msg_2",
			SenderID:   "client_1",
			SenderName: "You",
			SenderType: "client",
			Content:    "Thank you for the quick review. What are your main concerns?",
			Timestamp:  time.Date(2024, 1, 20, 14, 35, 0, 0, loc),
			Read:       true,
		},
		{
			ID:         "msg_3",
			SenderID:   "lawyer_1",
			SenderName: "Sarah Johnson",
			SenderType: "lawyer",
			Content:    "The non-compete clause is quite broad and the termination conditions need clarification. I've attached my detailed notes.",
			Timestamp:  time.Date(2024, 1, 20, 14, 40, 0, 0, loc),
			Attachments: []Attachment{
				{
					ID:   "att_1",
					Name: "Contract_Review_Notes.pdf",
					Type: "application/pdf",
					Size: 245760,
					URL:  "/attachments/contract_notes.pdf",
				},
			},
			Read: false,
		},
	}
}
