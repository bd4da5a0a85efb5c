package communications

import "context"

type Repository interface {
	CallSessions(ctx context.Context) ([]CallSession, error)
	Conversations(ctx context.Context) ([]Conversation, error)
	Messages(ctx context.Context, conversationID *string) ([]Message, error)
}

type FixtureRepository struct {
	calls         []CallSession
	conversations []Conversation
	messages      []Message
}

func NewFixtureRepository(calls []CallSession, conversations []Conversation, messages []Message) *FixtureRepository {
	return &FixtureRepository{calls: calls, conversations: conversations, messages: messages}
}

func (r *FixtureRepository) CallSessions(ctx context.Context) ([]CallSession, error) {
	return append([]CallSession(nil), r.calls...), nil
}

func (r *FixtureRepository) Conversations(ctx context.Context) ([]Conversation, error) {
	return append([]Conversation(nil), r.conversations...), nil
}

// Messages returns the sample thread for any conversation, stamped with its id.
// A nil id is reported as null.
func (r *FixtureRepository) Messages(ctx context.Context, conversationID *string) ([]Message, error) {
	out := make([]Message, 0, len(r.messages))
	for _, m := range r.messages {
		m.ConversationID = conversationID
		out = append(out, m)
	}
	return out, nil
}
