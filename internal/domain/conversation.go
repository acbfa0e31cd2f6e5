package domain

import "time"

// ChatMessage is one message inside a conversation. Message lists are
// append-only.
type ChatMessage struct {
	ID       string
	SenderID string
	Text     string
	SentAt   time.Time
	// JobID links the message to a posting, for recruiter outreach threads.
	JobID  string
	IsRead bool
}

// Conversation is one two-party message thread.
type Conversation struct {
	ID             string
	ParticipantIDs []string
	Messages       []ChatMessage
}

// HasParticipants reports whether the conversation is between exactly the
// two given users, in either order.
func (c Conversation) HasParticipants(a, b string) bool {
	return containsID(c.ParticipantIDs, a) && containsID(c.ParticipantIDs, b)
}

// OtherParticipant returns the participant that is not userID.
func (c Conversation) OtherParticipant(userID string) (string, bool) {
	for _, id := range c.ParticipantIDs {
		if id != userID {
			return id, true
		}
	}
	return "", false
}
