package store

import (
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// FindOrCreateConversation returns the thread between the current user and
// participantID, creating an empty one when none exists.
func (s *Store) FindOrCreateConversation(participantID string) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userIndexLocked(participantID) < 0 {
		return domain.Conversation{}, ErrNotFound
	}
	i, err := s.findOrCreateConversationLocked(s.currentUserID, participantID)
	if err != nil {
		return domain.Conversation{}, err
	}
	return s.conversations[i], nil
}

// SendMessage appends a message from the current user. jobID links recruiter
// outreach to a posting and may be empty.
func (s *Store) SendMessage(conversationID, text, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}
	i := s.conversationIndexLocked(conversationID)
	if i < 0 {
		return ErrNotFound
	}
	return s.appendMessageLocked(i, s.currentUserID, text, jobID)
}

// MarkJobMessagesRead marks every message linked to jobID and sent by the
// other party as read, across all conversations.
func (s *Store) MarkJobMessagesRead(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conversations := make([]domain.Conversation, len(s.conversations))
	for i, conversation := range s.conversations {
		messages := append([]domain.ChatMessage(nil), conversation.Messages...)
		for j, message := range messages {
			if message.JobID == jobID && message.SenderID != s.currentUserID {
				message.IsRead = true
				messages[j] = message
			}
		}
		conversation.Messages = messages
		conversations[i] = conversation
	}
	s.conversations = conversations
}

func (s *Store) findOrCreateConversationLocked(a, b string) (int, error) {
	for i, conversation := range s.conversations {
		if conversation.HasParticipants(a, b) {
			return i, nil
		}
	}
	conversationID, err := s.newID()
	if err != nil {
		return -1, err
	}
	conversation := domain.Conversation{
		ID:             conversationID,
		ParticipantIDs: []string{a, b},
	}
	s.conversations = append(append([]domain.Conversation(nil), s.conversations...), conversation)
	return len(s.conversations) - 1, nil
}

func (s *Store) appendMessageLocked(i int, senderID, text, jobID string) error {
	messageID, err := s.newID()
	if err != nil {
		return err
	}
	conversation := s.conversations[i]
	message := domain.ChatMessage{
		ID:       messageID,
		SenderID: senderID,
		Text:     text,
		SentAt:   s.clock(),
		JobID:    jobID,
	}
	conversation.Messages = append(append([]domain.ChatMessage(nil), conversation.Messages...), message)
	s.conversations = replaceAt(s.conversations, i, conversation)
	return nil
}
