package store

import (
	"fmt"
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// SignalInput describes a new venture signal. PollOptions is only used for
// poll signals.
type SignalInput struct {
	Type        domain.SignalType
	Content     string
	IsExclusive bool
	PollOptions []string
}

// AddSignal publishes a signal on a venture. Exclusive signals notify the
// believer set snapshotted at publish time.
func (s *Store) AddSignal(ventureID string, input SignalInput) (domain.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(input.Content) == "" {
		return domain.Signal{}, ErrTextRequired
	}
	vi := s.ventureIndexLocked(ventureID)
	if vi < 0 {
		return domain.Signal{}, ErrNotFound
	}
	venture := s.ventures[vi]
	signalID, err := s.newID()
	if err != nil {
		return domain.Signal{}, err
	}
	signal := domain.Signal{
		ID:          signalID,
		VentureID:   ventureID,
		AuthorID:    s.currentUserID,
		Type:        input.Type,
		Content:     input.Content,
		CreatedAt:   s.clock(),
		IsExclusive: input.IsExclusive,
	}
	for _, text := range input.PollOptions {
		signal.PollOptions = append(signal.PollOptions, domain.PollOption{Text: text})
	}
	s.signals = append([]domain.Signal{signal}, s.signals...)

	venture.SignalIDs = append(append([]string(nil), venture.SignalIDs...), signal.ID)
	s.ventures = replaceAt(s.ventures, vi, venture)

	if signal.IsExclusive {
		message := fmt.Sprintf("New exclusive content from %s", venture.Name)
		for _, believerID := range venture.FirstBelievers {
			if believerID == s.currentUserID {
				continue
			}
			if err := s.addNotificationLocked(domain.Notification{
				Type:        domain.NotifyExclusiveContent,
				ActorID:     s.currentUserID,
				RecipientID: believerID,
				TargetID:    ventureID,
				TargetType:  domain.TargetVenture,
				Message:     message,
			}); err != nil {
				return domain.Signal{}, err
			}
		}
	}
	return signal, nil
}

// VoteOnSignalPoll casts the current user's vote for one option. The user's
// previous vote, on any option, is removed first; a repeated vote for the
// same option keeps it.
func (s *Store) VoteOnSignalPoll(signalID string, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.signalIndexLocked(signalID)
	if i < 0 {
		return ErrNotFound
	}
	signal := s.signals[i]
	if signal.Type != domain.SignalPoll || len(signal.PollOptions) == 0 {
		return ErrNotAPoll
	}
	if optionIndex < 0 || optionIndex >= len(signal.PollOptions) {
		return ErrPollOptionOutOfRange
	}
	options := make([]domain.PollOption, len(signal.PollOptions))
	for j, option := range signal.PollOptions {
		votes := make([]string, 0, len(option.Votes)+1)
		for _, voterID := range option.Votes {
			if voterID != s.currentUserID {
				votes = append(votes, voterID)
			}
		}
		if j == optionIndex {
			votes = append(votes, s.currentUserID)
		}
		option.Votes = votes
		options[j] = option
	}
	signal.PollOptions = options
	s.signals = replaceAt(s.signals, i, signal)
	return nil
}

// LikeSignal toggles the current user's like on a signal.
func (s *Store) LikeSignal(signalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.signalIndexLocked(signalID)
	if i < 0 {
		return ErrNotFound
	}
	signal := s.signals[i]
	likes := make([]string, 0, len(signal.Likes)+1)
	liked := false
	for _, userID := range signal.Likes {
		if userID == s.currentUserID {
			liked = true
			continue
		}
		likes = append(likes, userID)
	}
	if !liked {
		likes = append(likes, s.currentUserID)
	}
	signal.Likes = likes
	s.signals = replaceAt(s.signals, i, signal)
	return nil
}

// FeedbackInput is one structured response to a question signal.
type FeedbackInput struct {
	Pros       string
	Cons       string
	Suggestion string
}

// AddFeedback appends structured feedback from the current user.
func (s *Store) AddFeedback(signalID string, input FeedbackInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.signalIndexLocked(signalID)
	if i < 0 {
		return ErrNotFound
	}
	feedbackID, err := s.newID()
	if err != nil {
		return err
	}
	signal := s.signals[i]
	feedback := domain.Feedback{
		ID:         feedbackID,
		AuthorID:   s.currentUserID,
		Pros:       input.Pros,
		Cons:       input.Cons,
		Suggestion: input.Suggestion,
		CreatedAt:  s.clock(),
	}
	signal.Feedback = append(append([]domain.Feedback(nil), signal.Feedback...), feedback)
	s.signals = replaceAt(s.signals, i, signal)
	return nil
}
