package store

import (
	"fmt"
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// VentureInput describes a new venture posting.
type VentureInput struct {
	Name     string
	LogoURL  string
	Tagline  string
	Vision   string
	Problem  string
	Solution string
	Market   []string
	Stage    domain.VentureStage
	Seeking  []string

	Preferences   domain.VenturePreferences
	PrototypeLink string
	IdeaLink      string
	ImageURLs     []string
}

// AddVenture creates a venture owned by the current user.
func (s *Store) AddVenture(input VentureInput) (domain.Venture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(input.Name) == "" {
		return domain.Venture{}, ErrNameRequired
	}
	ventureID, err := s.newID()
	if err != nil {
		return domain.Venture{}, err
	}
	venture := domain.Venture{
		ID:            ventureID,
		OwnerID:       s.currentUserID,
		Name:          input.Name,
		LogoURL:       input.LogoURL,
		Tagline:       input.Tagline,
		Vision:        input.Vision,
		Problem:       input.Problem,
		Solution:      input.Solution,
		Market:        input.Market,
		Stage:         input.Stage,
		Seeking:       input.Seeking,
		Preferences:   input.Preferences,
		PrototypeLink: input.PrototypeLink,
		IdeaLink:      input.IdeaLink,
		ImageURLs:     input.ImageURLs,
	}
	s.ventures = append(append([]domain.Venture(nil), s.ventures...), venture)

	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	user.VentureIDs = append(append([]string(nil), user.VentureIDs...), venture.ID)
	s.users = replaceAt(s.users, i, user)
	return venture, nil
}

// VentureUpdate carries a partial venture edit. Nil fields leave the
// corresponding value unchanged.
type VentureUpdate struct {
	Name     *string
	LogoURL  *string
	Tagline  *string
	Vision   *string
	Problem  *string
	Solution *string
	Stage    *domain.VentureStage

	Market  []string
	Seeking []string

	PrototypeLink *string
	IdeaLink      *string
	ImageURLs     []string
}

// UpdateVenture applies a partial edit to a venture.
func (s *Store) UpdateVenture(ventureID string, update VentureUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return ErrNotFound
	}
	venture := s.ventures[i]
	if update.Name != nil {
		venture.Name = *update.Name
	}
	if update.LogoURL != nil {
		venture.LogoURL = *update.LogoURL
	}
	if update.Tagline != nil {
		venture.Tagline = *update.Tagline
	}
	if update.Vision != nil {
		venture.Vision = *update.Vision
	}
	if update.Problem != nil {
		venture.Problem = *update.Problem
	}
	if update.Solution != nil {
		venture.Solution = *update.Solution
	}
	if update.Stage != nil {
		venture.Stage = *update.Stage
	}
	if update.Market != nil {
		venture.Market = update.Market
	}
	if update.Seeking != nil {
		venture.Seeking = update.Seeking
	}
	if update.PrototypeLink != nil {
		venture.PrototypeLink = *update.PrototypeLink
	}
	if update.IdeaLink != nil {
		venture.IdeaLink = *update.IdeaLink
	}
	if update.ImageURLs != nil {
		venture.ImageURLs = update.ImageURLs
	}
	s.ventures = replaceAt(s.ventures, i, venture)
	return nil
}

// UpdateVenturePreferences replaces a venture's collaborator preferences.
func (s *Store) UpdateVenturePreferences(ventureID string, preferences domain.VenturePreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return ErrNotFound
	}
	venture := s.ventures[i]
	venture.Preferences = preferences
	s.ventures = replaceAt(s.ventures, i, venture)
	return nil
}

// AddFirstBeliever opts the current user into a venture's early-believer
// circle.
func (s *Store) AddFirstBeliever(ventureID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return ErrNotFound
	}
	venture := s.ventures[i]
	if venture.HasFirstBeliever(s.currentUserID) {
		return ErrConflict
	}
	venture.FirstBelievers = append(append([]string(nil), venture.FirstBelievers...), s.currentUserID)
	s.ventures = replaceAt(s.ventures, i, venture)

	ui := s.userIndexLocked(s.currentUserID)
	user := s.users[ui]
	user.FirstBelieverFor = append(append([]string(nil), user.FirstBelieverFor...), ventureID)
	s.users = replaceAt(s.users, ui, user)
	return nil
}

// AcknowledgeFirstBeliever records the owner's acknowledgement of one
// believer.
func (s *Store) AcknowledgeFirstBeliever(ventureID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return ErrNotFound
	}
	venture := s.ventures[i]
	if !venture.HasFirstBeliever(userID) {
		return ErrNotFound
	}
	for _, id := range venture.AcknowledgedBelievers {
		if id == userID {
			return ErrConflict
		}
	}
	venture.AcknowledgedBelievers = append(append([]string(nil), venture.AcknowledgedBelievers...), userID)
	s.ventures = replaceAt(s.ventures, i, venture)
	return nil
}

// ExpressInterestInVenture records the current user's interest in a venture
// and notifies the owner. When the venture already reciprocated, the pair is
// complete and the match fires. The returned flag reports whether this call
// completed a match.
func (s *Store) ExpressInterestInVenture(ventureID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return false, ErrNotFound
	}
	venture := s.ventures[i]
	if venture.HasInterestedUser(s.currentUserID) {
		return false, ErrConflict
	}
	venture.InterestedUsers = append(append([]string(nil), venture.InterestedUsers...), s.currentUserID)
	s.ventures = replaceAt(s.ventures, i, venture)
	if err := s.addNotificationLocked(domain.Notification{
		Type:        domain.NotifyInterest,
		ActorID:     s.currentUserID,
		RecipientID: venture.OwnerID,
		TargetID:    venture.ID,
		TargetType:  domain.TargetVenture,
	}); err != nil {
		return false, err
	}
	if !venture.HasExpressedInterest(s.currentUserID) {
		return false, nil
	}
	if err := s.matchLocked(venture, s.currentUserID); err != nil {
		return false, err
	}
	return true, nil
}

// ExpressInterestInUser records a venture's reciprocal interest in a user.
// When the user already expressed interest, the pair is complete and the
// match fires. The returned flag reports whether this call completed a
// match.
func (s *Store) ExpressInterestInUser(ventureID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return false, ErrNotFound
	}
	if s.userIndexLocked(userID) < 0 {
		return false, ErrNotFound
	}
	venture := s.ventures[i]
	if venture.HasExpressedInterest(userID) {
		return false, ErrConflict
	}
	venture.ExpressedInterest = append(append([]string(nil), venture.ExpressedInterest...), userID)
	s.ventures = replaceAt(s.ventures, i, venture)
	if !venture.HasInterestedUser(userID) {
		return false, nil
	}
	if err := s.matchLocked(venture, userID); err != nil {
		return false, err
	}
	return true, nil
}

// matchLocked fires the mutual-match protocol exactly once: one system
// message in the owner/user conversation plus one MATCH notification for the
// user.
func (s *Store) matchLocked(venture domain.Venture, userID string) error {
	ci, err := s.findOrCreateConversationLocked(venture.OwnerID, userID)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("It's a match! You and %s are both interested in collaborating. Start the conversation!", venture.Name)
	if err := s.appendMessageLocked(ci, venture.OwnerID, text, ""); err != nil {
		return err
	}
	return s.addNotificationLocked(domain.Notification{
		Type:        domain.NotifyMatch,
		ActorID:     venture.OwnerID,
		RecipientID: userID,
		TargetID:    venture.ID,
		TargetType:  domain.TargetVenture,
	})
}

// BroadcastToBelievers delivers one update message from the venture to every
// first believer's conversation with the owner.
func (s *Store) BroadcastToBelievers(ventureID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}
	i := s.ventureIndexLocked(ventureID)
	if i < 0 {
		return ErrNotFound
	}
	venture := s.ventures[i]
	body := fmt.Sprintf("Update from %s:\n\n%s", venture.Name, text)
	for _, believerID := range venture.FirstBelievers {
		if believerID == venture.OwnerID {
			continue
		}
		ci, err := s.findOrCreateConversationLocked(venture.OwnerID, believerID)
		if err != nil {
			return err
		}
		if err := s.appendMessageLocked(ci, venture.OwnerID, body, ""); err != nil {
			return err
		}
	}
	return nil
}
