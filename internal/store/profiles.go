package store

import "github.com/mohanvarma22/bcommune/internal/domain"

// verificationCode is the static contact-verification code. No delivery
// channel exists; the code is fixed.
const verificationCode = "123456"

// SwitchProfile changes the identity mutations act as. Switching to a user
// signs in as that user; switching to a company keeps the current user and
// acts on the company's behalf.
func (s *Store) SwitchProfile(kind domain.ProfileKind, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case domain.ProfileUser:
		i := s.userIndexLocked(profileID)
		if i < 0 {
			return ErrNotFound
		}
		s.currentUserID = profileID
		s.active = domain.ActiveProfile{Kind: domain.ProfileUser, ID: profileID, Name: s.users[i].Name}
	case domain.ProfileCompany:
		i := s.companyIndexLocked(profileID)
		if i < 0 {
			return ErrNotFound
		}
		s.active = domain.ActiveProfile{Kind: domain.ProfileCompany, ID: profileID, Name: s.companies[i].Name}
	default:
		return ErrNotFound
	}
	return nil
}

// ProfileUpdate carries a partial profile edit. Nil fields leave the
// corresponding profile value unchanged.
type ProfileUpdate struct {
	Name      *string
	Title     *string
	Location  *string
	AvatarURL *string
	Vision    *string

	Skills         []string
	Experience     []domain.Experience
	Portfolio      []domain.Project
	Education      []domain.Education
	Certifications []domain.Certification
	Languages      []domain.Language
}

// UpdateCurrentUserProfile applies a partial edit to the current user.
func (s *Store) UpdateCurrentUserProfile(update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Title != nil {
		user.Title = *update.Title
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Vision != nil {
		user.Vision = *update.Vision
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	if update.Experience != nil {
		user.Experience = update.Experience
	}
	if update.Portfolio != nil {
		user.Portfolio = update.Portfolio
	}
	if update.Education != nil {
		user.Education = update.Education
	}
	if update.Certifications != nil {
		user.Certifications = update.Certifications
	}
	if update.Languages != nil {
		user.Languages = update.Languages
	}
	s.users = replaceAt(s.users, i, user)
	if s.active.Kind == domain.ProfileUser && s.active.ID == user.ID {
		s.active.Name = user.Name
	}
	return nil
}

// AddConnection records a one-way connection from the current user.
func (s *Store) AddConnection(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userIndexLocked(userID) < 0 {
		return ErrNotFound
	}
	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	for _, id := range user.Connections {
		if id == userID {
			return ErrConflict
		}
	}
	user.Connections = append(append([]string(nil), user.Connections...), userID)
	s.users = replaceAt(s.users, i, user)
	return nil
}

// ToggleIntegration flips the current user's integration toggle for one
// provider.
func (s *Store) ToggleIntegration(provider domain.IntegrationProvider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	switch provider {
	case domain.IntegrationGoogle:
		user.Integrations.Google = !user.Integrations.Google
	case domain.IntegrationMicrosoft:
		user.Integrations.Microsoft = !user.Integrations.Microsoft
	default:
		return ErrUnknownProvider
	}
	s.users = replaceAt(s.users, i, user)
	return nil
}

// UpdatePhoneNumber replaces the current user's phone number and resets its
// verified flag.
func (s *Store) UpdatePhoneNumber(phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	user.Phone = phone
	user.PhoneVerified = false
	s.users = replaceAt(s.users, i, user)
	return nil
}

// VerifyContact marks one contact channel verified when the code matches.
func (s *Store) VerifyContact(kind domain.ContactKind, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code != verificationCode {
		return ErrInvalidVerificationCode
	}
	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	switch kind {
	case domain.ContactEmail:
		user.EmailVerified = true
	case domain.ContactPhone:
		user.PhoneVerified = true
	default:
		return ErrUnknownContactKind
	}
	s.users = replaceAt(s.users, i, user)
	return nil
}
