package store

import (
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// EventInput describes a new event.
type EventInput struct {
	Title       string
	Date        string
	Time        string
	Type        domain.EventType
	Location    string
	Description string

	TotalSlots    int
	Speakers      []domain.Speaker
	Agenda        []domain.AgendaItem
	CoverImageURL string
	Address       string
	DirectionsURL string
	JobSlots      []domain.JobSlot
}

// AddEvent creates an upcoming event authored by the current user, carrying
// the company byline when a company profile is active.
func (s *Store) AddEvent(input EventInput) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(input.Title) == "" {
		return domain.Event{}, ErrTitleRequired
	}
	eventID, err := s.newID()
	if err != nil {
		return domain.Event{}, err
	}
	event := domain.Event{
		ID:            eventID,
		Title:         input.Title,
		Date:          input.Date,
		Time:          input.Time,
		Type:          input.Type,
		Location:      input.Location,
		Description:   input.Description,
		AuthorID:      s.currentUserID,
		TotalSlots:    input.TotalSlots,
		Speakers:      input.Speakers,
		Agenda:        input.Agenda,
		CoverImageURL: input.CoverImageURL,
		Address:       input.Address,
		DirectionsURL: input.DirectionsURL,
		Status:        domain.EventUpcoming,
		JobSlots:      input.JobSlots,
	}
	if s.active.Kind == domain.ProfileCompany {
		event.CompanyID = s.active.ID
	}
	s.events = append([]domain.Event{event}, s.events...)
	return event, nil
}

// RSVPToEvent registers the current user's attendance. Capacity is enforced:
// once TotalSlots is reached no further RSVPs are accepted.
func (s *Store) RSVPToEvent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndexLocked(eventID)
	if i < 0 {
		return ErrNotFound
	}
	event := s.events[i]
	if event.HasRSVP(s.currentUserID) {
		return ErrAlreadyRSVPed
	}
	if event.TotalSlots > 0 && len(event.RSVPs) >= event.TotalSlots {
		return ErrEventFull
	}
	event.RSVPs = append(append([]string(nil), event.RSVPs...), s.currentUserID)
	s.events = replaceAt(s.events, i, event)
	return s.addNotificationLocked(domain.Notification{
		Type:        domain.NotifyRSVP,
		ActorID:     s.currentUserID,
		RecipientID: event.AuthorID,
		TargetID:    event.ID,
		TargetType:  domain.TargetEvent,
	})
}

// ExpressInterestInWalkInRole records the current user's interest in one
// walk-in role and registers their attendance alongside. The attendance slot
// is granted even at capacity; interest implies showing up.
func (s *Store) ExpressInterestInWalkInRole(eventID, roleTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndexLocked(eventID)
	if i < 0 {
		return ErrNotFound
	}
	event := s.events[i]
	known := false
	for _, slot := range event.JobSlots {
		if slot.Title == roleTitle {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownRole
	}
	if _, ok := event.InterestedAttendee(s.currentUserID); ok {
		return ErrConflict
	}
	event.InterestedAttendees = append(append([]domain.InterestedAttendee(nil), event.InterestedAttendees...),
		domain.InterestedAttendee{UserID: s.currentUserID, RoleTitle: roleTitle})
	if !event.HasRSVP(s.currentUserID) {
		event.RSVPs = append(append([]string(nil), event.RSVPs...), s.currentUserID)
	}
	s.events = replaceAt(s.events, i, event)
	return nil
}

// MarkWalkInAttendee records whether an interested attendee showed up.
func (s *Store) MarkWalkInAttendee(eventID, userID string, attended bool) error {
	return s.updateWalkInAttendee(eventID, userID, func(attendee *domain.InterestedAttendee) {
		attendee.Attended = attended
	})
}

// AddWalkInAttendeeNote attaches recruiter notes to an interested attendee.
func (s *Store) AddWalkInAttendeeNote(eventID, userID, notes string) error {
	return s.updateWalkInAttendee(eventID, userID, func(attendee *domain.InterestedAttendee) {
		attendee.Notes = notes
	})
}

// UpdateEventStatus moves an event through its lifecycle.
func (s *Store) UpdateEventStatus(eventID string, status domain.EventStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndexLocked(eventID)
	if i < 0 {
		return ErrNotFound
	}
	event := s.events[i]
	event.Status = status
	s.events = replaceAt(s.events, i, event)
	return nil
}

func (s *Store) updateWalkInAttendee(eventID, userID string, fn func(*domain.InterestedAttendee)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndexLocked(eventID)
	if i < 0 {
		return ErrNotFound
	}
	event := s.events[i]
	for j, attendee := range event.InterestedAttendees {
		if attendee.UserID != userID {
			continue
		}
		fn(&attendee)
		attendees := append([]domain.InterestedAttendee(nil), event.InterestedAttendees...)
		attendees[j] = attendee
		event.InterestedAttendees = attendees
		s.events = replaceAt(s.events, i, event)
		return nil
	}
	return ErrNotFound
}
