package domain

// EventType identifies one event format.
type EventType string

const (
	EventWebinar    EventType = "Webinar"
	EventMeetup     EventType = "Meetup"
	EventConference EventType = "Conference"
	// EventWalkInInterview is an event with per-role slots attendees express
	// interest in individually.
	EventWalkInInterview EventType = "Walk-in Interview"
)

// EventStatus is the event lifecycle state.
type EventStatus string

const (
	EventUpcoming  EventStatus = "Upcoming"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

// Speaker is one listed speaker for an event.
type Speaker struct {
	Name      string
	Title     string
	AvatarURL string
}

// AgendaItem is one agenda line for an event.
type AgendaItem struct {
	Time  string
	Topic string
}

// JobSlot is one walk-in-interview role attendees can express interest in.
type JobSlot struct {
	Title       string
	Description string
	Skills      []string
}

// InterestedAttendee is one user's interest in a walk-in role. A user holds
// at most one record per event.
type InterestedAttendee struct {
	UserID    string
	RoleTitle string
	Attended  bool
	Notes     string
}

// Event is one community event.
type Event struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Type        EventType
	Location    string
	Description string
	AuthorID    string
	// CompanyID is set when the event was created from a company profile.
	CompanyID string

	// RSVPs holds attending user ids, insertion ordered.
	RSVPs []string
	// TotalSlots caps RSVPs when greater than zero.
	TotalSlots int

	Speakers      []Speaker
	Agenda        []AgendaItem
	CoverImageURL string
	Address       string
	DirectionsURL string
	Status        EventStatus

	JobSlots            []JobSlot
	InterestedAttendees []InterestedAttendee
}

// HasRSVP reports whether userID already holds an RSVP.
func (e Event) HasRSVP(userID string) bool {
	for _, id := range e.RSVPs {
		if id == userID {
			return true
		}
	}
	return false
}

// InterestedAttendee returns the walk-in interest record for userID.
func (e Event) InterestedAttendee(userID string) (InterestedAttendee, bool) {
	for _, a := range e.InterestedAttendees {
		if a.UserID == userID {
			return a, true
		}
	}
	return InterestedAttendee{}, false
}
