package store

import "errors"

var (
	// ErrNotFound indicates a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a write duplicated an existing membership.
	ErrConflict = errors.New("write conflicts with existing record")
	// ErrCompanyProfileRequired indicates the operation needs an active
	// company profile.
	ErrCompanyProfileRequired = errors.New("active company profile is required")
	// ErrCurrentUserRequired indicates the snapshot names no valid current user.
	ErrCurrentUserRequired = errors.New("current user is required")
	// ErrAlreadyApplied indicates the user already applied to the job.
	ErrAlreadyApplied = errors.New("user already applied to job")
	// ErrJobClosed indicates the posting no longer accepts applications.
	ErrJobClosed = errors.New("job is closed")
	// ErrAlreadyRSVPed indicates the user already holds an RSVP.
	ErrAlreadyRSVPed = errors.New("user already RSVPed to event")
	// ErrEventFull indicates the event reached its RSVP capacity.
	ErrEventFull = errors.New("event is at capacity")
	// ErrUnknownRole indicates the role title matches no walk-in job slot.
	ErrUnknownRole = errors.New("role title matches no job slot")
	// ErrNotAPoll indicates the signal carries no poll options.
	ErrNotAPoll = errors.New("signal is not a poll")
	// ErrPollOptionOutOfRange indicates the option index is out of bounds.
	ErrPollOptionOutOfRange = errors.New("poll option index out of range")
	// ErrInvalidVerificationCode indicates the contact code did not match.
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	// ErrAdvisorNotConfigured indicates the operation needs an AI advisor.
	ErrAdvisorNotConfigured = errors.New("advisor is not configured")
	// ErrUnknownProvider indicates an unrecognized integration provider.
	ErrUnknownProvider = errors.New("unknown integration provider")
	// ErrUnknownContactKind indicates an unrecognized contact channel.
	ErrUnknownContactKind = errors.New("unknown contact kind")
	// ErrNameRequired indicates a name is required.
	ErrNameRequired = errors.New("name is required")
	// ErrTitleRequired indicates a title is required.
	ErrTitleRequired = errors.New("title is required")
	// ErrTextRequired indicates message or comment text is required.
	ErrTextRequired = errors.New("text is required")
)
