package domain

import "time"

// SignalType identifies one venture signal format.
type SignalType string

const (
	// SignalUpdate is a plain progress update.
	SignalUpdate SignalType = "update"
	// SignalQuestion invites structured feedback.
	SignalQuestion SignalType = "question"
	// SignalPoll carries voting options.
	SignalPoll SignalType = "poll"
)

// PollOption is one votable option on a poll signal. A user holds at most
// one vote across all options of a poll.
type PollOption struct {
	Text  string
	Votes []string
}

// Feedback is one structured response to a question signal.
type Feedback struct {
	ID         string
	AuthorID   string
	Pros       string
	Cons       string
	Suggestion string
	CreatedAt  time.Time
}

// Signal is one venture-authored post targeting its community.
type Signal struct {
	ID        string
	VentureID string
	AuthorID  string
	Type      SignalType
	Content   string
	CreatedAt time.Time

	// IsExclusive restricts the signal to first believers; publishing an
	// exclusive signal notifies the believer set snapshotted at send time.
	IsExclusive bool

	PollOptions []PollOption
	// Likes holds ids of users who liked the signal; liking toggles.
	Likes    []string
	Comments []Comment
	Feedback []Feedback
}

// VoterOption returns the option index userID currently votes for, or -1.
func (s Signal) VoterOption(userID string) int {
	for i, opt := range s.PollOptions {
		if containsID(opt.Votes, userID) {
			return i
		}
	}
	return -1
}
