package domain

import "time"

// NotificationType identifies one notification topic.
type NotificationType string

const (
	// NotifyApplication means someone applied to a job you posted.
	NotifyApplication NotificationType = "APPLICATION"
	// NotifyComment means someone commented on your post.
	NotifyComment NotificationType = "COMMENT"
	// NotifyMatch means a venture interest became mutual.
	NotifyMatch NotificationType = "MATCH"
	// NotifyInterest means someone expressed interest in your venture.
	NotifyInterest NotificationType = "INTEREST"
	// NotifyRSVP means someone RSVP'd to your event.
	NotifyRSVP NotificationType = "RSVP"
	// NotifyMessage means you received a new message.
	NotifyMessage NotificationType = "MESSAGE"
	// NotifyExclusiveContent means a venture published believer-only content.
	NotifyExclusiveContent NotificationType = "EXCLUSIVE_CONTENT"
)

// TargetType identifies what kind of record a notification points at.
type TargetType string

const (
	TargetJob          TargetType = "job"
	TargetStory        TargetType = "story"
	TargetSignal       TargetType = "signal"
	TargetVenture      TargetType = "venture"
	TargetEvent        TargetType = "event"
	TargetConversation TargetType = "conversation"
)

// Notification is one inbox item. Notifications are never deleted, only
// marked read in bulk.
type Notification struct {
	ID   string
	Type NotificationType
	// ActorID is who performed the action; RecipientID is whose inbox the
	// notification lands in.
	ActorID     string
	RecipientID string
	CreatedAt   time.Time
	IsRead      bool

	TargetID   string
	TargetType TargetType
	// Message is an optional human-readable line for comment and broadcast
	// notifications.
	Message string
}
