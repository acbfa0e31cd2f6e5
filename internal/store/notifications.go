package store

import "github.com/mohanvarma22/bcommune/internal/domain"

// NotificationInput describes one synthesized notification. The recipient is
// always the current user; the simulator is the only producer.
type NotificationInput struct {
	Type       domain.NotificationType
	ActorID    string
	TargetID   string
	TargetType domain.TargetType
	Message    string
}

// InjectNotification places a synthesized notification in the current user's
// inbox without touching any entity.
func (s *Store) InjectNotification(input NotificationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(domain.Notification{
		Type:        input.Type,
		ActorID:     input.ActorID,
		RecipientID: s.currentUserID,
		TargetID:    input.TargetID,
		TargetType:  input.TargetType,
		Message:     input.Message,
	})
}

// MarkNotificationsAsRead marks every inbox item read.
func (s *Store) MarkNotificationsAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	notifications := make([]domain.Notification, len(s.notifications))
	for i, notification := range s.notifications {
		notification.IsRead = true
		notifications[i] = notification
	}
	s.notifications = notifications
}

// addNotificationLocked stamps and prepends one notification. Notifications
// without a recipient are dropped.
func (s *Store) addNotificationLocked(notification domain.Notification) error {
	if notification.RecipientID == "" {
		return nil
	}
	notificationID, err := s.newID()
	if err != nil {
		return err
	}
	notification.ID = notificationID
	notification.CreatedAt = s.clock()
	notification.IsRead = false
	s.notifications = append([]domain.Notification{notification}, s.notifications...)
	return nil
}
