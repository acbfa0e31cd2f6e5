package store

import (
	"errors"
	"testing"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

func TestInjectNotificationTargetsCurrentUser(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.InjectNotification(NotificationInput{
		Type:       domain.NotifyComment,
		ActorID:    "user-2",
		TargetID:   "story-1",
		TargetType: domain.TargetStory,
		Message:    "This is a great story!",
	}); err != nil {
		t.Fatalf("inject: %v", err)
	}

	notifications := s.Notifications()
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	n := notifications[0]
	if n.RecipientID != "user-1" || n.ActorID != "user-2" || n.IsRead {
		t.Fatalf("notification = %+v", n)
	}
	if n.ID == "" || n.CreatedAt.IsZero() {
		t.Fatalf("notification missing stamp: %+v", n)
	}
}

func TestMarkNotificationsAsRead(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for range 3 {
		if err := s.InjectNotification(NotificationInput{
			Type:       domain.NotifyInterest,
			ActorID:    "user-3",
			TargetID:   "venture-1",
			TargetType: domain.TargetVenture,
		}); err != nil {
			t.Fatalf("inject: %v", err)
		}
	}

	s.MarkNotificationsAsRead()
	for _, n := range s.Notifications() {
		if !n.IsRead {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
}

func TestNotificationsNewestFirst(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.InjectNotification(NotificationInput{Type: domain.NotifyInterest, ActorID: "user-2", TargetID: "venture-1", TargetType: domain.TargetVenture}); err != nil {
		t.Fatalf("inject first: %v", err)
	}
	if err := s.InjectNotification(NotificationInput{Type: domain.NotifyRSVP, ActorID: "user-3", TargetID: "event-1", TargetType: domain.TargetEvent}); err != nil {
		t.Fatalf("inject second: %v", err)
	}

	notifications := s.Notifications()
	if notifications[0].Type != domain.NotifyRSVP {
		t.Fatalf("newest notification = %q, want the RSVP one first", notifications[0].Type)
	}
}

func TestCreateSharedDashboard(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	applyAs(t, s, "user-2", "job-1")
	applyAs(t, s, "user-3", "job-1")

	dashboard, err := s.CreateSharedDashboard("job-1", []string{"user-2", "user-3"})
	if err != nil {
		t.Fatalf("create dashboard: %v", err)
	}
	if dashboard.ID == "" {
		t.Fatal("dashboard needs a capability id")
	}

	resolved, err := s.Dashboard(dashboard.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.JobID != "job-1" || len(resolved.ApplicantUserIDs) != 2 {
		t.Fatalf("resolved = %+v", resolved)
	}

	if _, err := s.Dashboard("dash-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestCreateSharedDashboardRejectsNonApplicants(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	applyAs(t, s, "user-2", "job-1")
	if _, err := s.CreateSharedDashboard("job-1", []string{"user-2", "user-3"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for non-applicant", err)
	}
}
