package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs(prefix string) func() (string, error) {
	var n int
	var mu sync.Mutex
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%03d", prefix, n), nil
	}
}

// fakeAdvisor is a scripted Advisor for store tests.
type fakeAdvisor struct {
	mu sync.Mutex

	analysis    domain.ApplicantAnalysis
	analysisErr error
	feedback    string
	feedbackErr error
	comparison  domain.ComparisonAnalysis
	prediction  domain.ShortlistPrediction

	analyzeCalls     int
	rejectionCalls   int
	comparativeCalls int
}

func (f *fakeAdvisor) AnalyzeApplicant(_ context.Context, _ domain.Job, _ domain.User, _ domain.Company) (domain.ApplicantAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzeCalls++
	return f.analysis, f.analysisErr
}

func (f *fakeAdvisor) RejectionFeedback(_ context.Context, _ domain.Job, _ domain.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectionCalls++
	return f.feedback, f.feedbackErr
}

func (f *fakeAdvisor) ComparativeRejectionFeedback(_ context.Context, _ domain.Job, _ domain.User, _ []domain.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comparativeCalls++
	return f.feedback, f.feedbackErr
}

func (f *fakeAdvisor) CompareCandidates(_ context.Context, _ domain.Job, _ []domain.User) (domain.ComparisonAnalysis, error) {
	return f.comparison, nil
}

func (f *fakeAdvisor) ShortlistPrediction(_ context.Context, _ domain.Job, _ domain.User) (domain.ShortlistPrediction, error) {
	return f.prediction, nil
}

func testSnapshot() Snapshot {
	return Snapshot{
		CurrentUserID: "user-1",
		Users: []domain.User{
			{ID: "user-1", Name: "Maya Chen", Title: "Founder", Skills: []string{"Go", "Product"}},
			{ID: "user-2", Name: "Dev Patel", Title: "Backend Engineer", Skills: []string{"Go", "SQL"}},
			{ID: "user-3", Name: "Sara Okafor", Title: "Designer", Skills: []string{"Figma"}},
		},
		Companies: []domain.Company{
			{
				ID:   "company-1",
				Name: "Acme Robotics",
				Team: []domain.TeamMember{{UserID: "user-1", Role: domain.TeamRoleOwner}},
			},
		},
		Jobs: []domain.Job{
			{
				ID:        "job-1",
				Title:     "Backend Engineer",
				CompanyID: "company-1",
				PosterID:  "user-1",
				Status:    domain.JobOpen,
				Skills:    []string{"Go"},
				InterviewRounds: []domain.InterviewRound{
					{Name: "Technical Interview"},
				},
			},
		},
		Stories: []domain.Story{
			{ID: "story-1", Title: "Why we build in the open", AuthorID: "user-1", Status: domain.StoryPublished},
		},
		Events: []domain.Event{
			{ID: "event-1", Title: "Founder Meetup", AuthorID: "user-2", Type: domain.EventMeetup, Status: domain.EventUpcoming},
		},
		Ventures: []domain.Venture{
			{ID: "venture-1", OwnerID: "user-1", Name: "Orbit Labs", Stage: domain.StageIdea},
		},
		Signals: []domain.Signal{
			{
				ID:        "signal-1",
				VentureID: "venture-1",
				AuthorID:  "user-1",
				Type:      domain.SignalPoll,
				Content:   "Which feature first?",
				PollOptions: []domain.PollOption{
					{Text: "Mobile app"},
					{Text: "API"},
				},
			},
		},
	}
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	defaults := []Option{
		WithClock(fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))),
		WithIDGenerator(sequentialIDs("id")),
	}
	s, err := New(testSnapshot(), append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestNewRequiresCurrentUser(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.CurrentUserID = "user-404"
	if _, err := New(snapshot); err != ErrCurrentUserRequired {
		t.Fatalf("err = %v, want ErrCurrentUserRequired", err)
	}
}

func TestNewDerivesFirstBelieverFor(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Ventures[0].FirstBelievers = []string{"user-2"}
	s, err := New(snapshot, WithIDGenerator(sequentialIDs("id")))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	user, err := s.User("user-2")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if len(user.FirstBelieverFor) != 1 || user.FirstBelieverFor[0] != "venture-1" {
		t.Fatalf("FirstBelieverFor = %v, want [venture-1]", user.FirstBelieverFor)
	}
}

func TestNewStartsAsUserProfile(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	active := s.ActiveProfile()
	if active.Kind != domain.ProfileUser || active.ID != "user-1" || active.Name != "Maya Chen" {
		t.Fatalf("active profile = %+v, want user-1 Maya Chen", active)
	}
}

// TestHiringFlow walks the primary scenario end to end: create a company,
// post a job from the company profile, apply as another user, and verify the
// poster is notified.
func TestHiringFlow(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	company, err := s.AddCompany(CompanyInput{Name: "Nimbus AI"})
	if err != nil {
		t.Fatalf("add company: %v", err)
	}
	if got := s.ActiveProfile(); got.Kind != domain.ProfileCompany || got.ID != company.ID {
		t.Fatalf("active profile after add company = %+v", got)
	}

	job, err := s.AddJob(JobInput{Title: "Platform Engineer", Skills: []string{"Go"}})
	if err != nil {
		t.Fatalf("add job: %v", err)
	}
	if job.CompanyID != company.ID || job.PosterID != "user-1" {
		t.Fatalf("job ownership = company %q poster %q", job.CompanyID, job.PosterID)
	}

	if err := s.SwitchProfile(domain.ProfileUser, "user-2"); err != nil {
		t.Fatalf("switch profile: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), job.ID); err != nil {
		t.Fatalf("apply for job: %v", err)
	}

	stored, err := s.Job(job.ID)
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	detail, ok := stored.Applicant("user-2")
	if !ok {
		t.Fatal("expected applicant record for user-2")
	}
	if detail.Status != domain.StatusApplied {
		t.Fatalf("status = %q, want %q", detail.Status, domain.StatusApplied)
	}

	var found bool
	for _, n := range s.Notifications() {
		if n.Type == domain.NotifyApplication && n.RecipientID == "user-1" && n.ActorID == "user-2" && n.TargetID == job.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected APPLICATION notification for the job poster")
	}
}
