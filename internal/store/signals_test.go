package store

import (
	"errors"
	"testing"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

func TestVoteOnSignalPollHoldsSingleVote(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.VoteOnSignalPoll("signal-1", 0); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if err := s.VoteOnSignalPoll("signal-1", 1); err != nil {
		t.Fatalf("moved vote: %v", err)
	}

	signal, err := s.Signal("signal-1")
	if err != nil {
		t.Fatalf("signal: %v", err)
	}
	if got := signal.VoterOption("user-1"); got != 1 {
		t.Fatalf("voter option = %d, want 1", got)
	}
	if got := len(signal.PollOptions[0].Votes); got != 0 {
		t.Fatalf("option 0 votes = %d, want 0 after moving", got)
	}
}

func TestVoteOnSignalPollRepeatKeepsVote(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.VoteOnSignalPoll("signal-1", 0); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if err := s.VoteOnSignalPoll("signal-1", 0); err != nil {
		t.Fatalf("repeat vote: %v", err)
	}

	signal, err := s.Signal("signal-1")
	if err != nil {
		t.Fatalf("signal: %v", err)
	}
	if got := signal.VoterOption("user-1"); got != 0 {
		t.Fatalf("voter option = %d, want retained vote on 0", got)
	}
	if got := len(signal.PollOptions[0].Votes); got != 1 {
		t.Fatalf("option 0 votes = %d, want exactly 1", got)
	}
}

func TestVoteOnSignalPollErrors(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Signals = append(snapshot.Signals, domain.Signal{
		ID: "signal-2", VentureID: "venture-1", AuthorID: "user-1",
		Type: domain.SignalUpdate, Content: "Shipped v0.1",
	})
	s, err := New(snapshot, WithIDGenerator(sequentialIDs("id")))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := s.VoteOnSignalPoll("signal-2", 0); !errors.Is(err, ErrNotAPoll) {
		t.Fatalf("non-poll err = %v, want ErrNotAPoll", err)
	}
	if err := s.VoteOnSignalPoll("signal-1", 5); !errors.Is(err, ErrPollOptionOutOfRange) {
		t.Fatalf("out of range err = %v, want ErrPollOptionOutOfRange", err)
	}
	if err := s.VoteOnSignalPoll("signal-404", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown signal err = %v, want ErrNotFound", err)
	}
}

func TestLikeSignalToggles(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.LikeSignal("signal-1"); err != nil {
		t.Fatalf("like: %v", err)
	}
	signal, err := s.Signal("signal-1")
	if err != nil {
		t.Fatalf("signal: %v", err)
	}
	if got := len(signal.Likes); got != 1 {
		t.Fatalf("likes = %d, want 1", got)
	}

	if err := s.LikeSignal("signal-1"); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	signal, err = s.Signal("signal-1")
	if err != nil {
		t.Fatalf("signal: %v", err)
	}
	if got := len(signal.Likes); got != 0 {
		t.Fatalf("likes = %d, want toggled off", got)
	}
}

func TestAddSignalExclusiveNotifiesBelievers(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.Ventures[0].FirstBelievers = []string{"user-2", "user-3"}
	s, err := New(snapshot, WithIDGenerator(sequentialIDs("id")))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	signal, err := s.AddSignal("venture-1", SignalInput{
		Type:        domain.SignalUpdate,
		Content:     "Early access build is live.",
		IsExclusive: true,
	})
	if err != nil {
		t.Fatalf("add signal: %v", err)
	}

	venture, err := s.Venture("venture-1")
	if err != nil {
		t.Fatalf("venture: %v", err)
	}
	var tracked bool
	for _, id := range venture.SignalIDs {
		if id == signal.ID {
			tracked = true
		}
	}
	if !tracked {
		t.Fatal("venture should track the new signal id")
	}

	recipients := map[string]bool{}
	for _, n := range s.Notifications() {
		if n.Type == domain.NotifyExclusiveContent {
			recipients[n.RecipientID] = true
		}
	}
	if !recipients["user-2"] || !recipients["user-3"] {
		t.Fatalf("exclusive notifications reached %v, want both believers", recipients)
	}
}

func TestAddSignalBuildsPollOptions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	signal, err := s.AddSignal("venture-1", SignalInput{
		Type:        domain.SignalPoll,
		Content:     "Pick a launch city",
		PollOptions: []string{"Berlin", "Toronto"},
	})
	if err != nil {
		t.Fatalf("add signal: %v", err)
	}
	if len(signal.PollOptions) != 2 || signal.PollOptions[0].Text != "Berlin" {
		t.Fatalf("poll options = %+v", signal.PollOptions)
	}
}

func TestAddFeedback(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.AddFeedback("signal-1", FeedbackInput{
		Pros:       "Clear direction",
		Cons:       "Scope is large",
		Suggestion: "Start with the API",
	}); err != nil {
		t.Fatalf("add feedback: %v", err)
	}

	signal, err := s.Signal("signal-1")
	if err != nil {
		t.Fatalf("signal: %v", err)
	}
	if len(signal.Feedback) != 1 {
		t.Fatalf("feedback = %d, want 1", len(signal.Feedback))
	}
	feedback := signal.Feedback[0]
	if feedback.AuthorID != "user-1" || feedback.Suggestion != "Start with the API" {
		t.Fatalf("feedback = %+v", feedback)
	}
}
