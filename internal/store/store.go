// Package store holds the whole workspace state in memory: every entity
// collection, the active profile pointer, and the notification inbox. One
// mutex serializes writers; every mutation replaces collection values
// copy-on-write, so values handed to readers are never edited in place.
// State is seeded once at startup and lost on process exit.
package store

import (
	"sync"
	"time"

	"github.com/mohanvarma22/bcommune/internal/ai"
	"github.com/mohanvarma22/bcommune/internal/domain"
	"github.com/mohanvarma22/bcommune/internal/platform/id"
)

// Snapshot is the full collection set a store starts from.
type Snapshot struct {
	CurrentUserID string

	Users         []domain.User
	Companies     []domain.Company
	Jobs          []domain.Job
	Stories       []domain.Story
	Events        []domain.Event
	Ventures      []domain.Venture
	Signals       []domain.Signal
	Conversations []domain.Conversation
	Notifications []domain.Notification
	Dashboards    []domain.SharedDashboard
}

// Store is the single source of truth for workspace state.
type Store struct {
	mu sync.Mutex
	wg sync.WaitGroup

	currentUserID string
	active        domain.ActiveProfile

	users         []domain.User
	companies     []domain.Company
	jobs          []domain.Job
	stories       []domain.Story
	events        []domain.Event
	ventures      []domain.Venture
	signals       []domain.Signal
	conversations []domain.Conversation
	notifications []domain.Notification
	dashboards    []domain.SharedDashboard

	clock       func() time.Time
	newID       func() (string, error)
	advisor     ai.Advisor
	rejectLimit int
}

// Option customizes store construction.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Store) { s.newID = newID }
}

// WithAdvisor wires the AI collaborator. Without one, enrichment is skipped
// and rejection feedback falls back to canned messages.
func WithAdvisor(advisor ai.Advisor) Option {
	return func(s *Store) { s.advisor = advisor }
}

// WithRejectConcurrency bounds the bulk-rejection fan-out.
func WithRejectConcurrency(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.rejectLimit = limit
		}
	}
}

// New builds a store from a snapshot. The snapshot's current user becomes
// the active profile. Each user's FirstBelieverFor list is derived from the
// venture believer sets so the two stay consistent regardless of how the
// snapshot was assembled.
func New(snapshot Snapshot, opts ...Option) (*Store, error) {
	s := &Store{
		currentUserID: snapshot.CurrentUserID,
		users:         append([]domain.User(nil), snapshot.Users...),
		companies:     append([]domain.Company(nil), snapshot.Companies...),
		jobs:          append([]domain.Job(nil), snapshot.Jobs...),
		stories:       append([]domain.Story(nil), snapshot.Stories...),
		events:        append([]domain.Event(nil), snapshot.Events...),
		ventures:      append([]domain.Venture(nil), snapshot.Ventures...),
		signals:       append([]domain.Signal(nil), snapshot.Signals...),
		conversations: append([]domain.Conversation(nil), snapshot.Conversations...),
		notifications: append([]domain.Notification(nil), snapshot.Notifications...),
		dashboards:    append([]domain.SharedDashboard(nil), snapshot.Dashboards...),
		clock:         time.Now,
		newID:         id.NewID,
		rejectLimit:   4,
	}
	for _, opt := range opts {
		opt(s)
	}

	current := s.userIndexLocked(s.currentUserID)
	if current < 0 {
		return nil, ErrCurrentUserRequired
	}
	for i, user := range s.users {
		var believerFor []string
		for _, venture := range s.ventures {
			if venture.HasFirstBeliever(user.ID) {
				believerFor = append(believerFor, venture.ID)
			}
		}
		user.FirstBelieverFor = believerFor
		s.users[i] = user
	}
	s.active = domain.ActiveProfile{
		Kind: domain.ProfileUser,
		ID:   s.users[current].ID,
		Name: s.users[current].Name,
	}
	return s, nil
}

// Wait blocks until background enrichment goroutines finish. Used on
// shutdown and in tests.
func (s *Store) Wait() {
	s.wg.Wait()
}

// CurrentUser returns the signed-in user.
func (s *Store) CurrentUser() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[s.userIndexLocked(s.currentUserID)]
}

// ActiveProfile returns the identity mutations currently act as.
func (s *Store) ActiveProfile() domain.ActiveProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Users returns all users.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}

// User returns one user by id.
func (s *Store) User(userID string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.userIndexLocked(userID); i >= 0 {
		return s.users[i], nil
	}
	return domain.User{}, ErrNotFound
}

// Companies returns all companies.
func (s *Store) Companies() []domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Company(nil), s.companies...)
}

// Company returns one company by id.
func (s *Store) Company(companyID string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.companyIndexLocked(companyID); i >= 0 {
		return s.companies[i], nil
	}
	return domain.Company{}, ErrNotFound
}

// Jobs returns all job postings.
func (s *Store) Jobs() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Job(nil), s.jobs...)
}

// Job returns one posting by id.
func (s *Store) Job(jobID string) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.jobIndexLocked(jobID); i >= 0 {
		return s.jobs[i], nil
	}
	return domain.Job{}, ErrNotFound
}

// Stories returns all stories.
func (s *Store) Stories() []domain.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Story(nil), s.stories...)
}

// Story returns one story by id.
func (s *Store) Story(storyID string) (domain.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.storyIndexLocked(storyID); i >= 0 {
		return s.stories[i], nil
	}
	return domain.Story{}, ErrNotFound
}

// Events returns all events.
func (s *Store) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

// Event returns one event by id.
func (s *Store) Event(eventID string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.eventIndexLocked(eventID); i >= 0 {
		return s.events[i], nil
	}
	return domain.Event{}, ErrNotFound
}

// Ventures returns all ventures.
func (s *Store) Ventures() []domain.Venture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Venture(nil), s.ventures...)
}

// Venture returns one venture by id.
func (s *Store) Venture(ventureID string) (domain.Venture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.ventureIndexLocked(ventureID); i >= 0 {
		return s.ventures[i], nil
	}
	return domain.Venture{}, ErrNotFound
}

// Signals returns all signals, newest first.
func (s *Store) Signals() []domain.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Signal(nil), s.signals...)
}

// Signal returns one signal by id.
func (s *Store) Signal(signalID string) (domain.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.signalIndexLocked(signalID); i >= 0 {
		return s.signals[i], nil
	}
	return domain.Signal{}, ErrNotFound
}

// Conversations returns all conversations.
func (s *Store) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Conversation(nil), s.conversations...)
}

// Conversation returns one conversation by id.
func (s *Store) Conversation(conversationID string) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.conversationIndexLocked(conversationID); i >= 0 {
		return s.conversations[i], nil
	}
	return domain.Conversation{}, ErrNotFound
}

// Notifications returns the inbox, newest first.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// Dashboards returns all shared dashboards.
func (s *Store) Dashboards() []domain.SharedDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SharedDashboard(nil), s.dashboards...)
}

// Dashboard resolves one shared dashboard by its capability id.
func (s *Store) Dashboard(dashboardID string) (domain.SharedDashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dashboard := range s.dashboards {
		if dashboard.ID == dashboardID {
			return dashboard, nil
		}
	}
	return domain.SharedDashboard{}, ErrNotFound
}

func (s *Store) userIndexLocked(userID string) int {
	for i, user := range s.users {
		if user.ID == userID {
			return i
		}
	}
	return -1
}

func (s *Store) companyIndexLocked(companyID string) int {
	for i, company := range s.companies {
		if company.ID == companyID {
			return i
		}
	}
	return -1
}

func (s *Store) jobIndexLocked(jobID string) int {
	for i, job := range s.jobs {
		if job.ID == jobID {
			return i
		}
	}
	return -1
}

func (s *Store) storyIndexLocked(storyID string) int {
	for i, story := range s.stories {
		if story.ID == storyID {
			return i
		}
	}
	return -1
}

func (s *Store) eventIndexLocked(eventID string) int {
	for i, event := range s.events {
		if event.ID == eventID {
			return i
		}
	}
	return -1
}

func (s *Store) ventureIndexLocked(ventureID string) int {
	for i, venture := range s.ventures {
		if venture.ID == ventureID {
			return i
		}
	}
	return -1
}

func (s *Store) signalIndexLocked(signalID string) int {
	for i, signal := range s.signals {
		if signal.ID == signalID {
			return i
		}
	}
	return -1
}

func (s *Store) conversationIndexLocked(conversationID string) int {
	for i, conversation := range s.conversations {
		if conversation.ID == conversationID {
			return i
		}
	}
	return -1
}

// replaceAt returns a copy of items with index i swapped for item. Mutations
// go through this so previously returned slices stay untouched.
func replaceAt[T any](items []T, i int, item T) []T {
	next := make([]T, len(items))
	copy(next, items)
	next[i] = item
	return next
}
