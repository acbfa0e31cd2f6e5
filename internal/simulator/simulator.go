// Package simulator synthesizes ambient activity around the current user.
// On a recurring interval it picks one other user and one activity category;
// when the current user owns a matching target it injects a notification into
// the store's inbox. It never mutates entities.
package simulator

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/mohanvarma22/bcommune/internal/domain"
	"github.com/mohanvarma22/bcommune/internal/store"
)

// DefaultInterval is how often a tick fires when no override is given.
const DefaultInterval = 20 * time.Second

// State is the slice of the store the simulator needs.
type State interface {
	CurrentUser() domain.User
	Users() []domain.User
	Jobs() []domain.Job
	Stories() []domain.Story
	Ventures() []domain.Venture
	InjectNotification(store.NotificationInput) error
}

// Simulator injects synthetic notifications on a recurring interval.
type Simulator struct {
	state    State
	interval time.Duration
	rng      *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithInterval overrides the tick interval.
func WithInterval(interval time.Duration) Option {
	return func(s *Simulator) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithRNG replaces the random source, for deterministic runs.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Simulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New builds a simulator over state.
func New(state State, opts ...Option) *Simulator {
	s := &Simulator{
		state:    state,
		interval: DefaultInterval,
		rng:      NewSeededRNG(0, false),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeededRNG creates a seeded random number generator.
// If seed is 0, uses current time and prints the seed for reproducibility.
func NewSeededRNG(seed int64, verbose bool) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		if verbose {
			fmt.Fprintf(os.Stderr, "Using seed: %d\n", seed)
		}
	}
	return rand.New(rand.NewSource(seed))
}

// Run ticks until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				log.Printf("simulator tick failed: %v", err)
			}
		}
	}
}

// Tick synthesizes at most one notification. A tick is a no-op when there is
// no other user to act, or when the current user owns no target in the drawn
// category.
func (s *Simulator) Tick() error {
	current := s.state.CurrentUser()
	actor, ok := s.randomOtherUser(current.ID)
	if !ok {
		return nil
	}

	switch s.rng.Intn(3) {
	case 0:
		job, ok := s.randomPostedJob(current.ID)
		if !ok {
			return nil
		}
		return s.state.InjectNotification(store.NotificationInput{
			Type:       domain.NotifyApplication,
			ActorID:    actor.ID,
			TargetID:   job.ID,
			TargetType: domain.TargetJob,
		})
	case 1:
		story, ok := s.randomAuthoredStory(current.ID)
		if !ok {
			return nil
		}
		return s.state.InjectNotification(store.NotificationInput{
			Type:       domain.NotifyComment,
			ActorID:    actor.ID,
			TargetID:   story.ID,
			TargetType: domain.TargetStory,
			Message:    "This is a great story!",
		})
	default:
		venture, ok := s.randomOwnedVenture(current.ID)
		if !ok {
			return nil
		}
		return s.state.InjectNotification(store.NotificationInput{
			Type:       domain.NotifyInterest,
			ActorID:    actor.ID,
			TargetID:   venture.ID,
			TargetType: domain.TargetVenture,
		})
	}
}

func (s *Simulator) randomOtherUser(currentID string) (domain.User, bool) {
	var others []domain.User
	for _, user := range s.state.Users() {
		if user.ID != currentID {
			others = append(others, user)
		}
	}
	if len(others) == 0 {
		return domain.User{}, false
	}
	return others[s.rng.Intn(len(others))], true
}

func (s *Simulator) randomPostedJob(currentID string) (domain.Job, bool) {
	var posted []domain.Job
	for _, job := range s.state.Jobs() {
		if job.PosterID == currentID {
			posted = append(posted, job)
		}
	}
	if len(posted) == 0 {
		return domain.Job{}, false
	}
	return posted[s.rng.Intn(len(posted))], true
}

func (s *Simulator) randomAuthoredStory(currentID string) (domain.Story, bool) {
	var authored []domain.Story
	for _, story := range s.state.Stories() {
		if story.AuthorID == currentID {
			authored = append(authored, story)
		}
	}
	if len(authored) == 0 {
		return domain.Story{}, false
	}
	return authored[s.rng.Intn(len(authored))], true
}

func (s *Simulator) randomOwnedVenture(currentID string) (domain.Venture, bool) {
	var owned []domain.Venture
	for _, venture := range s.state.Ventures() {
		if venture.OwnerID == currentID {
			owned = append(owned, venture)
		}
	}
	if len(owned) == 0 {
		return domain.Venture{}, false
	}
	return owned[s.rng.Intn(len(owned))], true
}
