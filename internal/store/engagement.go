package store

import (
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// LikeJob increments a posting's like counter.
func (s *Store) LikeJob(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		return ErrNotFound
	}
	job := s.jobs[i]
	job.Likes++
	s.jobs = replaceAt(s.jobs, i, job)
	return nil
}

// LikeStory increments a story's like counter.
func (s *Store) LikeStory(storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.storyIndexLocked(storyID)
	if i < 0 {
		return ErrNotFound
	}
	story := s.stories[i]
	story.Likes++
	s.stories = replaceAt(s.stories, i, story)
	return nil
}

// AddComment appends a comment by the current user to a job, story, or
// signal.
func (s *Store) AddComment(target domain.TargetType, targetID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}
	commentID, err := s.newID()
	if err != nil {
		return err
	}
	comment := domain.Comment{
		ID:        commentID,
		AuthorID:  s.currentUserID,
		Text:      text,
		CreatedAt: s.clock(),
	}
	switch target {
	case domain.TargetJob:
		i := s.jobIndexLocked(targetID)
		if i < 0 {
			return ErrNotFound
		}
		job := s.jobs[i]
		job.Comments = append(append([]domain.Comment(nil), job.Comments...), comment)
		s.jobs = replaceAt(s.jobs, i, job)
	case domain.TargetStory:
		i := s.storyIndexLocked(targetID)
		if i < 0 {
			return ErrNotFound
		}
		story := s.stories[i]
		story.Comments = append(append([]domain.Comment(nil), story.Comments...), comment)
		s.stories = replaceAt(s.stories, i, story)
	case domain.TargetSignal:
		i := s.signalIndexLocked(targetID)
		if i < 0 {
			return ErrNotFound
		}
		signal := s.signals[i]
		signal.Comments = append(append([]domain.Comment(nil), signal.Comments...), comment)
		s.signals = replaceAt(s.signals, i, signal)
	default:
		return ErrNotFound
	}
	return nil
}
