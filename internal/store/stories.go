package store

import (
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// StoryInput describes a new story.
type StoryInput struct {
	Title    string
	Excerpt  string
	Content  string
	ImageURL string
	Category domain.StoryCategory
	Tags     []string
	Status   domain.StoryStatus
}

// AddStory publishes a story authored by the current user. When a company
// profile is active the story carries the company byline as well. Reading
// time is derived from content length at 200 words per minute.
func (s *Store) AddStory(input StoryInput) (domain.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(input.Title) == "" {
		return domain.Story{}, ErrTitleRequired
	}
	storyID, err := s.newID()
	if err != nil {
		return domain.Story{}, err
	}
	status := input.Status
	if status == "" {
		status = domain.StoryPublished
	}
	story := domain.Story{
		ID:          storyID,
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		AuthorID:    s.currentUserID,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Tags:        input.Tags,
		ReadingTime: (len(strings.Fields(input.Content)) + 199) / 200,
		Status:      status,
	}
	if s.active.Kind == domain.ProfileCompany {
		story.CompanyID = s.active.ID
	}
	s.stories = append([]domain.Story{story}, s.stories...)
	return story, nil
}

// UpdateStoryStatus moves a story between published and archived.
func (s *Store) UpdateStoryStatus(storyID string, status domain.StoryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.storyIndexLocked(storyID)
	if i < 0 {
		return ErrNotFound
	}
	story := s.stories[i]
	story.Status = status
	s.stories = replaceAt(s.stories, i, story)
	return nil
}

// DeleteStory removes a story entirely. Stories are the only deletable
// entity.
func (s *Store) DeleteStory(storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.storyIndexLocked(storyID)
	if i < 0 {
		return ErrNotFound
	}
	stories := make([]domain.Story, 0, len(s.stories)-1)
	stories = append(stories, s.stories[:i]...)
	stories = append(stories, s.stories[i+1:]...)
	s.stories = stories
	return nil
}
