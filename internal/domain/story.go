package domain

// StoryCategory identifies one editorial category.
type StoryCategory string

const (
	CategoryFounderJourney StoryCategory = "Founder Journey"
	CategoryTechDeepDive   StoryCategory = "Tech Deep Dive"
	CategoryGrowthHacking  StoryCategory = "Growth Hacking"
	CategoryDesignThinking StoryCategory = "Design Thinking"
	CategoryOpinion        StoryCategory = "Opinion"
)

// StoryStatus is the publication lifecycle state.
type StoryStatus string

const (
	// StoryPublished is visible in the feed.
	StoryPublished StoryStatus = "Published"
	// StoryArchived is hidden from the feed but retained.
	StoryArchived StoryStatus = "Archived"
)

// Story is one long-form post. Stories may be authored as a user or on
// behalf of a company.
type Story struct {
	ID       string
	Title    string
	Excerpt  string
	Content  string
	AuthorID string
	// CompanyID is set when the story was published from a company profile.
	CompanyID string
	ImageURL  string

	// Engagements holds ids of users who engaged with the story.
	Engagements []string
	Likes       int
	Comments    []Comment
	Shares      int

	Category StoryCategory
	Tags     []string
	// ReadingTime is minutes, derived from content length at creation.
	ReadingTime int
	Status      StoryStatus
}
