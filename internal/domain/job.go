package domain

import "time"

// JobType identifies one employment arrangement.
type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobContract   JobType = "Contract"
	JobInternship JobType = "Internship"
)

// JobStatus is the posting lifecycle state.
type JobStatus string

const (
	// JobOpen accepts new applications.
	JobOpen JobStatus = "Open"
	// JobClosed no longer accepts applications.
	JobClosed JobStatus = "Closed"
)

// ExperienceLevel identifies the seniority a posting targets.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "Entry"
	LevelMid       ExperienceLevel = "Mid"
	LevelSenior    ExperienceLevel = "Senior"
	LevelLead      ExperienceLevel = "Lead"
	LevelPrincipal ExperienceLevel = "Principal"
)

// ApplicantStatus is one applicant's pipeline position. The well-known values
// below are not a closed enum: a job's configured interview rounds introduce
// additional reachable statuses, and any status is reachable from any status.
type ApplicantStatus string

const (
	StatusApplied     ApplicantStatus = "Applied"
	StatusShortlisted ApplicantStatus = "Shortlisted"
	StatusHired       ApplicantStatus = "Hired"
	StatusRejected    ApplicantStatus = "Rejected"
)

// InterviewRound is one configured interview stage for a job. Round names are
// configuration: moving an applicant to a round name is a status transition.
type InterviewRound struct {
	Name        string
	Description string
}

// ScheduledInterview records a booked interview slot for an applicant.
type ScheduledInterview struct {
	Date         string
	Time         string
	Interviewers []string
	VideoLink    string
}

// ApplicantDetail is one user's application on one job. At most one detail
// exists per (job, user) pair.
type ApplicantDetail struct {
	UserID string
	Status ApplicantStatus
	Rating int

	AIReasoning        string
	Analysis           *ApplicantAnalysis
	AISuggestion       Suggestion
	ScheduledInterview *ScheduledInterview
	HasBeenReviewed    bool

	// Generation increments on every mutation of this record. Asynchronous
	// enrichment carries the generation it read and discards its result when
	// the record changed underneath it.
	Generation uint64
}

// Comment is one comment on a job, story, or signal.
type Comment struct {
	ID        string
	AuthorID  string
	Text      string
	CreatedAt time.Time
}

// Job is one posting owned by a company.
type Job struct {
	ID          string
	Title       string
	CompanyID   string
	Location    string
	Type        JobType
	PostedAt    time.Time
	Status      JobStatus
	Description string
	Skills      []string
	// PosterID is the user who created the posting while acting as the
	// company.
	PosterID string

	Applicants []ApplicantDetail
	Likes      int
	Comments   []Comment

	SalaryRange      string
	ExperienceLevel  ExperienceLevel
	Responsibilities []string
	Qualifications   []string
	Benefits         []string
	InterviewRounds  []InterviewRound
}

// Applicant returns the applicant detail for userID, if present.
func (j Job) Applicant(userID string) (ApplicantDetail, bool) {
	for _, a := range j.Applicants {
		if a.UserID == userID {
			return a, true
		}
	}
	return ApplicantDetail{}, false
}

// HasInterviewRound reports whether name matches a configured round.
func (j Job) HasInterviewRound(name ApplicantStatus) bool {
	for _, r := range j.InterviewRounds {
		if r.Name == string(name) {
			return true
		}
	}
	return false
}
