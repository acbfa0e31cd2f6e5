package domain

// Suggestion is the advisor's pipeline hint for an applicant.
type Suggestion string

const (
	// SuggestShortlist recommends fast-tracking the applicant.
	SuggestShortlist Suggestion = "shortlist"
	// SuggestReject recommends declining the applicant.
	SuggestReject Suggestion = "reject"
	// SuggestNone means the advisor made no recommendation.
	SuggestNone Suggestion = ""
)

// SkillValidation is the advisor's evidence check for one required skill.
type SkillValidation struct {
	Skill       string
	HasEvidence bool
	Evidence    string
}

// ApplicantAnalysis is the advisor's structured review of one applicant
// against one job posting. FitScore is 0-100.
type ApplicantAnalysis struct {
	FitScore           int
	Summary            string
	Strengths          []string
	Weaknesses         []string
	SkillValidation    []SkillValidation
	ProjectDeepDive    string
	CultureAlignment   string
	InterviewQuestions []string
	Suggestion         Suggestion
}

// Recommendation names the advisor's preferred candidate in a comparison.
type Recommendation struct {
	UserID    string
	Reasoning string
}

// CandidateBreakdown is one candidate's strengths and weaknesses inside a
// comparison.
type CandidateBreakdown struct {
	UserID     string
	Strengths  []string
	Weaknesses []string
}

// ComparisonAnalysis is the advisor's side-by-side review of a small
// candidate set.
type ComparisonAnalysis struct {
	Summary        string
	Recommendation Recommendation
	Breakdowns     []CandidateBreakdown
}

// ShortlistPrediction is the advisor's candidate-side estimate of being
// shortlisted for a job. Probability is 0-100.
type ShortlistPrediction struct {
	Probability int
	Reasoning   string
}
