// Package ai defines the recruitment advisor boundary and its Gemini-backed
// implementation. The store treats the advisor as an opaque, possibly-slow,
// possibly-failing remote collaborator: failures are logged by callers and
// leave records without enrichment.
package ai

import (
	"context"
	"errors"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

var (
	// ErrAPIKeyRequired indicates the provider API key is missing.
	ErrAPIKeyRequired = errors.New("advisor api key is required")
	// ErrCandidateCount indicates a comparison was requested for an
	// unsupported number of candidates.
	ErrCandidateCount = errors.New("comparison requires 2 to 4 candidates")
	// ErrEmptyResponse indicates the provider returned no usable content.
	ErrEmptyResponse = errors.New("advisor returned empty response")
)

// Fallback feedback used when the advisor cannot produce rejection text.
const (
	// FallbackComparativeRejection replaces comparative feedback on failure.
	FallbackComparativeRejection = "After careful consideration, the team has decided to move forward with other candidates whose experience more closely matched the specific requirements of the role at this time."
	// FallbackRejection replaces standalone feedback on failure.
	FallbackRejection = "After careful consideration, the team has decided to move forward with other candidates whose experience more closely matched the requirements of the role at this time."
)

// Advisor produces AI-assisted recruitment judgments. Implementations may be
// slow and may fail; every call honors context cancellation.
type Advisor interface {
	// AnalyzeApplicant reviews one applicant against one job posting.
	AnalyzeApplicant(ctx context.Context, job domain.Job, applicant domain.User, company domain.Company) (domain.ApplicantAnalysis, error)
	// RejectionFeedback drafts standalone constructive feedback for a
	// rejected applicant.
	RejectionFeedback(ctx context.Context, job domain.Job, applicant domain.User) (string, error)
	// ComparativeRejectionFeedback drafts feedback contrasting the rejected
	// applicant with currently successful applicants.
	ComparativeRejectionFeedback(ctx context.Context, job domain.Job, applicant domain.User, successful []domain.User) (string, error)
	// CompareCandidates reviews 2-4 candidates side by side and recommends
	// one.
	CompareCandidates(ctx context.Context, job domain.Job, candidates []domain.User) (domain.ComparisonAnalysis, error)
	// ShortlistPrediction estimates an applicant's chance of being
	// shortlisted.
	ShortlistPrediction(ctx context.Context, job domain.Job, user domain.User) (domain.ShortlistPrediction, error)
}
