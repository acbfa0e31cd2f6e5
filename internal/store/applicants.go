package store

import (
	"context"
	"log"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mohanvarma22/bcommune/internal/ai"
	"github.com/mohanvarma22/bcommune/internal/domain"
)

// RateApplicant sets a recruiter rating on one application.
func (s *Store) RateApplicant(jobID, userID string, rating int) error {
	return s.updateApplicant(jobID, userID, func(_ domain.Job, detail *domain.ApplicantDetail) {
		detail.Rating = rating
	})
}

// UpdateApplicantStatus moves an applicant through the pipeline. Moving away
// from an interview round drops any scheduled interview, and a manual status
// change always clears the advisor's pending suggestion.
func (s *Store) UpdateApplicantStatus(jobID, userID string, status domain.ApplicantStatus) error {
	return s.updateApplicant(jobID, userID, func(job domain.Job, detail *domain.ApplicantDetail) {
		detail.Status = status
		if !job.HasInterviewRound(status) {
			detail.ScheduledInterview = nil
		}
		detail.AISuggestion = domain.SuggestNone
	})
}

// MarkApplicantReviewed flags an application as seen by a recruiter.
func (s *Store) MarkApplicantReviewed(jobID, userID string) error {
	return s.updateApplicant(jobID, userID, func(_ domain.Job, detail *domain.ApplicantDetail) {
		detail.HasBeenReviewed = true
	})
}

// ScheduleInterview books an interview slot for an applicant.
func (s *Store) ScheduleInterview(jobID, userID string, details domain.ScheduledInterview) error {
	return s.updateApplicant(jobID, userID, func(_ domain.Job, detail *domain.ApplicantDetail) {
		detail.ScheduledInterview = &details
	})
}

// ApplicantAnalysisInput pairs one applicant with an advisor analysis.
type ApplicantAnalysisInput struct {
	UserID   string
	Analysis domain.ApplicantAnalysis
}

// SaveApplicantAnalyses stores advisor analyses on a job's applicants. The
// star rating is derived from the fit score. Analyses for unknown applicants
// are skipped.
func (s *Store) SaveApplicantAnalyses(jobID string, analyses []ApplicantAnalysisInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		return ErrNotFound
	}
	job := s.jobs[i]
	applicants := append([]domain.ApplicantDetail(nil), job.Applicants...)
	for _, input := range analyses {
		for j, detail := range applicants {
			if detail.UserID != input.UserID {
				continue
			}
			applyAnalysis(&detail, input.Analysis)
			detail.Generation++
			applicants[j] = detail
		}
	}
	job.Applicants = applicants
	s.jobs = replaceAt(s.jobs, i, job)
	return nil
}

// saveAnalysisIfCurrent stores one background analysis result, unless the
// applicant record was mutated after the analysis started.
func (s *Store) saveAnalysisIfCurrent(jobID, userID string, generation uint64, analysis domain.ApplicantAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		return
	}
	job := s.jobs[i]
	for j, detail := range job.Applicants {
		if detail.UserID != userID {
			continue
		}
		if detail.Generation != generation {
			log.Printf("store: discarding stale analysis job=%s user=%s generation=%d current=%d",
				jobID, userID, generation, detail.Generation)
			return
		}
		applyAnalysis(&detail, analysis)
		detail.Generation++
		applicants := append([]domain.ApplicantDetail(nil), job.Applicants...)
		applicants[j] = detail
		job.Applicants = applicants
		s.jobs = replaceAt(s.jobs, i, job)
		return
	}
}

func applyAnalysis(detail *domain.ApplicantDetail, analysis domain.ApplicantAnalysis) {
	detail.Analysis = &analysis
	detail.Rating = int(math.Round(float64(analysis.FitScore) / 20))
	detail.AISuggestion = analysis.Suggestion
}

// ApplicantRatingInput carries one externally computed rating and reasoning.
type ApplicantRatingInput struct {
	UserID    string
	Rating    int
	Reasoning string
}

// UpdateApplicantRatings stores batch rating results on a job's applicants.
func (s *Store) UpdateApplicantRatings(jobID string, results []ApplicantRatingInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		return ErrNotFound
	}
	job := s.jobs[i]
	applicants := append([]domain.ApplicantDetail(nil), job.Applicants...)
	for _, result := range results {
		for j, detail := range applicants {
			if detail.UserID != result.UserID {
				continue
			}
			detail.Rating = result.Rating
			detail.AIReasoning = result.Reasoning
			detail.Generation++
			applicants[j] = detail
		}
	}
	job.Applicants = applicants
	s.jobs = replaceAt(s.jobs, i, job)
	return nil
}

// RejectApplicant declines an application and attaches feedback. When other
// applicants were hired or shortlisted the advisor drafts comparative
// feedback; advisor failure falls back to a canned message so the rejection
// itself never fails.
func (s *Store) RejectApplicant(ctx context.Context, jobID, userID string) error {
	s.mu.Lock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	job := s.jobs[i]
	if _, ok := job.Applicant(userID); !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	ui := s.userIndexLocked(userID)
	if ui < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	applicant := s.users[ui]
	var successful []domain.User
	for _, detail := range job.Applicants {
		if detail.UserID == userID {
			continue
		}
		if detail.Status != domain.StatusHired && detail.Status != domain.StatusShortlisted {
			continue
		}
		if j := s.userIndexLocked(detail.UserID); j >= 0 {
			successful = append(successful, s.users[j])
		}
	}
	advisor := s.advisor
	s.mu.Unlock()

	feedback := draftRejectionFeedback(ctx, advisor, job, applicant, successful)

	return s.updateApplicant(jobID, userID, func(job domain.Job, detail *domain.ApplicantDetail) {
		detail.Status = domain.StatusRejected
		detail.ScheduledInterview = nil
		detail.AISuggestion = domain.SuggestNone
		detail.AIReasoning = feedback
	})
}

func draftRejectionFeedback(ctx context.Context, advisor ai.Advisor, job domain.Job, applicant domain.User, successful []domain.User) string {
	if len(successful) > 0 {
		if advisor != nil {
			feedback, err := advisor.ComparativeRejectionFeedback(ctx, job, applicant, successful)
			if err == nil {
				return feedback
			}
			log.Printf("store: comparative rejection feedback failed job=%s user=%s: %v", job.ID, applicant.ID, err)
		}
		return ai.FallbackComparativeRejection
	}
	if advisor != nil {
		feedback, err := advisor.RejectionFeedback(ctx, job, applicant)
		if err == nil {
			return feedback
		}
		log.Printf("store: rejection feedback failed job=%s user=%s: %v", job.ID, applicant.ID, err)
	}
	return ai.FallbackRejection
}

// BulkUpdateApplicantStatus applies one status to several applicants.
func (s *Store) BulkUpdateApplicantStatus(jobID string, userIDs []string, status domain.ApplicantStatus) error {
	for _, userID := range userIDs {
		if err := s.UpdateApplicantStatus(jobID, userID, status); err != nil {
			return err
		}
	}
	return nil
}

// BulkRejectApplicants rejects several applicants, fanning the advisor calls
// out with bounded concurrency.
func (s *Store) BulkRejectApplicants(ctx context.Context, jobID string, userIDs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.rejectLimit)
	for _, userID := range userIDs {
		g.Go(func() error {
			return s.RejectApplicant(ctx, jobID, userID)
		})
	}
	return g.Wait()
}

// SendBulkEmails delivers a templated outreach message to several applicants
// over the in-app conversation channel. The placeholders {applicantName},
// {jobTitle}, {companyName} and {recruiterName} are substituted per
// recipient.
func (s *Store) SendBulkEmails(jobID string, userIDs []string, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ji := s.jobIndexLocked(jobID)
	if ji < 0 {
		return ErrNotFound
	}
	job := s.jobs[ji]
	var companyName string
	if ci := s.companyIndexLocked(job.CompanyID); ci >= 0 {
		companyName = s.companies[ci].Name
	}
	recruiter := s.users[s.userIndexLocked(s.currentUserID)]

	for _, userID := range userIDs {
		ui := s.userIndexLocked(userID)
		if ui < 0 {
			return ErrNotFound
		}
		user := s.users[ui]
		replacer := strings.NewReplacer(
			"{applicantName}", firstName(user.Name),
			"{jobTitle}", job.Title,
			"{companyName}", companyName,
			"{recruiterName}", recruiter.Name,
		)
		text := replacer.Replace(body)
		if line := replacer.Replace(subject); strings.TrimSpace(line) != "" {
			text = line + "\n\n" + text
		}
		ci, err := s.findOrCreateConversationLocked(s.currentUserID, userID)
		if err != nil {
			return err
		}
		if err := s.appendMessageLocked(ci, s.currentUserID, text, jobID); err != nil {
			return err
		}
	}
	return nil
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

// CompareCandidates asks the advisor for a side-by-side review of 2-4
// applicants on one job.
func (s *Store) CompareCandidates(ctx context.Context, jobID string, userIDs []string) (domain.ComparisonAnalysis, error) {
	if s.advisor == nil {
		return domain.ComparisonAnalysis{}, ErrAdvisorNotConfigured
	}
	s.mu.Lock()
	ji := s.jobIndexLocked(jobID)
	if ji < 0 {
		s.mu.Unlock()
		return domain.ComparisonAnalysis{}, ErrNotFound
	}
	job := s.jobs[ji]
	candidates := make([]domain.User, 0, len(userIDs))
	for _, userID := range userIDs {
		ui := s.userIndexLocked(userID)
		if ui < 0 {
			s.mu.Unlock()
			return domain.ComparisonAnalysis{}, ErrNotFound
		}
		candidates = append(candidates, s.users[ui])
	}
	s.mu.Unlock()

	return s.advisor.CompareCandidates(ctx, job, candidates)
}

// PredictShortlist asks the advisor how likely the current user is to be
// shortlisted for a job.
func (s *Store) PredictShortlist(ctx context.Context, jobID string) (domain.ShortlistPrediction, error) {
	if s.advisor == nil {
		return domain.ShortlistPrediction{}, ErrAdvisorNotConfigured
	}
	s.mu.Lock()
	ji := s.jobIndexLocked(jobID)
	if ji < 0 {
		s.mu.Unlock()
		return domain.ShortlistPrediction{}, ErrNotFound
	}
	job := s.jobs[ji]
	user := s.users[s.userIndexLocked(s.currentUserID)]
	s.mu.Unlock()

	return s.advisor.ShortlistPrediction(ctx, job, user)
}

// updateApplicant applies one edit to an applicant record and bumps its
// generation so in-flight enrichment for the old record discards itself.
func (s *Store) updateApplicant(jobID, userID string, fn func(job domain.Job, detail *domain.ApplicantDetail)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		return ErrNotFound
	}
	job := s.jobs[i]
	for j, detail := range job.Applicants {
		if detail.UserID != userID {
			continue
		}
		fn(job, &detail)
		detail.Generation++
		applicants := append([]domain.ApplicantDetail(nil), job.Applicants...)
		applicants[j] = detail
		job.Applicants = applicants
		s.jobs = replaceAt(s.jobs, i, job)
		return nil
	}
	return ErrNotFound
}
