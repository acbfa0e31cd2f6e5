package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

func TestAddJobRequiresCompanyProfile(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.AddJob(JobInput{Title: "Engineer"}); !errors.Is(err, ErrCompanyProfileRequired) {
		t.Fatalf("err = %v, want ErrCompanyProfileRequired", err)
	}
}

func TestApplyForJobTwice(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.SwitchProfile(domain.ProfileUser, "user-2"); err != nil {
		t.Fatalf("switch profile: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("second apply err = %v, want ErrAlreadyApplied", err)
	}

	job, err := s.Job("job-1")
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	if got := len(job.Applicants); got != 1 {
		t.Fatalf("applicants = %d, want 1", got)
	}
}

func TestApplyForClosedJob(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.UpdateJobStatus("job-1", domain.JobClosed); err != nil {
		t.Fatalf("close job: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); !errors.Is(err, ErrJobClosed) {
		t.Fatalf("err = %v, want ErrJobClosed", err)
	}
}

func TestApplyForJobUnknown(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.ApplyForJob(context.Background(), "job-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyForJobEnrichesInBackground(t *testing.T) {
	t.Parallel()

	advisor := &fakeAdvisor{
		analysis: domain.ApplicantAnalysis{
			FitScore:   88,
			Summary:    "Strong fit.",
			Suggestion: domain.SuggestShortlist,
		},
	}
	s := newTestStore(t, WithAdvisor(advisor))
	if err := s.SwitchProfile(domain.ProfileUser, "user-2"); err != nil {
		t.Fatalf("switch profile: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	s.Wait()

	job, err := s.Job("job-1")
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	detail, ok := job.Applicant("user-2")
	if !ok {
		t.Fatal("expected applicant record")
	}
	if detail.Analysis == nil || detail.Analysis.Summary != "Strong fit." {
		t.Fatalf("analysis = %+v, want stored summary", detail.Analysis)
	}
	if detail.Rating != 4 {
		t.Fatalf("rating = %d, want 4 derived from fit score 88", detail.Rating)
	}
	if detail.AISuggestion != domain.SuggestShortlist {
		t.Fatalf("suggestion = %q, want shortlist", detail.AISuggestion)
	}
}

func TestApplyForJobAnalysisFailureLeavesRecordBare(t *testing.T) {
	t.Parallel()

	advisor := &fakeAdvisor{analysisErr: errors.New("provider down")}
	s := newTestStore(t, WithAdvisor(advisor))
	if err := s.SwitchProfile(domain.ProfileUser, "user-2"); err != nil {
		t.Fatalf("switch profile: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	s.Wait()

	job, err := s.Job("job-1")
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	detail, ok := job.Applicant("user-2")
	if !ok {
		t.Fatal("expected applicant record")
	}
	if detail.Analysis != nil || detail.Rating != 0 {
		t.Fatalf("detail = %+v, want unenriched record", detail)
	}
}

func TestStaleAnalysisIsDiscarded(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.SwitchProfile(domain.ProfileUser, "user-2"); err != nil {
		t.Fatalf("switch profile: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	// A recruiter touches the record while the analysis is in flight.
	if err := s.RateApplicant("job-1", "user-2", 2); err != nil {
		t.Fatalf("rate applicant: %v", err)
	}

	s.saveAnalysisIfCurrent("job-1", "user-2", 0, domain.ApplicantAnalysis{FitScore: 90, Summary: "late"})

	job, err := s.Job("job-1")
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	detail, _ := job.Applicant("user-2")
	if detail.Analysis != nil {
		t.Fatal("stale analysis should have been discarded")
	}
	if detail.Rating != 2 {
		t.Fatalf("rating = %d, want recruiter rating preserved", detail.Rating)
	}
}

func TestFreshAnalysisIsStored(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.SwitchProfile(domain.ProfileUser, "user-2"); err != nil {
		t.Fatalf("switch profile: %v", err)
	}
	if err := s.ApplyForJob(context.Background(), "job-1"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	s.saveAnalysisIfCurrent("job-1", "user-2", 0, domain.ApplicantAnalysis{FitScore: 60, Summary: "on time"})

	job, err := s.Job("job-1")
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	detail, _ := job.Applicant("user-2")
	if detail.Analysis == nil || detail.Analysis.Summary != "on time" {
		t.Fatalf("analysis = %+v, want stored", detail.Analysis)
	}
	if detail.Rating != 3 {
		t.Fatalf("rating = %d, want 3 derived from fit score 60", detail.Rating)
	}
}
