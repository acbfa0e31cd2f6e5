package store

import (
	"context"
	"log"
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// JobInput describes a new posting. The company is the active profile.
type JobInput struct {
	Title       string
	Location    string
	Type        domain.JobType
	Description string
	Skills      []string

	SalaryRange      string
	ExperienceLevel  domain.ExperienceLevel
	Responsibilities []string
	Qualifications   []string
	Benefits         []string
	InterviewRounds  []domain.InterviewRound
}

// AddJob creates an open posting for the active company profile.
func (s *Store) AddJob(input JobInput) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active.Kind != domain.ProfileCompany {
		return domain.Job{}, ErrCompanyProfileRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return domain.Job{}, ErrTitleRequired
	}
	jobID, err := s.newID()
	if err != nil {
		return domain.Job{}, err
	}
	job := domain.Job{
		ID:               jobID,
		Title:            input.Title,
		CompanyID:        s.active.ID,
		Location:         input.Location,
		Type:             input.Type,
		PostedAt:         s.clock(),
		Status:           domain.JobOpen,
		Description:      input.Description,
		Skills:           input.Skills,
		PosterID:         s.currentUserID,
		SalaryRange:      input.SalaryRange,
		ExperienceLevel:  input.ExperienceLevel,
		Responsibilities: input.Responsibilities,
		Qualifications:   input.Qualifications,
		Benefits:         input.Benefits,
		InterviewRounds:  input.InterviewRounds,
	}
	s.jobs = append([]domain.Job{job}, s.jobs...)
	return job, nil
}

// ApplyForJob records the current user's application and kicks off advisor
// enrichment in the background. The applicant record is visible immediately;
// the analysis arrives later or not at all.
func (s *Store) ApplyForJob(ctx context.Context, jobID string) error {
	s.mu.Lock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	job := s.jobs[i]
	if job.Status != domain.JobOpen {
		s.mu.Unlock()
		return ErrJobClosed
	}
	ci := s.companyIndexLocked(job.CompanyID)
	if ci < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	if _, ok := job.Applicant(s.currentUserID); ok {
		s.mu.Unlock()
		return ErrAlreadyApplied
	}

	detail := domain.ApplicantDetail{UserID: s.currentUserID, Status: domain.StatusApplied}
	job.Applicants = append(append([]domain.ApplicantDetail(nil), job.Applicants...), detail)
	s.jobs = replaceAt(s.jobs, i, job)
	if err := s.addNotificationLocked(domain.Notification{
		Type:        domain.NotifyApplication,
		ActorID:     s.currentUserID,
		RecipientID: job.PosterID,
		TargetID:    job.ID,
		TargetType:  domain.TargetJob,
	}); err != nil {
		s.mu.Unlock()
		return err
	}

	advisor := s.advisor
	applicant := s.users[s.userIndexLocked(s.currentUserID)]
	company := s.companies[ci]
	generation := detail.Generation
	s.mu.Unlock()

	if advisor == nil {
		return nil
	}
	s.wg.Add(1)
	go func(ctx context.Context) {
		defer s.wg.Done()
		analysis, err := advisor.AnalyzeApplicant(ctx, job, applicant, company)
		if err != nil {
			log.Printf("store: applicant analysis failed job=%s user=%s: %v", job.ID, applicant.ID, err)
			return
		}
		s.saveAnalysisIfCurrent(job.ID, applicant.ID, generation, analysis)
	}(context.WithoutCancel(ctx))
	return nil
}

// UpdateJobStatus moves a posting between open and closed.
func (s *Store) UpdateJobStatus(jobID string, status domain.JobStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.jobIndexLocked(jobID)
	if i < 0 {
		return ErrNotFound
	}
	job := s.jobs[i]
	job.Status = status
	s.jobs = replaceAt(s.jobs, i, job)
	return nil
}
