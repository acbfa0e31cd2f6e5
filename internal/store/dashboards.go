package store

import "github.com/mohanvarma22/bcommune/internal/domain"

// CreateSharedDashboard snapshots a fixed applicant subset for a job behind
// a fresh capability id. The dashboard is immutable once created; anyone
// holding the id can resolve it.
func (s *Store) CreateSharedDashboard(jobID string, applicantUserIDs []string) (domain.SharedDashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ji := s.jobIndexLocked(jobID)
	if ji < 0 {
		return domain.SharedDashboard{}, ErrNotFound
	}
	job := s.jobs[ji]
	for _, userID := range applicantUserIDs {
		if _, ok := job.Applicant(userID); !ok {
			return domain.SharedDashboard{}, ErrNotFound
		}
	}
	dashboardID, err := s.newID()
	if err != nil {
		return domain.SharedDashboard{}, err
	}
	dashboard := domain.SharedDashboard{
		ID:               dashboardID,
		JobID:            jobID,
		ApplicantUserIDs: append([]string(nil), applicantUserIDs...),
		CreatedAt:        s.clock(),
	}
	s.dashboards = append(append([]domain.SharedDashboard(nil), s.dashboards...), dashboard)
	return dashboard, nil
}
