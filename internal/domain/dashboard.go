package domain

import "time"

// SharedDashboard is a read-only, link-addressable view of a fixed applicant
// subset for a job. The id doubles as the bearer capability: anyone holding
// it can resolve the view. Dashboards are immutable after creation.
type SharedDashboard struct {
	ID               string
	JobID            string
	ApplicantUserIDs []string
	CreatedAt        time.Time
}
