package domain

// TeamRole identifies one company team membership role.
type TeamRole string

const (
	// TeamRoleOwner is the company creator role.
	TeamRoleOwner TeamRole = "Owner"
	// TeamRoleAdmin can manage company settings and postings.
	TeamRoleAdmin TeamRole = "Admin"
	// TeamRoleRecruiter can manage applicants for company postings.
	TeamRoleRecruiter TeamRole = "Recruiter"
)

// TeamMember is one user's membership in a company team.
type TeamMember struct {
	UserID string
	Role   TeamRole
}

// Company is one company workspace. Companies are never deleted.
type Company struct {
	ID         string
	Name       string
	LogoURL    string
	Tagline    string
	Website    string
	Location   string
	Industry   string
	Size       string
	About      string
	Vision     string
	IsVerified bool

	// Team is ordered; the first Owner entry is the creator.
	Team         []TeamMember
	Integrations Integrations
}
