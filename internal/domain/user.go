package domain

// Experience captures one prior role on a user profile.
type Experience struct {
	Role        string
	Company     string
	Period      string
	Description string
}

// Project captures one portfolio entry on a user profile.
type Project struct {
	Name        string
	Description string
	URL         string
	IsFeatured  bool
	ImageURL    string
}

// Education captures one education entry on a user profile.
type Education struct {
	Institution string
	Degree      string
	Period      string
}

// Certification captures one certification entry on a user profile.
type Certification struct {
	Name   string
	Issuer string
	Date   string
}

// Language captures one spoken language and its proficiency.
type Language struct {
	Name        string
	Proficiency string
}

// IntegrationProvider identifies one external calendar/mail provider.
type IntegrationProvider string

const (
	// IntegrationGoogle is the Google workspace integration.
	IntegrationGoogle IntegrationProvider = "google"
	// IntegrationMicrosoft is the Microsoft 365 integration.
	IntegrationMicrosoft IntegrationProvider = "microsoft"
)

// Integrations holds per-provider toggle state.
type Integrations struct {
	Google    bool
	Microsoft bool
}

// Enabled reports whether the given provider toggle is on.
func (i Integrations) Enabled(provider IntegrationProvider) bool {
	switch provider {
	case IntegrationGoogle:
		return i.Google
	case IntegrationMicrosoft:
		return i.Microsoft
	default:
		return false
	}
}

// ContactKind identifies one verifiable contact channel.
type ContactKind string

const (
	// ContactEmail is the email channel.
	ContactEmail ContactKind = "email"
	// ContactPhone is the phone channel.
	ContactPhone ContactKind = "phone"
)

// User is one member profile. Users are seeded at startup and never deleted.
type User struct {
	ID            string
	Name          string
	Title         string
	Location      string
	AvatarURL     string
	Email         string
	Phone         string
	EmailVerified bool
	PhoneVerified bool
	Vision        string

	Skills         []string
	Experience     []Experience
	Portfolio      []Project
	Education      []Education
	Certifications []Certification
	Languages      []Language

	// Connections holds ids of connected users, insertion ordered.
	Connections  []string
	Integrations Integrations

	VentureIDs []string
	// CompanyIDs lists companies this user can act on behalf of.
	CompanyIDs []string
	// FirstBelieverFor lists ventures the user opted into as an early
	// believer. Derived from venture believer sets at seed time.
	FirstBelieverFor []string
}
