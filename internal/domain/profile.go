package domain

// ProfileKind identifies which identity type an active profile points at.
type ProfileKind string

const (
	// ProfileUser acts as an individual user.
	ProfileUser ProfileKind = "user"
	// ProfileCompany acts on behalf of a company workspace.
	ProfileCompany ProfileKind = "company"
)

// ActiveProfile is the transient pointer selecting which identity mutation
// operations act as. Exactly one profile is active at a time; switching is a
// pointer swap, never a data mutation.
type ActiveProfile struct {
	Kind ProfileKind
	ID   string
	Name string
}
