package domain

// VentureStage identifies how far along a venture is.
type VentureStage string

const (
	StageIdea          VentureStage = "Idea"
	StagePrototype     VentureStage = "Prototype"
	StageEarlyTraction VentureStage = "Early Traction"
)

// VenturePreferences describes the collaborators a venture is looking for.
type VenturePreferences struct {
	Skills   []string
	Location string
}

// Venture is one startup posting owned by a single user.
type Venture struct {
	ID       string
	OwnerID  string
	Name     string
	LogoURL  string
	Tagline  string
	Vision   string
	Problem  string
	Solution string
	Market   []string
	Stage    VentureStage
	Seeking  []string

	// InterestedUsers holds ids of users who expressed interest in the
	// venture. ExpressedInterest holds ids of users the venture reciprocated
	// interest in. A user present in both sets is a match.
	InterestedUsers   []string
	ExpressedInterest []string

	// FirstBelievers holds users who opted into early engagement;
	// AcknowledgedBelievers is the subset the owner has acknowledged.
	FirstBelievers        []string
	AcknowledgedBelievers []string

	SignalIDs   []string
	Preferences VenturePreferences

	PrototypeLink string
	IdeaLink      string
	ImageURLs     []string
}

// HasInterestedUser reports whether userID already expressed interest.
func (v Venture) HasInterestedUser(userID string) bool {
	return containsID(v.InterestedUsers, userID)
}

// HasExpressedInterest reports whether the venture already reciprocated
// interest in userID.
func (v Venture) HasExpressedInterest(userID string) bool {
	return containsID(v.ExpressedInterest, userID)
}

// HasFirstBeliever reports whether userID already opted in as a believer.
func (v Venture) HasFirstBeliever(userID string) bool {
	return containsID(v.FirstBelievers, userID)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
