package store

import (
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// CompanyInput describes a new company workspace.
type CompanyInput struct {
	Name     string
	LogoURL  string
	Tagline  string
	Website  string
	Location string
	Industry string
	Size     string
	About    string
	Vision   string
}

// AddCompany creates a company owned by the current user and switches the
// active profile to it.
func (s *Store) AddCompany(input CompanyInput) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(input.Name) == "" {
		return domain.Company{}, ErrNameRequired
	}
	companyID, err := s.newID()
	if err != nil {
		return domain.Company{}, err
	}
	company := domain.Company{
		ID:       companyID,
		Name:     input.Name,
		LogoURL:  input.LogoURL,
		Tagline:  input.Tagline,
		Website:  input.Website,
		Location: input.Location,
		Industry: input.Industry,
		Size:     input.Size,
		About:    input.About,
		Vision:   input.Vision,
		Team:     []domain.TeamMember{{UserID: s.currentUserID, Role: domain.TeamRoleOwner}},
	}
	s.companies = append(append([]domain.Company(nil), s.companies...), company)

	i := s.userIndexLocked(s.currentUserID)
	user := s.users[i]
	user.CompanyIDs = append(append([]string(nil), user.CompanyIDs...), company.ID)
	s.users = replaceAt(s.users, i, user)

	s.active = domain.ActiveProfile{Kind: domain.ProfileCompany, ID: company.ID, Name: company.Name}
	return company, nil
}

// ToggleCompanyIntegration flips a company's integration toggle for one
// provider.
func (s *Store) ToggleCompanyIntegration(companyID string, provider domain.IntegrationProvider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.companyIndexLocked(companyID)
	if i < 0 {
		return ErrNotFound
	}
	company := s.companies[i]
	switch provider {
	case domain.IntegrationGoogle:
		company.Integrations.Google = !company.Integrations.Google
	case domain.IntegrationMicrosoft:
		company.Integrations.Microsoft = !company.Integrations.Microsoft
	default:
		return ErrUnknownProvider
	}
	s.companies = replaceAt(s.companies, i, company)
	return nil
}
