package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// Summary shapes sent to the provider. Profiles are condensed before leaving
// the process: descriptions are truncated and nested records flattened to
// single lines.

type jobSummary struct {
	Title            string   `json:"title"`
	CompanyVision    string   `json:"companyVision,omitempty"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"requiredSkills"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
}

type applicantSummary struct {
	UserID     string   `json:"userId,omitempty"`
	Name       string   `json:"name,omitempty"`
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Portfolio  string   `json:"portfolio,omitempty"`
	Vision     string   `json:"vision,omitempty"`
}

func summarizeJob(job domain.Job, descriptionLimit int) jobSummary {
	return jobSummary{
		Title:            job.Title,
		Description:      truncate(job.Description, descriptionLimit),
		RequiredSkills:   job.Skills,
		Responsibilities: job.Responsibilities,
		Qualifications:   job.Qualifications,
	}
}

func summarizeApplicant(user domain.User) applicantSummary {
	experience := make([]string, 0, len(user.Experience))
	for _, exp := range user.Experience {
		experience = append(experience, fmt.Sprintf("%s at %s: %s", exp.Role, exp.Company, truncate(exp.Description, 100)))
	}
	portfolio := make([]string, 0, len(user.Portfolio))
	for _, project := range user.Portfolio {
		portfolio = append(portfolio, fmt.Sprintf("%s: %s", project.Name, truncate(project.Description, 100)))
	}
	return applicantSummary{
		UserID:     user.ID,
		Title:      user.Title,
		Skills:     user.Skills,
		Experience: strings.Join(experience, "; "),
		Portfolio:  strings.Join(portfolio, "; "),
		Vision:     user.Vision,
	}
}

func summarizeRoles(user domain.User) applicantSummary {
	roles := make([]string, 0, len(user.Experience))
	for _, exp := range user.Experience {
		roles = append(roles, exp.Role)
	}
	return applicantSummary{
		Title:      user.Title,
		Skills:     user.Skills,
		Experience: strings.Join(roles, ", "),
	}
}

func summarizeCandidate(user domain.User) applicantSummary {
	summary := summarizeRoles(user)
	summary.UserID = user.ID
	summary.Name = user.Name
	return summary
}

// promptJSON renders a summary for prompt embedding. Marshaling these flat
// summary shapes cannot fail; a failure would indicate a programming error.
func promptJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
