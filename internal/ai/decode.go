package ai

import (
	"encoding/json"
	"fmt"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

type skillValidationPayload struct {
	Skill       string `json:"skill"`
	HasEvidence bool   `json:"hasEvidence"`
	Evidence    string `json:"evidence"`
}

type applicantAnalysisPayload struct {
	FitScore           int                      `json:"fitScore"`
	Summary            string                   `json:"summary"`
	Strengths          []string                 `json:"strengths"`
	Weaknesses         []string                 `json:"weaknesses"`
	SkillValidation    []skillValidationPayload `json:"skillValidation"`
	ProjectDeepDive    string                   `json:"projectDeepDive"`
	CultureAlignment   string                   `json:"cultureAlignment"`
	InterviewQuestions []string                 `json:"interviewQuestions"`
	AISuggestion       string                   `json:"aiSuggestion"`
}

func decodeApplicantAnalysis(text string) (domain.ApplicantAnalysis, error) {
	var payload applicantAnalysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return domain.ApplicantAnalysis{}, fmt.Errorf("decode applicant analysis: %w", err)
	}
	if payload.Summary == "" {
		return domain.ApplicantAnalysis{}, ErrEmptyResponse
	}
	validation := make([]domain.SkillValidation, 0, len(payload.SkillValidation))
	for _, entry := range payload.SkillValidation {
		validation = append(validation, domain.SkillValidation{
			Skill:       entry.Skill,
			HasEvidence: entry.HasEvidence,
			Evidence:    entry.Evidence,
		})
	}
	return domain.ApplicantAnalysis{
		FitScore:           clampScore(payload.FitScore),
		Summary:            payload.Summary,
		Strengths:          payload.Strengths,
		Weaknesses:         payload.Weaknesses,
		SkillValidation:    validation,
		ProjectDeepDive:    payload.ProjectDeepDive,
		CultureAlignment:   payload.CultureAlignment,
		InterviewQuestions: payload.InterviewQuestions,
		Suggestion:         decodeSuggestion(payload.AISuggestion),
	}, nil
}

type comparisonPayload struct {
	Summary        string `json:"summary"`
	Recommendation struct {
		UserID    string `json:"userId"`
		Reasoning string `json:"reasoning"`
	} `json:"recommendation"`
	CandidateBreakdowns []struct {
		UserID     string   `json:"userId"`
		Strengths  []string `json:"strengths"`
		Weaknesses []string `json:"weaknesses"`
	} `json:"candidateBreakdowns"`
}

func decodeComparison(text string) (domain.ComparisonAnalysis, error) {
	var payload comparisonPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return domain.ComparisonAnalysis{}, fmt.Errorf("decode comparison: %w", err)
	}
	if payload.Recommendation.UserID == "" {
		return domain.ComparisonAnalysis{}, ErrEmptyResponse
	}
	breakdowns := make([]domain.CandidateBreakdown, 0, len(payload.CandidateBreakdowns))
	for _, entry := range payload.CandidateBreakdowns {
		breakdowns = append(breakdowns, domain.CandidateBreakdown{
			UserID:     entry.UserID,
			Strengths:  entry.Strengths,
			Weaknesses: entry.Weaknesses,
		})
	}
	return domain.ComparisonAnalysis{
		Summary: payload.Summary,
		Recommendation: domain.Recommendation{
			UserID:    payload.Recommendation.UserID,
			Reasoning: payload.Recommendation.Reasoning,
		},
		Breakdowns: breakdowns,
	}, nil
}

type shortlistPayload struct {
	Probability int    `json:"probability"`
	Reasoning   string `json:"reasoning"`
}

func decodeShortlistPrediction(text string) (domain.ShortlistPrediction, error) {
	var payload shortlistPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return domain.ShortlistPrediction{}, fmt.Errorf("decode shortlist prediction: %w", err)
	}
	if payload.Reasoning == "" {
		return domain.ShortlistPrediction{}, ErrEmptyResponse
	}
	return domain.ShortlistPrediction{
		Probability: clampScore(payload.Probability),
		Reasoning:   payload.Reasoning,
	}, nil
}

func decodeSuggestion(value string) domain.Suggestion {
	switch value {
	case string(domain.SuggestShortlist):
		return domain.SuggestShortlist
	case string(domain.SuggestReject):
		return domain.SuggestReject
	default:
		return domain.SuggestNone
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
