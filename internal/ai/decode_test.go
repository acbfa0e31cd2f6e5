package ai

import (
	"errors"
	"testing"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

func TestDecodeApplicantAnalysis(t *testing.T) {
	t.Parallel()

	text := `{
		"fitScore": 88,
		"summary": "Strong backend candidate with relevant scale experience.",
		"strengths": ["Go services", "Distributed systems"],
		"weaknesses": ["Limited frontend exposure"],
		"skillValidation": [
			{"skill": "Go", "hasEvidence": true, "evidence": "Built payment services in Go"},
			{"skill": "React", "hasEvidence": false, "evidence": "No direct evidence found."}
		],
		"projectDeepDive": "Side projects line up with the role's infra focus.",
		"cultureAlignment": "Vision statements overlap on developer tooling.",
		"interviewQuestions": ["Walk through your largest migration."],
		"aiSuggestion": "shortlist"
	}`

	analysis, err := decodeApplicantAnalysis(text)
	if err != nil {
		t.Fatalf("decode applicant analysis: %v", err)
	}
	if analysis.FitScore != 88 {
		t.Fatalf("FitScore = %d, want 88", analysis.FitScore)
	}
	if analysis.Suggestion != domain.SuggestShortlist {
		t.Fatalf("Suggestion = %q, want %q", analysis.Suggestion, domain.SuggestShortlist)
	}
	if got := len(analysis.SkillValidation); got != 2 {
		t.Fatalf("skill validations = %d, want 2", got)
	}
	if analysis.SkillValidation[1].HasEvidence {
		t.Fatal("expected second skill to lack evidence")
	}
}

func TestDecodeApplicantAnalysisClampsScoreAndSuggestion(t *testing.T) {
	t.Parallel()

	analysis, err := decodeApplicantAnalysis(`{"fitScore": 140, "summary": "ok", "aiSuggestion": "hire-immediately"}`)
	if err != nil {
		t.Fatalf("decode applicant analysis: %v", err)
	}
	if analysis.FitScore != 100 {
		t.Fatalf("FitScore = %d, want clamp to 100", analysis.FitScore)
	}
	if analysis.Suggestion != domain.SuggestNone {
		t.Fatalf("Suggestion = %q, want none for unknown value", analysis.Suggestion)
	}
}

func TestDecodeApplicantAnalysisRejectsEmptySummary(t *testing.T) {
	t.Parallel()

	if _, err := decodeApplicantAnalysis(`{"fitScore": 50}`); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestDecodeApplicantAnalysisRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := decodeApplicantAnalysis("not json"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestDecodeComparison(t *testing.T) {
	t.Parallel()

	text := `{
		"summary": "Both candidates are credible; one edges ahead on platform depth.",
		"recommendation": {"userId": "user-2", "reasoning": "Deeper platform experience."},
		"candidateBreakdowns": [
			{"userId": "user-1", "strengths": ["Product sense"], "weaknesses": ["Less infra depth"]},
			{"userId": "user-2", "strengths": ["Platform depth"], "weaknesses": ["Shorter tenure"]}
		]
	}`

	comparison, err := decodeComparison(text)
	if err != nil {
		t.Fatalf("decode comparison: %v", err)
	}
	if comparison.Recommendation.UserID != "user-2" {
		t.Fatalf("recommended user = %q, want user-2", comparison.Recommendation.UserID)
	}
	if got := len(comparison.Breakdowns); got != 2 {
		t.Fatalf("breakdowns = %d, want 2", got)
	}
}

func TestDecodeComparisonRejectsMissingRecommendation(t *testing.T) {
	t.Parallel()

	if _, err := decodeComparison(`{"summary": "no pick"}`); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestDecodeShortlistPrediction(t *testing.T) {
	t.Parallel()

	prediction, err := decodeShortlistPrediction(`{"probability": 73, "reasoning": "Skills align; experience slightly short."}`)
	if err != nil {
		t.Fatalf("decode shortlist prediction: %v", err)
	}
	if prediction.Probability != 73 {
		t.Fatalf("Probability = %d, want 73", prediction.Probability)
	}
}
