package ai

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/mohanvarma22/bcommune/internal/domain"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const analyzeSystemPrompt = `You are an elite senior technical recruiter and hiring co-pilot. Analyze the applicant's profile against the job posting and provide a detailed, structured JSON response.

You MUST return a single JSON object with the following structure:
1.  "fitScore": An integer from 0-100 indicating overall role fit.
2.  "summary": A 1-2 sentence executive summary of the candidate's fit.
3.  "strengths": An array of 2-3 short strings highlighting the applicant's key strengths for this specific role.
4.  "weaknesses": An array of 1-2 short strings highlighting potential weaknesses or areas to probe in an interview.
5.  "skillValidation": An array of objects. For each of the job's required skills, validate if the applicant has it. The object should have "skill", "hasEvidence" (boolean), and "evidence" (a short string quoting their experience or project that proves the skill). If no evidence, state "No direct evidence found."
6.  "projectDeepDive": A 1-2 sentence analysis of how their portfolio projects relate to the job requirements.
7.  "cultureAlignment": A 1-2 sentence analysis comparing the applicant's "vision" statement to the company's vision.
8.  "interviewQuestions": An array of 2-3 specific, insightful interview questions to ask this candidate based on their profile.
9.  "aiSuggestion": Based on the fitScore, provide a suggestion. If fitScore >= 85, suggest "shortlist". If fitScore < 50, suggest "reject". Otherwise, omit the field.`

const comparativeRejectionSystemPrompt = `You are an expert, empathetic recruitment advisor. Your goal is to provide high-quality, transparent, and constructive feedback to a rejected job applicant.

Your task is to:
1.  Compare the rejected applicant's profile to the profiles of the successful applicants.
2.  Identify the single most significant differentiator that led to the decision. This could be a specific required skill they lacked, less years of relevant experience, or a weaker alignment with the company's domain.
3.  Craft a 1-2 sentence feedback message that is polite, direct, and constructive. Do not be generic. Be specific about the differentiator. Do not mention the other candidates directly; frame it as what the "hiring team prioritized". Start with a positive note if possible.

Return only the feedback text as a single string.`

const rejectionSystemPrompt = `You are an empathetic recruitment advisor. Your task is to provide constructive feedback to a rejected applicant.
1.  Analyze the 'Applicant Profile' against the 'Job Details'.
2.  Identify the most significant skill or experience gap.
3.  Provide a polite, constructive, 1-2 sentence feedback explaining this gap.

Return only the feedback text as a single string.`

const compareSystemPrompt = `You are an executive hiring manager providing a final recommendation. Analyze the provided candidate profiles against the job posting and return a structured JSON comparison.

You MUST return a single JSON object with the following structure:
1.  "summary": A 2-3 sentence executive summary comparing the candidates' overall strengths.
2.  "recommendation": An object with "userId" of the single best candidate and a concise "reasoning" for your choice.
3.  "candidateBreakdowns": An array of objects, one for each candidate, containing their "userId", an array of their top "strengths" for this role, and an array of their "weaknesses" or areas of concern.`

const shortlistSystemPrompt = `You are an expert AI career coach. Your task is to predict the probability of a user getting shortlisted for a job and provide a brief justification.
1.  "probability": An integer between 0 and 100 representing the chance of being shortlisted.
2.  "reasoning": A concise, 1-2 sentence explanation for the probability score, highlighting strengths and weaknesses.
You MUST return a JSON object with "probability" and "reasoning" keys.`

// Gemini is the Advisor implementation backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	tracer trace.Tracer
}

var _ Advisor = (*Gemini)(nil)

// NewGemini creates a Gemini-backed advisor. The model defaults to
// DefaultModel when empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAPIKeyRequired
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  model,
		tracer: otel.Tracer("bcommune/ai"),
	}, nil
}

// AnalyzeApplicant reviews one applicant against one job posting.
func (g *Gemini) AnalyzeApplicant(ctx context.Context, job domain.Job, applicant domain.User, company domain.Company) (domain.ApplicantAnalysis, error) {
	summary := summarizeJob(job, 300)
	summary.CompanyVision = company.Vision
	prompt := fmt.Sprintf("Job Posting: %s\n\nApplicant Profile: %s",
		promptJSON(summary), promptJSON(summarizeApplicant(applicant)))

	text, err := g.generate(ctx, "ai.AnalyzeApplicant", prompt, analyzeSystemPrompt, applicantAnalysisSchema())
	if err != nil {
		return domain.ApplicantAnalysis{}, err
	}
	return decodeApplicantAnalysis(text)
}

// RejectionFeedback drafts standalone feedback for a rejected applicant.
func (g *Gemini) RejectionFeedback(ctx context.Context, job domain.Job, applicant domain.User) (string, error) {
	prompt := fmt.Sprintf("Job Details: %s\nApplicant Profile: %s",
		promptJSON(summarizeJob(job, 200)), promptJSON(summarizeRoles(applicant)))

	text, err := g.generate(ctx, "ai.RejectionFeedback", prompt, rejectionSystemPrompt, nil)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// ComparativeRejectionFeedback drafts feedback contrasting the applicant with
// currently successful applicants. At most three successful profiles are
// shared with the provider.
func (g *Gemini) ComparativeRejectionFeedback(ctx context.Context, job domain.Job, applicant domain.User, successful []domain.User) (string, error) {
	if len(successful) > 3 {
		successful = successful[:3]
	}
	successfulSummaries := make([]applicantSummary, 0, len(successful))
	for _, user := range successful {
		successfulSummaries = append(successfulSummaries, summarizeRoles(user))
	}
	prompt := fmt.Sprintf("Job Details: %s\nRejected Applicant: %s\nSuccessful Applicants: %s",
		promptJSON(summarizeJob(job, 200)), promptJSON(summarizeRoles(applicant)), promptJSON(successfulSummaries))

	text, err := g.generate(ctx, "ai.ComparativeRejectionFeedback", prompt, comparativeRejectionSystemPrompt, nil)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// CompareCandidates reviews 2-4 candidates side by side.
func (g *Gemini) CompareCandidates(ctx context.Context, job domain.Job, candidates []domain.User) (domain.ComparisonAnalysis, error) {
	if len(candidates) < 2 || len(candidates) > 4 {
		return domain.ComparisonAnalysis{}, ErrCandidateCount
	}
	summaries := make([]applicantSummary, 0, len(candidates))
	for _, candidate := range candidates {
		summaries = append(summaries, summarizeCandidate(candidate))
	}
	prompt := fmt.Sprintf("Job Posting: %s\n\nCandidate Profiles: %s",
		promptJSON(summarizeJob(job, 300)), promptJSON(summaries))

	text, err := g.generate(ctx, "ai.CompareCandidates", prompt, compareSystemPrompt, comparisonSchema())
	if err != nil {
		return domain.ComparisonAnalysis{}, err
	}
	return decodeComparison(text)
}

// ShortlistPrediction estimates an applicant's chance of being shortlisted.
func (g *Gemini) ShortlistPrediction(ctx context.Context, job domain.Job, user domain.User) (domain.ShortlistPrediction, error) {
	prompt := fmt.Sprintf("Analyze the user's profile against the job description.\n\nJob Details: %s\n\nUser Profile: %s",
		promptJSON(summarizeJob(job, 300)), promptJSON(summarizeApplicant(user)))

	text, err := g.generate(ctx, "ai.ShortlistPrediction", prompt, shortlistSystemPrompt, shortlistSchema())
	if err != nil {
		return domain.ShortlistPrediction{}, err
	}
	return decodeShortlistPrediction(text)
}

func (g *Gemini) generate(ctx context.Context, spanName, prompt, system string, schema *genai.Schema) (string, error) {
	ctx, span := g.tracer.Start(ctx, spanName)
	defer span.End()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	if schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = schema
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("generate content: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func applicantAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fitScore":   {Type: genai.TypeInteger},
			"summary":    {Type: genai.TypeString},
			"strengths":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"weaknesses": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"skillValidation": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"skill":       {Type: genai.TypeString},
						"hasEvidence": {Type: genai.TypeBoolean},
						"evidence":    {Type: genai.TypeString},
					},
					Required: []string{"skill", "hasEvidence", "evidence"},
				},
			},
			"projectDeepDive":    {Type: genai.TypeString},
			"cultureAlignment":   {Type: genai.TypeString},
			"interviewQuestions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"aiSuggestion":       {Type: genai.TypeString},
		},
		Required: []string{"fitScore", "summary", "strengths", "weaknesses", "skillValidation", "projectDeepDive", "cultureAlignment", "interviewQuestions"},
	}
}

func comparisonSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"recommendation": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"userId":    {Type: genai.TypeString},
					"reasoning": {Type: genai.TypeString},
				},
				Required: []string{"userId", "reasoning"},
			},
			"candidateBreakdowns": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"userId":     {Type: genai.TypeString},
						"strengths":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"weaknesses": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
					Required: []string{"userId", "strengths", "weaknesses"},
				},
			},
		},
		Required: []string{"summary", "recommendation", "candidateBreakdowns"},
	}
}

func shortlistSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"probability": {Type: genai.TypeInteger},
			"reasoning":   {Type: genai.TypeString},
		},
		Required: []string{"probability", "reasoning"},
	}
}
