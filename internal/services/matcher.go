package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-parser/internal/models"
	"alfredoptarigan/resume-parser/internal/normalize"
)

// JobMatcherService scores a stored resume against a job description. Like
// the parser it is fail-open: an LLM failure yields a zero-score result whose
// explanation names the error, and schema drift in the model output is fully
// absorbed by the normalization pipeline.
type JobMatcherService interface {
	Match(ctx context.Context, resumeID string, resumeData map[string]any, job models.JobDescription) models.MatchingResult
}

type jobMatcherService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewJobMatcherService(gemini GeminiService) JobMatcherService {
	return &jobMatcherService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Match implements JobMatcherService.
func (s *jobMatcherService) Match(ctx context.Context, resumeID string, resumeData map[string]any, job models.JobDescription) models.MatchingResult {
	overrides := normalize.Overrides{
		MatchID:  uuid.NewString(),
		ResumeID: resumeID,
		JobTitle: job.Title,
	}

	resumeJSON, _ := json.Marshal(resumeData)
	jobJSON, _ := json.Marshal(job)
	prompt := s.promptBuilder.BuildMatchAnalysisPrompt(string(resumeJSON), string(jobJSON))

	response, err := s.gemini.GenerateText(ctx, prompt, 0.0)
	if err != nil {
		log.Printf("❌ Match analysis failed for resume %s: %v", resumeID, err)
		result := normalize.BuildMatchResult(nil, overrides)
		result.Explanation = fmt.Sprintf("Analysis error: %v", err)
		return result
	}

	parsed := normalize.ParseJSON(normalize.CleanJSONString(response))
	return normalize.BuildMatchResult(parsed, overrides)
}
