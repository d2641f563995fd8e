package services

import (
	"context"
	"log"
	"strings"

	"alfredoptarigan/resume-parser/internal/normalize"
)

// ResumeParserService turns extracted resume text into a semi-structured
// payload mapping. It is fail-open by design: model failures and malformed
// output degrade to a payload with default sections and an error marker, never
// to an error for the caller.
type ResumeParserService interface {
	Parse(ctx context.Context, text, fileName string) map[string]any
}

type resumeParserService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewResumeParserService(gemini GeminiService) ResumeParserService {
	return &resumeParserService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Parse implements ResumeParserService.
func (s *resumeParserService) Parse(ctx context.Context, text, fileName string) map[string]any {
	prompt := s.promptBuilder.BuildResumeExtractionPrompt(text)

	var parsed map[string]any
	response, err := s.gemini.GenerateText(ctx, prompt, 0.0)
	if err != nil {
		log.Printf("❌ Resume extraction failed for %s: %v", fileName, err)
		parsed = map[string]any{"error": err.Error()}
	} else {
		log.Printf("🤖 LLM response received: %d characters", len(response))
		parsed = normalize.ParseJSON(normalize.CleanJSONString(response))
		parsed = normalize.NormalizeResume(parsed)
		if _, bad := parsed["_parse_error"]; bad {
			parsed["_original_model_text"] = response
		}
	}

	ensureDefaultSections(parsed)
	s.backfillContacts(parsed, text)

	return parsed
}

// ensureDefaultSections backfills the six top-level payload keys so every
// stored record is structurally complete regardless of what the model
// returned.
func ensureDefaultSections(parsed map[string]any) {
	defaults := map[string]any{
		"personal_info":  map[string]any{},
		"summary":        nil,
		"experience":     []any{},
		"education":      []any{},
		"skills":         map[string]any{"technical": []any{}, "soft": []any{}, "languages": []any{}},
		"certifications": []any{},
	}

	for key, value := range defaults {
		if _, ok := parsed[key]; !ok {
			parsed[key] = value
		}
	}
}

// backfillContacts recovers email and phone from the raw text when the model
// left them empty.
func (s *resumeParserService) backfillContacts(parsed map[string]any, rawText string) {
	info, ok := parsed["personal_info"].(map[string]any)
	if !ok {
		return
	}

	if isBlank(info["email"]) {
		if email := normalize.ExtractEmail(rawText); email != "" {
			info["email"] = email
		}
	}
	if isBlank(info["phone"]) {
		if phone := normalize.ExtractPhone(rawText); phone != "" {
			info["phone"] = phone
		}
	}
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
