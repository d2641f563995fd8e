package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeGemini satisfies GeminiService without network access.
type fakeGemini struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const fencedResumeResponse = "```json\n" + `{
  "personal_info": {"full_name": "Ada Lovelace", "email": "", "phone": null},
  "summary": "Mathematician and programmer",
  "experience": [],
  "education": [{"degree": "BSc Mathematics", "gpa": "88/100"}],
  "skills": {"technical": ["Go"], "soft": [], "languages": ["English"]},
  "certifications": []
}` + "\n```"

func TestParseNormalizesModelOutput(t *testing.T) {
	gemini := &fakeGemini{response: fencedResumeResponse}
	parser := NewResumeParserService(gemini)

	rawText := "Ada Lovelace\nada@example.com\n+44 20 7946 0958"
	parsed := parser.Parse(context.Background(), rawText, "ada.txt")

	if len(gemini.prompts) != 1 {
		t.Fatalf("expected exactly one model call, got %d", len(gemini.prompts))
	}
	if !strings.Contains(gemini.prompts[0], rawText) {
		t.Error("prompt does not carry the resume text")
	}

	educ, ok := parsed["education"].([]any)
	if !ok || len(educ) != 1 {
		t.Fatalf("education = %v", parsed["education"])
	}
	if gpa := educ[0].(map[string]any)["gpa"]; gpa != 3.52 {
		t.Errorf("gpa = %v, want 3.52", gpa)
	}

	skills := parsed["skills"].(map[string]any)
	langs, ok := skills["languages"].([]map[string]any)
	if !ok || len(langs) != 1 {
		t.Fatalf("languages = %v", skills["languages"])
	}
	if langs[0]["language"] != "English" || langs[0]["proficiency"] != "" {
		t.Errorf("languages[0] = %v", langs[0])
	}

	info := parsed["personal_info"].(map[string]any)
	if info["email"] != "ada@example.com" {
		t.Errorf("blank email not backfilled from raw text, got %v", info["email"])
	}
	if info["phone"] != "+44 20 7946 0958" {
		t.Errorf("null phone not backfilled from raw text, got %v", info["phone"])
	}
}

func TestParseKeepsUnparsableResponse(t *testing.T) {
	gemini := &fakeGemini{response: "I could not read this resume, sorry."}
	parser := NewResumeParserService(gemini)

	parsed := parser.Parse(context.Background(), "some text", "broken.txt")

	if parsed["_parse_error"] == nil {
		t.Error("expected a parse error marker")
	}
	if parsed["_raw"] != gemini.response {
		t.Errorf("_raw = %v, want original response", parsed["_raw"])
	}
	if parsed["_original_model_text"] != gemini.response {
		t.Error("expected the original model text to be preserved")
	}
	assertDefaultSections(t, parsed)
}

func TestParseSurvivesModelFailure(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("quota exceeded")}
	parser := NewResumeParserService(gemini)

	parsed := parser.Parse(context.Background(), "Jane Doe jane@example.com", "jane.txt")

	if parsed["error"] != "quota exceeded" {
		t.Errorf("error = %v", parsed["error"])
	}
	assertDefaultSections(t, parsed)

	info := parsed["personal_info"].(map[string]any)
	if info["email"] != "jane@example.com" {
		t.Errorf("email = %v, want backfill from raw text", info["email"])
	}
}

func assertDefaultSections(t *testing.T, parsed map[string]any) {
	t.Helper()

	for _, key := range []string{"personal_info", "summary", "experience", "education", "skills", "certifications"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("missing default section %q", key)
		}
	}
	skills, ok := parsed["skills"].(map[string]any)
	if !ok {
		t.Fatalf("skills = %v", parsed["skills"])
	}
	for _, key := range []string{"technical", "soft", "languages"} {
		if _, ok := skills[key]; !ok {
			t.Errorf("missing skills subsection %q", key)
		}
	}
}
