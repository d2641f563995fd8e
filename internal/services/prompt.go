package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const resumeSchema = `{
  "personal_info": {
    "full_name": "string or null",
    "first_name": "string or null",
    "last_name": "string or null",
    "email": "string or null",
    "phone": "string or null",
    "address": "string or null",
    "linkedin": "string or null",
    "website": "string or null"
  },
  "summary": "string or null",
  "experience": [
    {
      "title": "string",
      "company": "string",
      "location": "string or null",
      "start_date": "YYYY-MM or null",
      "end_date": "YYYY-MM or Present or null",
      "current": true,
      "description": "string or null",
      "achievements": ["string"],
      "technologies": ["string"]
    }
  ],
  "education": [
    {
      "degree": "string",
      "field": "string or null",
      "institution": "string",
      "location": "string or null",
      "graduation_date": "YYYY-MM or null",
      "gpa": "number or string or null"
    }
  ],
  "skills": {
    "technical": ["string"],
    "soft": ["string"],
    "languages": [{"language": "string", "proficiency": "string"}]
  },
  "certifications": [
    {"name": "string", "issuer": "string or null", "issue_date": "string or null", "expiry_date": "string or null"}
  ]
}`

// BuildResumeExtractionPrompt creates the prompt for structured resume parsing
func (pb *PromptBuilder) BuildResumeExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser. OUTPUT JSON ONLY. Do NOT include explanations or extra text.

Return a single JSON object with the exact schema shown below. All keys must appear; if a value is unknown, use null.

JSON SCHEMA:
%s

NOW PARSE THE FOLLOWING RESUME TEXT:
%s

Return ONLY valid JSON matching the schema. Extract as much information as possible.`,
		resumeSchema, resumeText)
}

// BuildMatchAnalysisPrompt creates the prompt for resume-job matching
func (pb *PromptBuilder) BuildMatchAnalysisPrompt(resumeJSON, jobJSON string) string {
	return fmt.Sprintf(`You are an expert job-matching assistant. Analyze the resume against the job description and return a SINGLE JSON OBJECT with these keys:

{
  "match_id": "string",
  "resume_id": "string",
  "job_title": "string",
  "scores": {
    "overall_score": 0-100,
    "skills_match": 0-100,
    "experience_match": 0-100,
    "education_match": 0-100
  },
  "matched_skills": ["skill1", "skill2"],
  "missing_skills": ["skill3", "skill4"],
  "strengths": ["strength1", "strength2"],
  "gaps": ["gap1", "gap2"],
  "recommendation": "Strong Match/Good Match/Partial Match/Poor Match",
  "explanation": "string"
}

Resume Data:
%s

Job Description:
%s

Return ONLY the JSON object. No additional text.`,
		resumeJSON, jobJSON)
}
