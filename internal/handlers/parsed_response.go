package handlers

import (
	"encoding/json"
	"log"

	"alfredoptarigan/resume-parser/internal/models"
)

// buildParsedResponse shapes a stored resume row into the typed outward
// record. Every list field comes back empty rather than absent and optional
// scalars come back null; payload sections that do not fit the typed form are
// decoded best-effort and drift never fails a read.
func buildParsedResponse(resume *models.Resume) models.ParsedResumeResponse {
	var payload map[string]any
	if len(resume.ParsedData) > 0 {
		if err := json.Unmarshal(resume.ParsedData, &payload); err != nil {
			log.Printf("⚠️  Corrupt parsed payload for resume %s: %v", resume.ID, err)
		}
	}

	response := models.ParsedResumeResponse{
		ID:          resume.ID.String(),
		FileName:    resume.FileName,
		RawText:     resume.RawText,
		ProcessedAt: resume.ProcessedAt,
	}

	decodeSection(payload["personal_info"], &response.PersonalInfo)
	if summary, ok := payload["summary"].(string); ok {
		response.Summary = &summary
	}
	decodeSection(payload["experience"], &response.Experience)
	decodeSection(payload["education"], &response.Education)
	decodeSection(payload["skills"], &response.Skills)
	decodeSection(payload["certifications"], &response.Certifications)

	if response.Experience == nil {
		response.Experience = []models.WorkExperience{}
	}
	for i := range response.Experience {
		if response.Experience[i].Achievements == nil {
			response.Experience[i].Achievements = []string{}
		}
		if response.Experience[i].Technologies == nil {
			response.Experience[i].Technologies = []string{}
		}
	}
	if response.Education == nil {
		response.Education = []models.Education{}
	}
	if response.Certifications == nil {
		response.Certifications = []models.Certification{}
	}
	if response.Skills.Technical == nil {
		response.Skills.Technical = []string{}
	}
	if response.Skills.Soft == nil {
		response.Skills.Soft = []string{}
	}
	if response.Skills.Languages == nil {
		response.Skills.Languages = []models.LanguageSkill{}
	}

	return response
}

// decodeSection re-decodes one payload section into its typed form. Fields
// that do not fit are dropped; nothing here returns an error.
func decodeSection(section any, dst any) {
	if section == nil {
		return
	}
	b, err := json.Marshal(section)
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, dst)
}
