package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/resume-parser/internal/models"
)

// Overrides are caller-supplied values that win over anything the model
// returned.
type Overrides struct {
	MatchID  string
	ResumeID string
	JobTitle string
}

// BuildMatchResult assembles a complete MatchingResult from an arbitrary
// decoded mapping. Precedence per field: override, then whatever could be
// recovered from the mapping, then a default (fresh match id, empty strings,
// zero scores, empty lists). The result always carries exactly the canonical
// field set; this is the last line of defense before the outward-facing
// record and it never fails.
func BuildMatchResult(data map[string]any, o Overrides) models.MatchingResult {
	if data == nil {
		data = map[string]any{}
	}
	// tolerate a model that returned a top-level array instead of an object
	if wrapped, ok := data["_parsed_list"].([]any); ok && len(wrapped) > 0 {
		if first, ok := wrapped[0].(map[string]any); ok {
			data = first
		}
	}

	clean := NormalizeKeys(data)

	return models.MatchingResult{
		MatchID:        resolveMatchID(o.MatchID, clean["match_id"]),
		ResumeID:       resolveString(o.ResumeID, clean["resume_id"]),
		JobTitle:       resolveString(o.JobTitle, clean["job_title"]),
		Scores:         NormalizeScores(clean["scores"]),
		MatchedSkills:  ToStringList(clean["matched_skills"]),
		MissingSkills:  ToStringList(clean["missing_skills"]),
		Strengths:      ToStringList(clean["strengths"]),
		Gaps:           ToStringList(clean["gaps"]),
		Recommendation: ToString(clean["recommendation"]),
		Explanation:    ToString(clean["explanation"]),
	}
}

// NormalizeScores rebuilds the four score fields from whatever shape the model
// produced: a nested object coerced per key, a bare list of numbers mapped
// positionally (overall, skills, experience, education), or nothing at all.
func NormalizeScores(scores any) models.MatchingScore {
	var out models.MatchingScore
	switch v := scores.(type) {
	case nil:
		return out
	case map[string]any:
		out.OverallScore = Score(v["overall_score"])
		out.SkillsMatch = Score(v["skills_match"])
		out.ExperienceMatch = Score(v["experience_match"])
		out.EducationMatch = Score(v["education_match"])
		return out
	}

	var text string
	if list, ok := scores.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, x := range list {
			parts = append(parts, fmt.Sprint(x))
		}
		text = strings.Join(parts, " ")
	} else {
		text = fmt.Sprint(scores)
	}

	nums := intRe.FindAllString(text, -1)
	fields := []*int{&out.OverallScore, &out.SkillsMatch, &out.ExperienceMatch, &out.EducationMatch}
	for i, f := range fields {
		if i >= len(nums) {
			break
		}
		if n, err := strconv.Atoi(nums[i]); err == nil {
			*f = clampScore(n)
		}
	}
	return out
}

func resolveMatchID(override string, raw any) string {
	if override != "" {
		return override
	}
	switch v := raw.(type) {
	case []any:
		if len(v) > 0 {
			if s := truthyString(v[0]); s != "" {
				return s
			}
		}
	case map[string]any:
		for _, k := range []string{"id", "match_id"} {
			if s := truthyString(v[k]); s != "" {
				return s
			}
		}
	default:
		if s := truthyString(raw); s != "" {
			return s
		}
	}
	return uuid.NewString()
}

func resolveString(override string, raw any) string {
	if override != "" {
		return override
	}
	if raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

// truthyString stringifies a scalar, treating nil, empty strings, zero and
// false as absent.
func truthyString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		if !t {
			return ""
		}
		return "true"
	default:
		return fmt.Sprint(t)
	}
}
