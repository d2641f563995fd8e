package normalize

import (
	"regexp"
	"sort"
	"strings"
)

// CanonicalFields is the fixed key set of a matching result payload. The
// output of the reconciliation step contains these keys and nothing else.
var CanonicalFields = map[string]struct{}{
	"match_id":       {},
	"resume_id":      {},
	"job_title":      {},
	"scores":         {},
	"matched_skills": {},
	"missing_skills": {},
	"strengths":      {},
	"gaps":           {},
	"recommendation": {},
	"explanation":    {},
}

// aliasMap folds known external spellings onto canonical field names. Applied
// after camel-to-snake conversion, so the lowercase and kebab entries do the
// heavy lifting.
var aliasMap = map[string]string{
	"matchId":         "match_id",
	"match-id":        "match_id",
	"resumeId":        "resume_id",
	"resume-id":       "resume_id",
	"jobTitle":        "job_title",
	"job-title":       "job_title",
	"matchingResults": "scores",
	"matchedSkills":   "matched_skills",
	"matched-skills":  "matched_skills",
	"missingSkills":   "missing_skills",
	"missing-skills":  "missing_skills",
	"strengthAreas":   "strengths",
	"strength":        "strengths",
	"gapAnalysis":     "gaps",
	"gap":             "gaps",
	"weaknesses":      "gaps",
}

var (
	hasUpperRe     = regexp.MustCompile(`[A-Z]`)
	camelBoundary1 = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	camelBoundary2 = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// camelToSnake converts camelCase keys to snake_case. Keys that already
// contain an underscore or carry no uppercase letters pass through untouched.
func camelToSnake(key string) string {
	if key == "" {
		return key
	}
	if strings.Contains(key, "_") || strings.ToLower(key) == key {
		return key
	}
	s := camelBoundary1.ReplaceAllString(key, "${1}_${2}")
	s = camelBoundary2.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// NormalizeKeys maps arbitrary key spellings onto the canonical field set.
// Camel keys are folded to snake_case first (an already-present snake form
// wins and the camel key is dropped), then the alias table is applied and only
// canonical fields are kept, first occurrence winning on duplicates. Keys are
// visited in sorted order so the reconciliation is deterministic.
func NormalizeKeys(data map[string]any) map[string]any {
	result := make(map[string]any)
	if data == nil {
		return result
	}

	src := make(map[string]any, len(data))
	for k, v := range data {
		src[k] = v
	}

	for _, key := range sortedKeys(src) {
		if !hasUpperRe.MatchString(key) {
			continue
		}
		snake := camelToSnake(key)
		if snake == key {
			continue
		}
		if _, exists := src[snake]; exists {
			// canonical snake form already present, the camel key loses
			delete(src, key)
			continue
		}
		src[snake] = src[key]
		delete(src, key)
	}

	for _, key := range sortedKeys(src) {
		canonical, ok := aliasMap[key]
		if !ok {
			canonical = key
		}
		if _, isCanonical := CanonicalFields[canonical]; !isCanonical {
			continue
		}
		if _, dup := result[canonical]; !dup {
			result[canonical] = src[key]
		}
	}

	for cand := range CanonicalFields {
		if _, ok := result[cand]; ok {
			continue
		}
		if v, ok := src[cand]; ok {
			result[cand] = v
		}
	}

	return result
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
