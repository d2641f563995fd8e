// Package normalize turns untrusted, schema-drifting LLM output into
// canonical, always-valid records. Every function here is a pure transform:
// failures degrade to defaults or error-envelope mappings, never to errors
// propagating past the package boundary.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceOpenRe        = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceCloseRe       = regexp.MustCompile("(?i)\\s*```$")
	jsonSpanRe         = regexp.MustCompile(`(?s)(\{.*\}|\[.*\])`)
	trailingCommaObjRe = regexp.MustCompile(`,\s*}`)
	trailingCommaArrRe = regexp.MustCompile(`,\s*]`)
)

// CleanJSONString strips surrounding markdown code fences and narrows the
// input down to the first balanced-looking JSON object or array span. If no
// span is found the stripped text is returned as-is.
func CleanJSONString(content string) string {
	if content == "" {
		return ""
	}
	s := strings.TrimSpace(content)
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	if m := jsonSpanRe.FindString(s); m != "" {
		return m
	}
	return s
}

// ParseJSON decodes jsonText into a mapping. Top-level arrays are wrapped
// under "_parsed_list" and bare scalars under "result" so callers always get a
// map back. On a decode failure a single best-effort repair pass is attempted
// (line-ending and tab normalization, single quotes to double quotes, trailing
// commas stripped, span re-extracted); if that fails too the result is an
// error envelope carrying "_raw" and "_parse_error".
func ParseJSON(jsonText string) map[string]any {
	if strings.TrimSpace(jsonText) == "" {
		return map[string]any{"_parse_error": "empty json_text", "_raw": jsonText}
	}

	if parsed, err := decodeAny(jsonText); err == nil {
		return wrapDecoded(parsed)
	}

	repaired := strings.ReplaceAll(jsonText, "\r\n", "\n")
	repaired = strings.ReplaceAll(repaired, "\t", " ")
	repaired = strings.ReplaceAll(repaired, "'", `"`)
	repaired = trailingCommaObjRe.ReplaceAllString(repaired, "}")
	repaired = trailingCommaArrRe.ReplaceAllString(repaired, "]")
	if m := jsonSpanRe.FindString(repaired); m != "" {
		repaired = m
	}

	parsed, err := decodeAny(repaired)
	if err != nil {
		return map[string]any{"_raw": jsonText, "_parse_error": err.Error()}
	}
	return wrapDecoded(parsed)
}

func decodeAny(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func wrapDecoded(parsed any) map[string]any {
	switch v := parsed.(type) {
	case map[string]any:
		return v
	case []any:
		return map[string]any{"_parsed_list": v}
	default:
		return map[string]any{"result": v}
	}
}
