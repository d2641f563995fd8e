package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intRe         = regexp.MustCompile(`-?\d+`)
	floatRe       = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)
	numericJunkRe = regexp.MustCompile(`[^0-9.+\-eE]`)
)

// Score coerces an arbitrary decoded value into an integer in [0,100].
// Numbers clamp (floats rounded first), strings contribute their first integer
// substring, anything else is 0.
func Score(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return clampScore(v)
	case float64:
		return clampScore(int(math.Round(v)))
	}
	if m := intRe.FindString(fmt.Sprint(value)); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return clampScore(n)
		}
	}
	return 0
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// preferred key orders for flattening maps into a single string
var (
	listItemKeys = []string{"name", "language", "skill", "title", "text"}
	textKeys     = []string{"explanation", "explain", "text", "content", "recommendation"}
)

// ToStringList coerces any decoded value into a list of strings. Maps
// contribute their first string-valued name-like field (else their JSON
// encoding), other non-string items are stringified, a bare scalar becomes a
// single-element list and nil an empty one. Never returns nil.
func ToStringList(value any) []string {
	if value == nil {
		return []string{}
	}
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			switch item := it.(type) {
			case string:
				out = append(out, item)
			case map[string]any:
				out = append(out, flattenMap(item, listItemKeys))
			default:
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	case string:
		return []string{v}
	}
	return []string{fmt.Sprint(value)}
}

// ToString coerces any decoded value into a single string. Lists join on
// newlines (map elements JSON-encoded), maps prefer their explanation-like
// fields, nil is the empty string.
func ToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, it := range v {
			switch item := it.(type) {
			case string:
				parts = append(parts, item)
			case map[string]any:
				parts = append(parts, encodeMap(item))
			default:
				parts = append(parts, fmt.Sprint(item))
			}
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		return flattenMap(v, textKeys)
	}
	return fmt.Sprint(value)
}

func flattenMap(m map[string]any, preferred []string) string {
	for _, k := range preferred {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return encodeMap(m)
}

func encodeMap(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprint(m)
	}
	return string(b)
}

// ParseGPA interprets heterogeneous GPA representations on a 4.0 scale.
// "N/D" fractions rescale unless the denominator is already 4, in which case
// the numerator is kept (rounded to 3 decimals); "P%" rescales from 100;
// otherwise the first numeric substring is used. The assumption that "%"
// means out-of-100 is a convention guess inherited from the data, not a
// verified business rule. ok is false when nothing numeric could be
// recovered; callers keep the raw value under a parse-error marker instead of
// inventing a zero.
func ParseGPA(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return float64(v), true
	case float64:
		return v, true
	}

	s := strings.TrimSpace(fmt.Sprint(value))
	if strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)
		num, errN := strconv.ParseFloat(numericJunkRe.ReplaceAllString(parts[0], ""), 64)
		den, errD := strconv.ParseFloat(numericJunkRe.ReplaceAllString(parts[1], ""), 64)
		if errN != nil || errD != nil || den == 0 {
			return 0, false
		}
		if math.Abs(den-4.0) < 1e-9 {
			return round3(num), true
		}
		return round3(num / den * 4.0), true
	}
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return 0, false
		}
		return round3(pct / 100.0 * 4.0), true
	}
	if m := floatRe.FindString(s); m != "" {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// Languages normalizes a language list into language/proficiency mappings.
// A list of mappings passes through, a list of strings is wrapped with an
// empty proficiency, anything else yields an empty list.
func Languages(value any) []map[string]any {
	list, ok := value.([]any)
	if !ok || len(list) == 0 {
		return []map[string]any{}
	}
	switch list[0].(type) {
	case map[string]any:
		out := make([]map[string]any, 0, len(list))
		for _, it := range list {
			if m, ok := it.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case string:
		out := make([]map[string]any, 0, len(list))
		for _, it := range list {
			if s, ok := it.(string); ok {
				out = append(out, map[string]any{"language": s, "proficiency": ""})
			}
		}
		return out
	}
	return []map[string]any{}
}
