package normalize

// NormalizeResume repairs the parts of a parsed resume payload that drift the
// most in practice: education GPA values and the skills language list. The
// rest of the payload is kept as the model produced it. An unparsable GPA
// keeps its raw value and gains a parse-error marker instead of being zeroed.
func NormalizeResume(parsed map[string]any) map[string]any {
	if parsed == nil {
		return parsed
	}

	if educ, ok := parsed["education"].([]any); ok {
		for _, e := range educ {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			raw, present := entry["gpa"]
			if !present {
				continue
			}
			if gpa, ok := ParseGPA(raw); ok {
				entry["gpa"] = gpa
			} else {
				entry["_gpa_parse_error"] = raw
			}
		}
	}

	if skills, ok := parsed["skills"].(map[string]any); ok {
		if langs, ok := skills["languages"].([]any); ok {
			skills["languages"] = Languages(langs)
		}
	}

	return parsed
}
