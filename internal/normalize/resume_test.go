package normalize

import (
	"reflect"
	"testing"
)

func TestNormalizeResumeGPA(t *testing.T) {
	parsed := map[string]any{
		"education": []any{
			map[string]any{"degree": "BSc", "gpa": "88/100"},
			map[string]any{"degree": "MSc", "gpa": "excellent"},
			map[string]any{"degree": "PhD"},
		},
	}

	NormalizeResume(parsed)

	educ := parsed["education"].([]any)

	first := educ[0].(map[string]any)
	if first["gpa"] != 3.52 {
		t.Errorf("gpa = %v, want 3.52", first["gpa"])
	}
	if _, marked := first["_gpa_parse_error"]; marked {
		t.Error("parseable gpa should not carry an error marker")
	}

	second := educ[1].(map[string]any)
	if second["gpa"] != "excellent" {
		t.Errorf("unparsable gpa should keep raw value, got %v", second["gpa"])
	}
	if second["_gpa_parse_error"] != "excellent" {
		t.Errorf("expected error marker with raw value, got %v", second["_gpa_parse_error"])
	}

	third := educ[2].(map[string]any)
	if _, ok := third["gpa"]; ok {
		t.Error("entry without gpa should stay without gpa")
	}
	if _, ok := third["_gpa_parse_error"]; ok {
		t.Error("entry without gpa should not gain an error marker")
	}
}

func TestNormalizeResumeLanguages(t *testing.T) {
	parsed := map[string]any{
		"skills": map[string]any{
			"technical": []any{"Go"},
			"languages": []any{"English", "Spanish"},
		},
	}

	NormalizeResume(parsed)

	langs := parsed["skills"].(map[string]any)["languages"]
	want := []map[string]any{
		{"language": "English", "proficiency": ""},
		{"language": "Spanish", "proficiency": ""},
	}
	if !reflect.DeepEqual(langs, want) {
		t.Errorf("languages = %v, want %v", langs, want)
	}
}

func TestNormalizeResumeTolerantOfShape(t *testing.T) {
	// none of these shapes should panic or change
	if got := NormalizeResume(nil); got != nil {
		t.Errorf("nil input should stay nil, got %v", got)
	}
	parsed := map[string]any{
		"education": "not a list",
		"skills":    []any{"not a map"},
	}
	NormalizeResume(parsed)
	if parsed["education"] != "not a list" {
		t.Error("malformed education section was altered")
	}
}
