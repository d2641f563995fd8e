package normalize

import (
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"in-range int", 50, 50},
		{"clamped high", 150, 100},
		{"clamped low", -5, 0},
		{"float rounded", 87.6, 88},
		{"numeric string", "85", 85},
		{"embedded number", "score is 85 out of 100", 85},
		{"non-numeric string", "N/A", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.input); got != tt.expected {
				t.Errorf("Score(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseGPA(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{"numeric passthrough", 3.8, 3.8, true},
		{"int passthrough", 4, 4.0, true},
		{"four scale fraction keeps numerator", "3.8/4.0", 3.8, true},
		{"hundred scale fraction rescaled", "88/100", 3.52, true},
		{"ten scale fraction rescaled", "9.2/10", 3.68, true},
		{"percentage rescaled", "85%", 3.4, true},
		{"labeled value", "GPA: 3.9", 3.9, true},
		{"zero denominator rejected", "3/0", 0, false},
		{"prose rejected", "excellent", 0, false},
		{"nil rejected", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGPA(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseGPA(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ParseGPA(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{"string list", []any{"Go", "SQL"}, []string{"Go", "SQL"}},
		{"maps flattened by name", []any{map[string]any{"name": "Go", "years": 3.0}}, []string{"Go"}},
		{"maps flattened by skill", []any{map[string]any{"skill": "Docker"}}, []string{"Docker"}},
		{"nameless map json encoded", []any{map[string]any{"level": "senior"}}, []string{`{"level":"senior"}`}},
		{"numbers stringified", []any{1.0, 2.0}, []string{"1", "2"}},
		{"bare scalar wrapped", "Go", []string{"Go"}},
		{"nil is empty", nil, []string{}},
		{"empty list stays empty", []any{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToStringList(tt.input)
			if got == nil {
				t.Fatal("ToStringList returned nil")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string passthrough", "hello", "hello"},
		{"list joined on newline", []any{"a", "b"}, "a\nb"},
		{"map prefers explanation", map[string]any{"explanation": "why", "other": 1.0}, "why"},
		{"map without text keys json encoded", map[string]any{"k": "v"}, `{"k":"v"}`},
		{"nil is empty", nil, ""},
		{"number stringified", 42.0, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLanguages(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []map[string]any
	}{
		{
			name:  "mappings pass through",
			input: []any{map[string]any{"language": "English", "proficiency": "Native"}},
			expected: []map[string]any{
				{"language": "English", "proficiency": "Native"},
			},
		},
		{
			name:  "strings wrapped",
			input: []any{"English", "Spanish"},
			expected: []map[string]any{
				{"language": "English", "proficiency": ""},
				{"language": "Spanish", "proficiency": ""},
			},
		},
		{"bare string rejected", "English", []map[string]any{}},
		{"nil is empty", nil, []map[string]any{}},
		{"numeric list rejected", []any{1.0}, []map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Languages(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
