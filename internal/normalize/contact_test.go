package normalize

import "testing"

func TestCleanText(t *testing.T) {
	got := CleanText("  Jane\tDoe\n\nSoftware   Engineer ")
	if got != "Jane Doe Software Engineer" {
		t.Errorf("got %q", got)
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Contact: jane.doe@example.com or call", "jane.doe@example.com"},
		{"first of several", "a@x.io b@y.io", "a@x.io"},
		{"none", "no contact details here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractEmail(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"international", "Phone: +1 (555) 123-4567", "+1 (555) 123-4567"},
		{"too short", "ext 12345", ""},
		{"none", "email only", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPhone(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
