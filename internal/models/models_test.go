package models

import "testing"

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Acme Corp", "acme corp"},
		{"  Acme Corp  ", "acme corp"},
		{"ACME CORP", "acme corp"},
		{"\tGlobex\n", "globex"},
		{"", ""},
		{"   ", ""},
		// Interior whitespace is significant; only the edges are trimmed.
		{"Acme  Corp", "acme  corp"},
	}

	for _, tt := range tests {
		if got := NormalizeCompanyName(tt.input); got != tt.expected {
			t.Errorf("NormalizeCompanyName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsValidStage(t *testing.T) {
	for _, stage := range ApplicationStages {
		if !IsValidStage(stage) {
			t.Errorf("IsValidStage(%q) = false, expected true", stage)
		}
	}

	invalid := []string{
		"",
		"initial application", // case-sensitive
		"After Second Interview",
		"Offer",
	}
	for _, stage := range invalid {
		if IsValidStage(stage) {
			t.Errorf("IsValidStage(%q) = true, expected false", stage)
		}
	}
}
