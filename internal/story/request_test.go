package story

import (
	"strings"
	"testing"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		raw   string
		want  Length
		known bool
	}{
		{"short", LengthShort, true},
		{"Medium", LengthMedium, true},
		{"LONG", LengthLong, true},
		{" long ", LengthLong, true},
		{"epic", LengthMedium, false},
		{"", LengthMedium, false},
	}
	for _, tt := range tests {
		got, known := ParseLength(tt.raw)
		if got != tt.want || known != tt.known {
			t.Errorf("ParseLength(%q) = (%v, %v), want (%v, %v)", tt.raw, got, known, tt.want, tt.known)
		}
	}
}

func TestRequest_TargetWords(t *testing.T) {
	tests := []struct {
		length Length
		want   int
	}{
		{LengthShort, 220},
		{LengthMedium, 380},
		{LengthLong, 520},
		{Length("saga"), 380}, // unknown categories fall back to medium
	}
	for _, tt := range tests {
		req := Request{Length: tt.length}
		if got := req.TargetWords(); got != tt.want {
			t.Errorf("TargetWords(%v) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestRequest_Summary(t *testing.T) {
	req := testRequest()

	summary := req.Summary()

	for _, fragment := range []string{
		"Story idea: A hedgehog who collects starlight.",
		"Characters: Pip the hedgehog.",
		"Tone: Gentle and hopeful.",
		"Lesson: Sharing makes light brighter.",
		"Target length: short (~220 words).",
	} {
		if !strings.Contains(summary, fragment) {
			t.Errorf("summary missing %q:\n%s", fragment, summary)
		}
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"one", 1},
		{"one two three", 4},
		{"a b c d e f", 8},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
