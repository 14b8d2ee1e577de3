package input

import "testing"

func TestIsNoise(t *testing.T) {
	tests := []struct {
		text  string
		noise bool
		why   string
	}{
		{"12345", true, "pure digits"},
		{"!!", true, "too short, no letters"},
		{"asdada", true, "single-vowel key mash"},
		{"Brave otter", false, "real phrase"},
		{"ab", true, "under three characters"},
		{"ab1234567890", true, "too few letters for the length"},
		{"xyzxyz", true, "no vowel"},
		{"aaaaaa", true, "two or fewer distinct letters"},
		{"ababab", true, "two or fewer distinct letters"},
		{"murmur", true, "one distinct vowel in a long token"},
		{"okapiokapi", true, "doubled token"},
		{"dragon", false, "ordinary word"},
		{"Wonderful", false, "ordinary word"},
		{"Gentle and hopeful", false, "multi-word answer"},
		{"A curious child and their playful pet.", false, "default-style answer"},
	}
	for _, tt := range tests {
		if got := IsNoise(tt.text); got != tt.noise {
			t.Errorf("IsNoise(%q) = %v, want %v (%s)", tt.text, got, tt.noise, tt.why)
		}
	}
}
