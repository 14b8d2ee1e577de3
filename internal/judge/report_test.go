package judge

import (
	"reflect"
	"testing"
)

func TestNormalize_WellFormedApproval(t *testing.T) {
	raw := `{"verdict": "approve", "summary": "Lovely arc.", "issues": [], "suggestions": ["Add a lullaby."]}`

	report := Normalize(raw)

	if report.Verdict != VerdictApprove {
		t.Errorf("expected approve, got %q", report.Verdict)
	}
	if !report.Approved() {
		t.Error("Approved() must mirror the verdict")
	}
	if report.Summary != "Lovely arc." {
		t.Errorf("unexpected summary: %q", report.Summary)
	}
	if len(report.Issues) != 0 {
		t.Errorf("expected no issues, got %v", report.Issues)
	}
	if !reflect.DeepEqual(report.Suggestions, []string{"Add a lullaby."}) {
		t.Errorf("unexpected suggestions: %v", report.Suggestions)
	}
}

func TestNormalize_MissingFieldsYieldDefaults(t *testing.T) {
	report := Normalize(`{}`)

	if report.Verdict != VerdictRevise {
		t.Errorf("missing verdict must become revise, got %q", report.Verdict)
	}
	if report.Summary != "No summary provided." {
		t.Errorf("unexpected summary: %q", report.Summary)
	}
	if report.Issues == nil || len(report.Issues) != 0 {
		t.Errorf("issues must be an empty sequence, got %#v", report.Issues)
	}
	if report.Suggestions == nil || len(report.Suggestions) != 0 {
		t.Errorf("suggestions must be an empty sequence, got %#v", report.Suggestions)
	}
}

func TestNormalize_VerdictCoercion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"verdict": "APPROVE"}`, VerdictApprove},
		{`{"verdict": "Approve"}`, VerdictApprove},
		{`{"verdict": "approved"}`, VerdictRevise},
		{`{"verdict": "reject"}`, VerdictRevise},
		{`{"verdict": null}`, VerdictRevise},
		{`{"verdict": 1}`, VerdictRevise},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw).Verdict; got != tt.want {
			t.Errorf("Normalize(%s).Verdict = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_ScalarFieldsWrapped(t *testing.T) {
	report := Normalize(`{"verdict": "revise", "issues": "too scary", "suggestions": 3}`)

	if !reflect.DeepEqual(report.Issues, []string{"too scary"}) {
		t.Errorf("expected wrapped scalar issue, got %v", report.Issues)
	}
	if !reflect.DeepEqual(report.Suggestions, []string{"3"}) {
		t.Errorf("expected wrapped scalar suggestion, got %v", report.Suggestions)
	}
}

func TestNormalize_ArrayElementsCoerced(t *testing.T) {
	report := Normalize(`{"issues": ["pacing", 7, true]}`)

	if !reflect.DeepEqual(report.Issues, []string{"pacing", "7", "true"}) {
		t.Errorf("unexpected issues: %v", report.Issues)
	}
}

func TestNormalize_FencedJSONMatchesBare(t *testing.T) {
	bare := `{"verdict": "approve", "summary": "Sweet and calm.", "issues": [], "suggestions": []}`
	fenced := "```json\n" + bare + "\n```"

	if !reflect.DeepEqual(Normalize(fenced), Normalize(bare)) {
		t.Error("fenced JSON must normalize identically to bare JSON")
	}
}

func TestNormalize_ObjectSurroundedByProse(t *testing.T) {
	raw := "Sure! Here is my review:\n{\"verdict\": \"approve\", \"summary\": \"Nice.\"}\nHope that helps."

	report := Normalize(raw)

	if report.Verdict != VerdictApprove {
		t.Errorf("expected approve from embedded object, got %q", report.Verdict)
	}
	if report.Summary != "Nice." {
		t.Errorf("unexpected summary: %q", report.Summary)
	}
}

func TestNormalize_GarbageDegradesToRevise(t *testing.T) {
	report := Normalize("I simply loved it, five stars!")

	if report.Verdict != VerdictRevise {
		t.Errorf("unreadable output must revise, got %q", report.Verdict)
	}
	if len(report.Issues) == 0 {
		t.Error("expected at least one populated issue")
	}
	if !reflect.DeepEqual(report.Suggestions, []string{"I simply loved it, five stars!"}) {
		t.Errorf("expected cleaned text as suggestion, got %v", report.Suggestions)
	}
}

func TestNormalize_NonObjectJSONDegrades(t *testing.T) {
	report := Normalize(`["approve"]`)

	if report.Verdict != VerdictRevise {
		t.Errorf("non-object JSON must revise, got %q", report.Verdict)
	}
}

func TestNormalize_EmptySummaryDefaults(t *testing.T) {
	report := Normalize(`{"verdict": "revise", "summary": ""}`)

	if report.Summary != "No summary provided." {
		t.Errorf("unexpected summary: %q", report.Summary)
	}
}
