// Package judge normalizes critic-model output into a canonical report.
// Judge output is model-generated text that may arrive wrapped in markdown
// fences, surrounded by prose, or as invalid JSON; normalization never fails
// and degrades unreadable output to a "revise" verdict so a broken judge can
// never approve a story.
package judge

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Verdict values. Anything the judge returns other than exactly "approve"
// (case-insensitive) normalizes to "revise".
const (
	VerdictApprove = "approve"
	VerdictRevise  = "revise"
)

const (
	unreadableSummary = "Judge response was unreadable; request revision for safety."
	defaultSummary    = "No summary provided."
	malformedIssue    = "Malformed JSON from judge."
)

// Report is the canonical judge assessment. After Normalize every field is
// populated: Issues and Suggestions are never nil and never scalars.
type Report struct {
	Verdict     string   `json:"verdict"`
	Summary     string   `json:"summary"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Approved reports whether the verdict is an approval.
func (r Report) Approved() bool {
	return r.Verdict == VerdictApprove
}

// Normalize extracts a JSON object from raw judge output and coerces it into
// a fully-populated Report.
func Normalize(raw string) Report {
	cleaned := strings.Trim(strings.TrimSpace(raw), "`")
	candidate := extractObject(cleaned)

	parsed := gjson.Parse(candidate)
	if !gjson.Valid(candidate) || !parsed.IsObject() {
		return Report{
			Verdict:     VerdictRevise,
			Summary:     unreadableSummary,
			Issues:      []string{malformedIssue},
			Suggestions: []string{cleaned},
		}
	}

	return Report{
		Verdict:     normalizeVerdict(parsed.Get("verdict")),
		Summary:     normalizeSummary(parsed.Get("summary")),
		Issues:      coerceStrings(parsed.Get("issues")),
		Suggestions: coerceStrings(parsed.Get("suggestions")),
	}
}

// extractObject returns the widest { ... } span, spanning newlines, or the
// input verbatim when no such span exists.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

func normalizeVerdict(value gjson.Result) string {
	if strings.ToLower(value.String()) == VerdictApprove {
		return VerdictApprove
	}
	return VerdictRevise
}

func normalizeSummary(value gjson.Result) string {
	if s := value.String(); s != "" {
		return s
	}
	return defaultSummary
}

// coerceStrings forces a field into a sequence of strings: absent or null
// becomes empty, a scalar is wrapped as a single element, and array elements
// are coerced individually.
func coerceStrings(value gjson.Result) []string {
	if !value.Exists() || value.Type == gjson.Null {
		return []string{}
	}
	if value.IsArray() {
		items := value.Array()
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.String())
		}
		return out
	}
	return []string{value.String()}
}
