// Package story implements the bedtime-story request model, prompt assembly,
// and the generate/judge feedback loop that keeps regenerating a draft until
// the critic approves it or the attempt budget runs out.
package story

import (
	"fmt"
	"strings"

	"github.com/nightlight-labs/nightlight/internal/judge"
)

// Length categories for the requested story.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

var lengthWords = map[Length]int{
	LengthShort:  220,
	LengthMedium: 380,
	LengthLong:   520,
}

// ParseLength maps user input onto a known category. Unrecognized input falls
// back to medium; the second return reports whether the input was recognized.
func ParseLength(raw string) (Length, bool) {
	l := Length(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := lengthWords[l]; ok {
		return l, true
	}
	return LengthMedium, false
}

// Request captures the user's storytelling preferences. Built once per
// session from validated input and never mutated.
type Request struct {
	Description string
	Characters  string
	Tone        string
	Lesson      string
	Length      Length
}

// TargetWords returns the word budget for the request's length category.
func (r Request) TargetWords() int {
	if words, ok := lengthWords[r.Length]; ok {
		return words
	}
	return lengthWords[LengthMedium]
}

// Summary produces the concise request description shared by the storyteller
// and judge prompts.
func (r Request) Summary() string {
	return fmt.Sprintf(
		"Story idea: %s. Characters: %s. Tone: %s. Lesson: %s. Target length: %s (~%d words).",
		r.Description, r.Characters, r.Tone, r.Lesson, r.Length, r.TargetWords(),
	)
}

// Outcome holds one completed round: the story text, the normalized judge
// report, and the approval flag mirroring the report's verdict.
type Outcome struct {
	Story    string
	Report   judge.Report
	Approved bool
}
