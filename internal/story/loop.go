package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/nightlight-labs/nightlight/internal/config"
	"github.com/nightlight-labs/nightlight/internal/judge"
	"github.com/nightlight-labs/nightlight/internal/llm"
)

const (
	neutralCritique  = "None. Focus on delighting the child audience."
	fallbackCritique = "Please refine pacing and clarity."

	storyMaxTokens = 900
	judgeMaxTokens = 400
)

// Loop runs the generate/judge feedback cycle against a model client. The
// same client serves both personas; each round judges the story produced by
// that round's generation call.
type Loop struct {
	llm    llm.Client
	cfg    config.Config
	status func(string)
}

// NewLoop builds a feedback loop. status receives user-visible progress
// lines; nil discards them.
func NewLoop(client llm.Client, cfg config.Config, status func(string)) *Loop {
	if status == nil {
		status = func(string) {}
	}
	return &Loop{llm: client, cfg: cfg, status: status}
}

// Run generates drafts until the judge approves or the attempt budget plus
// one headroom round is exhausted. Exhaustion is a normal terminal state
// returning the last outcome with Approved=false, not an error; only model
// unavailability fails the run. maxAttempts below 1 uses the configured
// budget.
func (l *Loop) Run(ctx context.Context, req Request, maxAttempts int) (Outcome, error) {
	if maxAttempts < 1 {
		maxAttempts = l.cfg.MaxAttempts
	}

	summary := req.Summary()
	critique := neutralCritique
	var outcome Outcome
	for round := 1; round <= maxAttempts+1; round++ {
		l.status(fmt.Sprintf("Generating story draft #%d...", round))
		text, err := l.generate(ctx, req, summary, critique)
		if err != nil {
			return outcome, err
		}

		report, err := l.judgeStory(ctx, text, summary)
		if err != nil {
			return outcome, err
		}
		outcome = Outcome{Story: text, Report: report, Approved: report.Approved()}
		l.status(fmt.Sprintf("Judge verdict: %s (%s)", strings.ToUpper(report.Verdict), report.Summary))

		if outcome.Approved {
			return outcome, nil
		}
		critique = buildCritique(report)
	}
	return outcome, nil
}

func (l *Loop) generate(ctx context.Context, req Request, summary, critique string) (string, error) {
	prompt := storyPrompt(req, summary, critique)
	l.warnTokenBudget(summary, critique, prompt)

	messages := []llm.Message{
		llm.SystemMessage(storytellerSystemPrompt),
		llm.UserMessage(prompt),
	}
	return l.llm.Complete(ctx, messages, storyMaxTokens, l.cfg.StorytellerTemp)
}

func (l *Loop) judgeStory(ctx context.Context, text, summary string) (judge.Report, error) {
	prompt := judgePrompt(text, summary)
	l.warnTokenBudget(summary, text, prompt)

	messages := []llm.Message{
		llm.SystemMessage(judgeSystemPrompt),
		llm.UserMessage(prompt),
	}
	raw, err := l.llm.Complete(ctx, messages, judgeMaxTokens, l.cfg.JudgeTemp)
	if err != nil {
		return judge.Report{}, err
	}
	return judge.Normalize(raw), nil
}

func (l *Loop) warnTokenBudget(segments ...string) {
	total := 0
	for _, seg := range segments {
		total += EstimateTokens(seg)
	}
	if total > l.cfg.TokenWarnThreshold {
		l.status(fmt.Sprintf(
			"Warning: this request may exceed the token budget (%d estimated tokens > %d).",
			total, l.cfg.TokenWarnThreshold,
		))
	}
}

// buildCritique turns a revise report into the next round's critique text:
// a bulleted issues block, a bulleted suggestions block, or a generic
// directive when the judge offered neither.
func buildCritique(report judge.Report) string {
	var blocks []string
	if len(report.Issues) > 0 {
		blocks = append(blocks, "Issues to fix:\n- "+strings.Join(report.Issues, "\n- "))
	}
	if len(report.Suggestions) > 0 {
		blocks = append(blocks, "Suggestions:\n- "+strings.Join(report.Suggestions, "\n- "))
	}
	if len(blocks) == 0 {
		return fallbackCritique
	}
	return strings.Join(blocks, "\n\n")
}
