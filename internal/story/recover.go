package story

import (
	"context"
	"fmt"
	"strings"
)

// RestartSentinel is the guidance value that asks for a full restart of
// preference collection.
const RestartSentinel = "restart"

const genericConcern = "Tone too intense."

// Recover offers one guided attempt after the loop exhausted its budget
// without approval. Empty guidance accepts the outcome as-is, the restart
// sentinel signals the caller to discard state and re-collect preferences,
// and anything else seeds a single extra generate+judge round with the
// judge's last concerns plus the guidance. The extra round's outcome is
// returned regardless of its verdict; this is a bounded attempt, not a loop.
func (l *Loop) Recover(ctx context.Context, req Request, outcome Outcome, guidance string) (Outcome, bool, error) {
	guidance = strings.TrimSpace(guidance)
	if guidance == "" {
		return outcome, false, nil
	}
	if strings.EqualFold(guidance, RestartSentinel) {
		return outcome, true, nil
	}

	concerns := outcome.Report.Issues
	if len(concerns) == 0 {
		concerns = outcome.Report.Suggestions
	}
	if len(concerns) == 0 {
		concerns = []string{genericConcern}
	}
	critique := "Judge concerns:\n- " + strings.Join(concerns, "\n- ") +
		"\n\nUser guidance:\n" + guidance

	summary := req.Summary()
	l.status("Generating an additional draft with your guidance...")
	text, err := l.generate(ctx, req, summary, critique)
	if err != nil {
		return outcome, false, err
	}
	report, err := l.judgeStory(ctx, text, summary)
	if err != nil {
		return outcome, false, err
	}
	l.status(fmt.Sprintf("Judge verdict after manual guidance: %s (%s)", strings.ToUpper(report.Verdict), report.Summary))
	return Outcome{Story: text, Report: report, Approved: report.Approved()}, false, nil
}

// Refine applies one optional user tweak to an already-accepted story. The
// refined text is returned without re-judging; an empty tweak keeps the
// story unchanged.
func (l *Loop) Refine(ctx context.Context, req Request, story, tweak string) (string, error) {
	tweak = strings.TrimSpace(tweak)
	if tweak == "" {
		return story, nil
	}
	critique := fmt.Sprintf("User feedback: %s. Preserve the best parts of the prior story when possible.", tweak)
	return l.generate(ctx, req, req.Summary(), critique)
}
