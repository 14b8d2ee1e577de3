package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AnswerKind tags the outcome of one prompt.
type AnswerKind int

const (
	// AnswerValue carries a usable answer.
	AnswerValue AnswerKind = iota
	// AnswerCancel asks the caller to restart collection from the top.
	AnswerCancel
	// AnswerExit asks the caller to quit the session.
	AnswerExit
)

// Answer is the tagged result of one prompt. Control flow ("cancel"/"exit")
// travels through the Kind field instead of an error.
type Answer struct {
	Kind  AnswerKind
	Value string
}

// Collector reads validated answers from an input stream and echoes prompts
// to an output stream.
type Collector struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewCollector wraps the given streams. Typically r is stdin and out stdout.
func NewCollector(r io.Reader, out io.Writer) *Collector {
	return &Collector{scanner: bufio.NewScanner(r), out: out}
}

// Ask prompts until it gets an acceptable answer. Empty input selects the
// fallback, "cancel" and "exit" short-circuit with their kinds, and noisy
// input re-prompts. EOF on the stream maps to AnswerExit.
func (c *Collector) Ask(prompt, fallback string) Answer {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.scanner.Scan() {
			return Answer{Kind: AnswerExit}
		}
		raw := strings.TrimSpace(c.scanner.Text())
		if raw == "" {
			return Answer{Kind: AnswerValue, Value: fallback}
		}
		switch strings.ToLower(raw) {
		case "cancel":
			return Answer{Kind: AnswerCancel}
		case "exit":
			return Answer{Kind: AnswerExit}
		}
		if IsNoise(raw) {
			fmt.Fprintln(c.out, "That doesn't look like a story-friendly answer. Please try again or press enter for the default.")
			continue
		}
		return Answer{Kind: AnswerValue, Value: raw}
	}
}

// AskRaw reads one line without noise filtering, for constrained choices
// where the caller validates the value itself.
func (c *Collector) AskRaw(prompt string) Answer {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return Answer{Kind: AnswerExit}
	}
	raw := strings.TrimSpace(c.scanner.Text())
	switch strings.ToLower(raw) {
	case "cancel":
		return Answer{Kind: AnswerCancel}
	case "exit":
		return Answer{Kind: AnswerExit}
	}
	return Answer{Kind: AnswerValue, Value: raw}
}
