package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nightlight-labs/nightlight/internal/config"
	"github.com/nightlight-labs/nightlight/internal/eventlog"
	"github.com/nightlight-labs/nightlight/internal/input"
	"github.com/nightlight-labs/nightlight/internal/llm"
	"github.com/nightlight-labs/nightlight/internal/story"
)

var modelOverride string

var tellCmd = &cobra.Command{
	Use:   "tell",
	Short: "Craft a bedtime story with critic feedback",
	Long: `Craft a bedtime story through an iterative storyteller/critic loop.

This command:
1. Collects story preferences interactively (idea, characters, tone, lesson, length)
2. Generates a draft with the storyteller model
3. Has a critic model judge the draft and, on a revise verdict, regenerates
   with the critique until approval or the attempt budget runs out
4. Offers a guided manual retry when the critic stays unconvinced

Required environment variables:
  OPENAI_API_KEY     - OpenAI API key for the storyteller and critic

Tuning (all optional):
  STORY_MODEL, STORY_TEMP, JUDGE_TEMP, MAX_STORY_ATTEMPTS, API_RETRIES,
  API_TIMEOUT_SECONDS, TOKEN_WARN_THRESHOLD, STORY_LOG_PATH`,
	Args: cobra.NoArgs,
	RunE: runTell,
}

func init() {
	rootCmd.AddCommand(tellCmd)
	tellCmd.Flags().StringVar(&modelOverride, "model", "", "Chat model to use (default: STORY_MODEL or gpt-4o-mini)")
}

func runTell(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Missing credentials are fatal before any loop work begins.
	if os.Getenv("OPENAI_API_KEY") == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	cfg := config.FromEnv()

	llmConfig := llm.DefaultConfig()
	llmConfig.Timeout = cfg.Timeout()
	if modelOverride != "" {
		llmConfig.Model = modelOverride
	}
	client, err := llm.NewOpenAIClient(llmConfig)
	if err != nil {
		return err
	}
	resilient := llm.NewResilient(client, cfg.APIRetries, eventlog.NewFile(cfg.LogPath))

	// Styling
	var (
		headerColor  = lipgloss.Color("#F780FF") // Bright pink
		storyColor   = lipgloss.Color("#E9E9F4") // Light purple/white
		statusColor  = lipgloss.Color("#6272A4") // Muted purple
		errorColor   = lipgloss.Color("#FF5555") // Red
		successColor = lipgloss.Color("#50FA7B") // Green
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	storyStyle := lipgloss.NewStyle().
		Foreground(storyColor)

	statusStyle := lipgloss.NewStyle().
		Foreground(statusColor).
		Italic(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	successStyle := lipgloss.NewStyle().
		Foreground(successColor)

	loop := story.NewLoop(resilient, cfg, func(line string) {
		fmt.Println(statusStyle.Render(line))
	})
	collector := input.NewCollector(os.Stdin, os.Stdout)

	fmt.Println(headerStyle.Render("Welcome to the Nightlight story studio!"))
	fmt.Println(statusStyle.Render(fmt.Sprintf(
		"Config: story temp %v, judge temp %v, attempts %d, model %s",
		cfg.StorytellerTemp, cfg.JudgeTemp, cfg.MaxAttempts, llmConfig.Model,
	)))

	var outcome story.Outcome
	var req story.Request
	for {
		var ok bool
		req, ok = collectPreferences(collector)
		if !ok {
			fmt.Println("\nGoodnight! See you next story time.")
			return nil
		}

		fmt.Println()
		fmt.Println(headerStyle.Render("Here's how I understand your request:"))
		fmt.Println(storyStyle.Render(req.Summary()))
		fmt.Println()

		outcome, err = loop.Run(ctx, req, cfg.MaxAttempts)
		if err != nil {
			if !errors.Is(err, llm.ErrModelUnavailable) {
				return err
			}
			fmt.Println(errorStyle.Render(fmt.Sprintf("Encountered an issue (%v).", err)))
			retry := collector.AskRaw("Try again? (y/n): ")
			if retry.Kind == input.AnswerValue && strings.EqualFold(retry.Value, "y") {
				continue
			}
			return err
		}

		if !outcome.Approved {
			fmt.Println()
			fmt.Println(errorStyle.Render("The judge still has concerns after several attempts."))
			printConcerns(outcome, storyStyle)
			guidance := collector.AskRaw(
				"Enter new gentle guidance to try another revision, type 'restart' to re-enter your preferences, " +
					"or press enter to accept the current draft: ")
			if guidance.Kind == input.AnswerExit {
				fmt.Println("\nGoodnight! See you next story time.")
				return nil
			}
			value := guidance.Value
			if guidance.Kind == input.AnswerCancel {
				value = story.RestartSentinel
			}
			var restart bool
			outcome, restart, err = loop.Recover(ctx, req, outcome, value)
			if err != nil {
				return err
			}
			if restart {
				fmt.Println(statusStyle.Render("Restarting preference collection..."))
				continue
			}
		}
		break
	}

	fmt.Println()
	fmt.Println("Would you like any quick adjustments? Examples: 'make it shorter', 'change the ending', 'more dialogue'.")
	tweak := collector.AskRaw("Enter optional tweak instructions (press enter to keep as-is): ")
	finalStory := outcome.Story
	if tweak.Kind == input.AnswerValue && tweak.Value != "" {
		fmt.Println(statusStyle.Render("Creating revised version with your feedback..."))
		finalStory, err = loop.Refine(ctx, req, outcome.Story, tweak.Value)
		if err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Final Bedtime Story"))
	fmt.Println()
	fmt.Println(storyStyle.Render(strings.TrimSpace(finalStory)))
	fmt.Println()
	fmt.Println(successStyle.Render("Judge summary:"))
	report, err := json.MarshalIndent(outcome.Report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(report))

	return nil
}

// preference prompts with friendly defaults, asked in order.
var preferenceQuestions = []struct {
	prompt   string
	fallback string
}{
	{"What is the main idea or request for the story? ", "A cozy adventure featuring loyal friends."},
	{"Any key characters or creatures to include? ", "A curious child and their playful pet."},
	{"Desired tone (e.g., silly, gentle, adventurous)? ", "Gentle and hopeful"},
	{"Is there a lesson or theme to emphasize? ", "Friendship and kindness matter."},
}

// collectPreferences gathers a validated story request. The second return is
// false when the user chose to exit.
func collectPreferences(c *input.Collector) (story.Request, bool) {
	fmt.Println("\nLet's gather a few details so I can craft the perfect bedtime story. Type 'cancel' to restart or 'exit' to quit.")

restart:
	for {
		answers := make([]string, 0, len(preferenceQuestions))
		for _, q := range preferenceQuestions {
			answer := c.Ask(q.prompt, q.fallback)
			switch answer.Kind {
			case input.AnswerExit:
				return story.Request{}, false
			case input.AnswerCancel:
				fmt.Println("Restarting preference collection...")
				continue restart
			}
			answers = append(answers, answer.Value)
		}

		lengthAnswer := c.AskRaw("Preferred length (short/medium/long)? ")
		switch lengthAnswer.Kind {
		case input.AnswerExit:
			return story.Request{}, false
		case input.AnswerCancel:
			fmt.Println("Restarting preference collection...")
			continue restart
		}
		length, known := story.ParseLength(lengthAnswer.Value)
		if !known && lengthAnswer.Value != "" {
			fmt.Println("Unrecognized length, defaulting to medium.")
		}

		return story.Request{
			Description: answers[0],
			Characters:  answers[1],
			Tone:        answers[2],
			Lesson:      answers[3],
			Length:      length,
		}, true
	}
}

func printConcerns(outcome story.Outcome, style lipgloss.Style) {
	if len(outcome.Report.Issues) > 0 {
		fmt.Println("Judge issues:")
		for _, issue := range outcome.Report.Issues {
			fmt.Println(style.Render("- " + issue))
		}
	}
	if len(outcome.Report.Suggestions) > 0 {
		fmt.Println("Judge suggestions:")
		for _, tip := range outcome.Report.Suggestions {
			fmt.Println(style.Render("- " + tip))
		}
	}
}
