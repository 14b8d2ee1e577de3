package story

import (
	"fmt"
	"strings"
)

const storytellerSystemPrompt = "You are a thoughtful bedtime storyteller writing for ages five to ten. " +
	"Favor concrete imagery, uplifting arcs, gentle suspense, and a positive resolution. " +
	"Keep vocabulary accessible to early readers while still sounding magical."

const judgeSystemPrompt = "You are a meticulous children's literature critic. " +
	"Assess safety, age-appropriateness, structure, creativity, and fidelity to the request. " +
	"Respond with JSON only."

func storyPrompt(req Request, summary, critique string) string {
	var b strings.Builder

	b.WriteString("You will write a single bedtime story.\n\n")
	b.WriteString("REQUEST SUMMARY:\n")
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString("CRITIQUE TO ADDRESS (if any):\n")
	b.WriteString(critique)
	b.WriteString("\n\n")
	b.WriteString("CONSTRAINTS:\n")
	fmt.Fprintf(&b, "- Keep the total length close to %d words.\n", req.TargetWords())
	b.WriteString("- Use simple paragraphs with vivid sensory details.\n")
	b.WriteString("- Include a clear beginning, middle, and end plus a gentle twist or surprise.\n")
	b.WriteString("- Close with a short moral sentence explicitly tagged as \"Moral:\".\n\n")
	b.WriteString("RESPONSE FORMAT:\n")
	b.WriteString("Title: <captivating title>\n")
	b.WriteString("Story:\n")
	b.WriteString("<one or more short paragraphs>\n")
	b.WriteString("Moral: <one sentence moral>")

	return b.String()
}

func judgePrompt(story, summary string) string {
	var b strings.Builder

	b.WriteString("Evaluate the following story for a bedtime audience ages five to ten.\n\n")
	b.WriteString("USER REQUEST SUMMARY:\n")
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString("STORY TO REVIEW:\n")
	b.WriteString(story)
	b.WriteString("\n\n")
	b.WriteString("Return strict JSON with keys:\n")
	b.WriteString("verdict: \"approve\" or \"revise\".\n")
	b.WriteString("summary: one-sentence assessment.\n")
	b.WriteString("issues: array of concrete problems, empty array if none.\n")
	b.WriteString("suggestions: array of actionable improvements aimed at the storyteller.")

	return b.String()
}

// EstimateTokens gives a rough token count assuming 0.75 words per token.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	tokens := int(float64(words) / 0.75)
	if tokens < 1 {
		return 1
	}
	return tokens
}
