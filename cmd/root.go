package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nightlight",
	Short: "Nightlight - bedtime story studio",
	Long: `Nightlight crafts bedtime stories with a storyteller model and a critic model.

It collects story preferences interactively, runs a bounded generate/judge
feedback loop until the critic approves the draft, and offers a guided manual
retry when the critic stays unconvinced.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
