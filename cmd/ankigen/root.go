package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "ankigen",
	Short: "Generate illustrated Anki flashcards for vocabulary words",
	Long: `Ankigen turns a list of vocabulary words into pairs of illustrated Anki
flashcards. For each word it asks Gemini for an explanation and a visual
concept, renders an image for that concept, and adds two linked cards
(image-to-word and word-to-image) to a local Anki instance through the
AnkiConnect add-on.`,
	SilenceUsage: true,
}

// Execute runs the root command. Errors are already printed by cobra;
// callers only need the exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
