package main

import (
	"fmt"
	"strings"

	"github.com/abdulachik/modguard/internal/detector"
	"github.com/spf13/cobra"
)

var spamCmd = &cobra.Command{
	Use:   "spam [text]",
	Short: "Check a message for spam signals",
	Long: `Run only the spam heuristics on a message. Spam detection is
independent of the risk assessment: a message is spam when it carries
signals from at least two distinct categories (links, mentions,
hashtags, promotional shouting, excessive caps, repeated characters).`,
	Args: cobra.ExactArgs(1),
	RunE: runSpam,
}

func init() {
	rootCmd.AddCommand(spamCmd)
}

func runSpam(cmd *cobra.Command, args []string) error {
	result := detector.NewSpamDetector().Check(args[0])

	fmt.Println()
	fmt.Println("=== Spam Check ===")
	fmt.Printf("Spam:       %v\n", result.IsSpam)
	fmt.Printf("Confidence: %.0f\n", result.Confidence)
	if len(result.Signals) > 0 {
		fmt.Printf("Signals:    %s\n", strings.Join(result.Signals, ", "))
	}
	return nil
}
