package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abdulachik/modguard/internal/app"
	"github.com/abdulachik/modguard/internal/config"
	"github.com/abdulachik/modguard/internal/exampleindex"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess [text]",
	Short: "Assess a message for policy violations",
	Long: `Run the full risk assessment on a message.

Example:
  modguard assess "download this movie for free"`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	text := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	result := a.Engine.Assess(text)

	fmt.Println()
	fmt.Println("=== Risk Assessment ===")
	fmt.Printf("Score:      %.1f\n", result.Score)
	fmt.Printf("Severity:   %s\n", result.Severity)
	fmt.Printf("Action:     %s\n", result.Action)
	fmt.Printf("Violation:  %v\n", result.Violation)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	fmt.Println()

	b := result.Breakdown
	if len(b.MatchedKeywords) > 0 {
		fmt.Printf("Keywords:   %s\n", strings.Join(b.MatchedKeywords, ", "))
	}
	for rule, matches := range b.PatternMatches {
		fmt.Printf("Pattern:    %s (%s)\n", rule, strings.Join(matches, ", "))
	}
	fmt.Printf("ML:         violation=%v confidence=%.2f\n", b.MLViolation, b.MLConfidence)
	fmt.Printf("Sentiment:  polarity=%.2f subjectivity=%.2f\n", b.Polarity, b.Subjectivity)

	// Closest known violation examples, when the index is available.
	if cfg.ExampleIndexPath != "" {
		idx, err := exampleindex.Open(exampleindex.Config{Path: cfg.ExampleIndexPath})
		if err != nil {
			slog.Warn("example index unavailable", "error", err)
			return nil
		}
		defer idx.Close()

		examples, err := idx.Closest(text, 3)
		if err != nil {
			slog.Warn("example search failed", "error", err)
			return nil
		}
		if len(examples) > 0 {
			fmt.Println()
			fmt.Println("Closest known violation phrases:")
			for _, ex := range examples {
				fmt.Printf("  %.2f  %s\n", ex.Similarity, ex.Phrase)
			}
		}
	}

	return nil
}
