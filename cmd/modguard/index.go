package main

import (
	"fmt"

	"github.com/abdulachik/modguard/internal/config"
	"github.com/abdulachik/modguard/internal/detector"
	"github.com/abdulachik/modguard/internal/exampleindex"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the violation example index",
	Long: `Seed the VecLite example index with the corpus violation phrases.
The index powers the "closest known violation" explanations of assess;
it is optional and never affects the risk score.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.ExampleIndexPath == "" {
		return fmt.Errorf("EXAMPLE_INDEX_PATH is required for index")
	}

	idx, err := exampleindex.Open(exampleindex.Config{Path: cfg.ExampleIndexPath})
	if err != nil {
		return fmt.Errorf("open example index: %w", err)
	}
	defer idx.Close()

	if err := idx.Seed(detector.SeedCorpus()); err != nil {
		return fmt.Errorf("seed example index: %w", err)
	}

	fmt.Printf("Example index ready with %d phrases at %s\n", idx.Count(), cfg.ExampleIndexPath)
	return nil
}
