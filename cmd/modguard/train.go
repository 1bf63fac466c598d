package main

import (
	"fmt"

	"github.com/abdulachik/modguard/internal/config"
	"github.com/abdulachik/modguard/internal/detector"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Retrain the classifier and persist the artifact",
	Long: `Retrain the naive Bayes classifier from the seed corpus and write
the model artifact to MODEL_PATH, replacing any existing artifact.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	model, err := detector.Train(detector.SeedCorpus())
	if err != nil {
		return fmt.Errorf("train classifier: %w", err)
	}

	if err := detector.NewModelStore(cfg.ModelPath).Save(model); err != nil {
		return fmt.Errorf("save model: %w", err)
	}

	fmt.Printf("Trained classifier (%d terms, %d+%d docs) saved to %s\n",
		model.VocabularySize(), model.ViolationDocs, model.CleanDocs, cfg.ModelPath)
	return nil
}
