package main

import (
	"context"
	"fmt"

	"github.com/abdulachik/modguard/internal/app"
	"github.com/abdulachik/modguard/internal/config"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Manage the banned keyword list",
}

var keywordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List banned keywords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			keywords := a.Engine.Keywords().Keywords()
			if len(keywords) == 0 {
				fmt.Println("No keywords configured")
				return nil
			}
			for _, kw := range keywords {
				fmt.Println(kw)
			}
			return nil
		})
	},
}

var keywordsAddCmd = &cobra.Command{
	Use:   "add [keyword]",
	Short: "Add a banned keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if a.Engine.Keywords().Add(args[0]) {
				fmt.Printf("Added %q\n", args[0])
			} else {
				fmt.Printf("%q already present (or empty)\n", args[0])
			}
			return nil
		})
	},
}

var keywordsRemoveCmd = &cobra.Command{
	Use:   "remove [keyword]",
	Short: "Remove a banned keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if a.Engine.Keywords().Remove(args[0]) {
				fmt.Printf("Removed %q\n", args[0])
			} else {
				fmt.Printf("%q not found\n", args[0])
			}
			return nil
		})
	},
}

func init() {
	keywordsCmd.AddCommand(keywordsListCmd)
	keywordsCmd.AddCommand(keywordsAddCmd)
	keywordsCmd.AddCommand(keywordsRemoveCmd)
	rootCmd.AddCommand(keywordsCmd)
}

// withApp wires the application for a short-lived admin command.
func withApp(fn func(*app.App) error) error {
	ctx := context.Background()

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

	return fn(a)
}
