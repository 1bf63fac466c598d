package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abdulachik/modguard/internal/app"
	"github.com/spf13/cobra"
)

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage moderator accounts",
}

var adminsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List moderators",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			admins, err := a.Roster.Admins(context.Background())
			if err != nil {
				return err
			}
			if len(admins) == 0 {
				fmt.Println("No moderators configured")
				return nil
			}
			for _, id := range admins {
				fmt.Println(id)
			}
			return nil
		})
	},
}

var adminsAddCmd = &cobra.Command{
	Use:   "add [user-id]",
	Short: "Grant moderator rights to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		return withApp(func(a *app.App) error {
			added, err := a.Roster.AddAdmin(context.Background(), userID)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("Added moderator %d\n", userID)
			} else {
				fmt.Printf("%d is already a moderator\n", userID)
			}
			return nil
		})
	},
}

var adminsRemoveCmd = &cobra.Command{
	Use:   "remove [user-id]",
	Short: "Revoke moderator rights",
	Long: `Revoke moderator rights from a user. The --actor flag names the
moderator performing the removal; a moderator cannot remove themselves.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		actorID, err := cmd.Flags().GetInt64("actor")
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			removed, err := a.Roster.RemoveAdmin(context.Background(), actorID, userID)
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Removed moderator %d\n", userID)
			} else {
				fmt.Printf("%d is not a moderator\n", userID)
			}
			return nil
		})
	},
}

func init() {
	adminsRemoveCmd.Flags().Int64("actor", 0, "user id of the acting moderator")
	adminsCmd.AddCommand(adminsListCmd)
	adminsCmd.AddCommand(adminsAddCmd)
	adminsCmd.AddCommand(adminsRemoveCmd)
	rootCmd.AddCommand(adminsCmd)
}
