package main

import (
	"context"
	"fmt"

	"github.com/abdulachik/modguard/internal/app"
	"github.com/spf13/cobra"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Manage monitored channels",
}

var channelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored channels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			channels, err := a.Roster.Channels(context.Background())
			if err != nil {
				return err
			}
			if len(channels) == 0 {
				fmt.Println("No channels configured")
				return nil
			}
			for _, ch := range channels {
				fmt.Printf("%s\t%s\n", ch.ID, ch.Title)
			}
			return nil
		})
	},
}

var channelsAddCmd = &cobra.Command{
	Use:   "add [channel-id] [title]",
	Short: "Add a channel to monitor",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := ""
		if len(args) > 1 {
			title = args[1]
		}
		return withApp(func(a *app.App) error {
			added, err := a.Roster.AddChannel(context.Background(), args[0], title)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("Added channel %s\n", args[0])
			} else {
				fmt.Printf("Channel %s already monitored\n", args[0])
			}
			return nil
		})
	},
}

var channelsRemoveCmd = &cobra.Command{
	Use:   "remove [channel-id]",
	Short: "Stop monitoring a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			removed, err := a.Roster.RemoveChannel(context.Background(), args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Removed channel %s\n", args[0])
			} else {
				fmt.Printf("Channel %s not found\n", args[0])
			}
			return nil
		})
	},
}

func init() {
	channelsCmd.AddCommand(channelsListCmd)
	channelsCmd.AddCommand(channelsAddCmd)
	channelsCmd.AddCommand(channelsRemoveCmd)
	rootCmd.AddCommand(channelsCmd)
}
