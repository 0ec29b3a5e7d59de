package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage CLI settings",
	Long:  "View and change CLI configuration values",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("api.base_url: %s\n", config.GetString("api.base_url"))
		fmt.Printf("api.timeout: %d\n", config.GetInt("api.timeout"))
		fmt.Printf("output.format: %s\n", config.GetString("output.format"))
		fmt.Printf("feed.window_days: %d\n", config.GetInt("feed.window_days"))
		fmt.Printf("feed.batch_size: %d\n", config.GetInt("feed.batch_size"))
		fmt.Printf("log.file: %s\n", config.GetString("log.file"))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetString(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
