package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/config"
	"github.com/osohub/cli/pkg/logger"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "osohub",
	Short: "Osohub CLI - Photo sharing from the terminal",
	Long: `Osohub CLI is a command-line interface for the Osohub photo
sharing platform. Browse the feed, upload images, like posts, and
manage your profile directly from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if outputFmt != "" {
			config.SetString("output.format", outputFmt)
		}

		client.Init()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/osohub/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
