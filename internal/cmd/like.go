package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/service"
	"github.com/osohub/cli/pkg/session"
)

var likeCmd = &cobra.Command{
	Use:   "like",
	Short: "Like commands",
	Long:  "Toggle and inspect likes on images",
}

var likeToggleCmd = &cobra.Command{
	Use:   "toggle <image-id>",
	Short: "Like or unlike an image",
	Long: `Flip your like on an image. The change is applied locally first
and rolled back if the server rejects it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		likeSvc := service.NewLikeService(sess)
		return likeSvc.Toggle(args[0])
	},
}

var likeStatusCmd = &cobra.Command{
	Use:   "status <image-id>",
	Short: "Show the like count and your like status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		likeSvc := service.NewLikeService(sess)
		return likeSvc.Status(args[0])
	},
}

func init() {
	likeCmd.AddCommand(likeToggleCmd)
	likeCmd.AddCommand(likeStatusCmd)
}
