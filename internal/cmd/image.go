package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/service"
	"github.com/osohub/cli/pkg/session"
)

var (
	uploadTitle  string
	deleteForce  bool
	imagesUserID string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Image commands",
	Long:  "Upload, view, list and delete images",
}

var imageUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image",
	Long:  "Upload an image file (jpg, jpeg, png, gif, webp; max 10 MB)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		imageSvc := service.NewImageService(sess)
		return imageSvc.Upload(args[0], uploadTitle)
	},
}

var imageViewCmd = &cobra.Command{
	Use:   "view <image-id>",
	Short: "View a single image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		imageSvc := service.NewImageService(sess)
		return imageSvc.View(args[0])
	},
}

var imageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's uploaded images",
	Long:  "List your own images, or another user's with --user",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		imageSvc := service.NewImageService(sess)
		return imageSvc.List(imagesUserID)
	},
}

var imageDeleteCmd = &cobra.Command{
	Use:   "delete <image-id>",
	Short: "Delete one of your images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		imageSvc := service.NewImageService(sess)
		return imageSvc.Delete(args[0], deleteForce)
	},
}

var imageStatsCmd = &cobra.Command{
	Use:   "stats <image-id>",
	Short: "Show like and report counts for an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		imageSvc := service.NewImageService(sess)
		return imageSvc.Stats(args[0])
	},
}

func init() {
	imageUploadCmd.Flags().StringVarP(&uploadTitle, "title", "t", "", "Image title")
	imageListCmd.Flags().StringVar(&imagesUserID, "user", "", "User id to list images for (default: you)")
	imageDeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")

	imageCmd.AddCommand(imageUploadCmd)
	imageCmd.AddCommand(imageViewCmd)
	imageCmd.AddCommand(imageListCmd)
	imageCmd.AddCommand(imageDeleteCmd)
	imageCmd.AddCommand(imageStatsCmd)
}
