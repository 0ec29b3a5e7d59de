package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/service"
	"github.com/osohub/cli/pkg/session"
)

var (
	updateUsername string
	updateBio      string
	updateAvatar   string
	unban          bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
	Long:  "View and edit profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show [username]",
	Short: "Show a profile",
	Long:  "Show your own profile, or another user's public profile by username",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		profileSvc := service.NewProfileService(sess)
		if len(args) == 1 {
			return profileSvc.ShowPublic(args[0])
		}
		return profileSvc.ShowMe()
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	Long:  "Update your username, bio, or profile picture URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		profileSvc := service.NewProfileService(sess)
		return profileSvc.Update(updateUsername, updateBio, updateAvatar)
	},
}

var profileShareCmd = &cobra.Command{
	Use:   "share-link",
	Short: "Show your public profile link",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		profileSvc := service.NewProfileService(sess)
		return profileSvc.ShareLink()
	},
}

var profileBanCmd = &cobra.Command{
	Use:   "ban <user-id>",
	Short: "Ban or unban a user (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		profileSvc := service.NewProfileService(sess)
		return profileSvc.Ban(args[0], !unban)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&updateUsername, "username", "", "New username")
	profileUpdateCmd.Flags().StringVar(&updateBio, "bio", "", "New bio")
	profileUpdateCmd.Flags().StringVar(&updateAvatar, "avatar", "", "New profile picture URL")
	profileBanCmd.Flags().BoolVar(&unban, "unban", false, "Lift the ban instead")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileShareCmd)
	profileCmd.AddCommand(profileBanCmd)
}
