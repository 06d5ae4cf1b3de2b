package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		client.Session().Logout(cmd.Context())
		success("logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
