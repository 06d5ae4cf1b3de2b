package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/biztrack/biztrack-go/token"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		session := client.Session().Restore(cmd.Context())
		if !session.Authenticated() {
			fmt.Println("not logged in")
			return nil
		}

		fmt.Printf("%s (id %d)\n", session.User.Name, session.User.ID)
		if session.User.Email != "" {
			fmt.Println(session.User.Email)
		}

		info, err := token.Inspect(session.Token)
		switch {
		case errors.Is(err, token.ErrNotJWT):
			// Opaque token, nothing more to show.
		case err != nil:
			return err
		case !info.ExpiresAt.IsZero():
			if info.Expired(time.Now()) {
				fmt.Printf("token expired %s\n", info.ExpiresAt.Format(time.RFC3339))
			} else {
				fmt.Printf("token valid until %s\n", info.ExpiresAt.Format(time.RFC3339))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
