package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		email := loginEmail
		if email == "" {
			if email, err = prompt("Email: "); err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			if password, err = prompt("Password: "); err != nil {
				return err
			}
		}

		user, err := client.Session().Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		success("logged in as %s", user.Name)
		return nil
	},
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}
