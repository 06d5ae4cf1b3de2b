package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerName    string
	registerEmail   string
	registerCompany string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account on the backend. Depending on the backend's settings
the account is either usable immediately or held until the email address is
verified; in the latter case log in after verifying.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		name := registerName
		if name == "" {
			if name, err = prompt("Name: "); err != nil {
				return err
			}
		}
		email := registerEmail
		if email == "" {
			if email, err = prompt("Email: "); err != nil {
				return err
			}
		}
		password, err := prompt("Password: ")
		if err != nil {
			return err
		}

		result, err := client.Session().Register(cmd.Context(), name, email, password, registerCompany)
		if err != nil {
			return err
		}
		if result.VerificationPending() {
			fmt.Println(result.Message)
			return nil
		}
		success("registered and logged in as %s", result.User.Name)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "your name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerCompany, "company", "", "company name")
	rootCmd.AddCommand(registerCmd)
}
