package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := client.Clients().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no clients")
			return nil
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				fmt.Sprintf("%d", r.ID), r.Name, r.Email, r.Phone, r.City,
			})
		}
		renderTable([]string{"ID", "Name", "Email", "Phone", "City"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}
