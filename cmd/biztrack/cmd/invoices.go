package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		invoices, err := client.Invoices().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(invoices) == 0 {
			fmt.Println("no invoices")
			return nil
		}

		rows := make([][]string, 0, len(invoices))
		for _, inv := range invoices {
			clientName := ""
			if inv.Client != nil {
				clientName = inv.Client.Name
			}
			due := ""
			if !inv.DueDate.IsZero() {
				due = inv.DueDate.Format(time.DateOnly)
			}
			rows = append(rows, []string{
				inv.Number, clientName, statusBadge(inv.Status), money(inv.Total), due,
			})
		}
		renderTable([]string{"Number", "Client", "Status", "Total", "Due"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
}
