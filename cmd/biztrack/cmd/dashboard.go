package cmd

import (
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the financial overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		defer client.Close()

		summary, err := client.Dashboard().Summary(cmd.Context())
		if err != nil {
			return err
		}

		header("Overview")
		renderTable([]string{"Metric", "Amount"}, [][]string{
			{"Total invoiced", money(summary.Metrics.TotalInvoiced)},
			{"Total collected", money(summary.Metrics.TotalCollected)},
			{"Total pending", money(summary.Metrics.TotalPending)},
			{"Net profit", money(summary.Metrics.NetProfit)},
		})

		if len(summary.RecentActivity) > 0 {
			header("Recent activity")
			rows := make([][]string, 0, len(summary.RecentActivity))
			for _, inv := range summary.RecentActivity {
				rows = append(rows, []string{
					inv.Number, statusBadge(inv.Status), money(inv.Total),
				})
			}
			renderTable([]string{"Number", "Status", "Total"}, rows)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
