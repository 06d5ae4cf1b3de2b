package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	biztrack "github.com/biztrack/biztrack-go"
)

func useColors() bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func success(format string, args ...any) {
	if useColors() {
		color.New(color.FgGreen).Printf("✓ "+format+"\n", args...)
	} else {
		fmt.Printf("[OK] "+format+"\n", args...)
	}
}

func header(title string) {
	if useColors() {
		color.New(color.Bold).Printf("\n%s\n", title)
	} else {
		fmt.Printf("\n%s\n", title)
	}
}

// statusBadge renders a document status. Colors mirror the backend's
// semantics: paid is done, partial is in progress, pending needs chasing.
func statusBadge(status string) string {
	if !useColors() {
		return status
	}
	switch status {
	case biztrack.InvoiceStatusPaid:
		return color.GreenString(status)
	case biztrack.InvoiceStatusPartial:
		return color.YellowString(status)
	case biztrack.InvoiceStatusPending:
		return color.RedString(status)
	default:
		return status
	}
}

func renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.Separators{ShowHeader: tw.Off}},
		}),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
