package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals, monthly trend, and expense breakdown",
		Long: `Show the dashboard: overall balance, per-month income and expense, and
where the expense money went by category. Everything is recomputed from the
current snapshot.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.Transactions(ctx)
			if err != nil {
				return err
			}

			totals := report.Totals(txns)

			fmt.Println(cli.FormatTitle("Overview"))
			balance := report.FormatCurrency(totals.Balance)
			if totals.Balance < 0 {
				balance = cli.ExpenseStyle.Render(balance)
			} else {
				balance = cli.BoldStyle.Render(balance)
			}
			fmt.Printf("  Balance  %s\n", balance)
			fmt.Printf("  Income   %s\n", cli.IncomeStyle.Render(report.FormatCurrency(totals.Income)))
			fmt.Printf("  Expense  %s\n", cli.ExpenseStyle.Render(report.FormatCurrency(totals.Expense)))
			fmt.Println()

			series := report.MonthlySeries(txns)
			if len(series) > 0 {
				fmt.Println(cli.FormatTitle("Monthly trend"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "  %s\t%s\t%s\n",
					cli.HeaderStyle.Render("Month"),
					cli.HeaderStyle.Render("Income"),
					cli.HeaderStyle.Render("Expense"))
				for _, m := range series {
					fmt.Fprintf(w, "  %s\t%s\t%s\n",
						m.Month,
						cli.IncomeStyle.Render(report.FormatCurrency(m.Income)),
						cli.ExpenseStyle.Render(report.FormatCurrency(m.Expense)))
				}
				_ = w.Flush()
				fmt.Println()
			}

			breakdown := report.CategoryBreakdown(txns)
			if len(breakdown) > 0 {
				fmt.Println(cli.FormatTitle("Expenses by category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, entry := range breakdown {
					share := 0.0
					if totals.Expense > 0 {
						share = entry.Total / totals.Expense * 100
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n",
						entry.Category,
						cli.ExpenseStyle.Render(report.FormatCurrency(entry.Total)),
						cli.SubtleStyle.Render(fmt.Sprintf("%.1f%%", share)))
				}
				_ = w.Flush()
			}

			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing recorded yet."))
			}

			return nil
		},
	}
}
