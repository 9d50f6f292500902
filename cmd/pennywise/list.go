package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/model"
	"github.com/Veraticus/pennywise/internal/report"
)

func listCmd() *cobra.Command {
	var (
		typeFilter  string
		monthFilter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		Long:  `Display the transaction snapshot as a table, newest first.`,
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

			filtered := txns[:0]
			for _, txn := range txns {
				if typeFilter != "" && string(txn.Type) != typeFilter {
					continue
				}
				if monthFilter != "" && txn.Month() != monthFilter {
					continue
				}
				filtered = append(filtered, txn)
			}

			if len(filtered) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions. Use 'pennywise add' to record one."))
				return nil
			}

			// Newest first; ties broken by id for a stable order.
			sort.SliceStable(filtered, func(i, j int) bool {
				if filtered[i].Date != filtered[j].Date {
					return filtered[i].Date > filtered[j].Date
				}
				return filtered[i].ID < filtered[j].ID
			})

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("ID"))

			for _, txn := range filtered {
				amount := report.FormatCurrency(txn.Amount)
				if txn.Type == model.TypeExpense {
					amount = "-" + amount
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					txn.Date,
					txn.Description,
					txn.Category,
					cli.FormatAmount(amount, txn.Type == model.TypeIncome),
					cli.SubtleStyle.Render(txn.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "only show INCOME or EXPENSE transactions")
	cmd.Flags().StringVar(&monthFilter, "month", "", "only show one month (YYYY-MM)")

	return cmd
}
