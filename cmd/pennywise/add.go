package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/model"
	"github.com/Veraticus/pennywise/internal/report"
)

func addCmd() *cobra.Command {
	var (
		date        string
		description string
		amount      float64
		txnType     string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new income or expense transaction.

Examples:
  # An expense
  pennywise add -d "Coffee" -a 4.50 -t EXPENSE -c "Food & Dining"

  # Income, dated explicitly
  pennywise add -d "March salary" -a 12000 -t INCOME -c Salary --date 2024-03-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			draft := model.Transaction{
				Date:        date,
				Description: description,
				Amount:      amount,
				Type:        model.TransactionType(txnType),
				Category:    model.Category(category),
			}
			if draft.Date == "" {
				draft.Date = time.Now().Format(model.DateLayout)
			}
			if !draft.Category.Valid() {
				return fmt.Errorf("unknown category %q (see 'pennywise add --help' for the list)", category)
			}

			// Category-per-type is a convention, not a rule: warn, don't
			// reject.
			if !draft.Category.ConventionalFor(draft.Type) {
				fmt.Println(cli.FormatWarning(fmt.Sprintf(
					"category %q is unusual for %s transactions", draft.Category, draft.Type)))
			}

			created, err := store.Add(ctx, draft)
			if err != nil {
				return err
			}

			rendered := report.FormatCurrency(created.Amount)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s) on %s",
				created.Description,
				cli.FormatAmount(rendered, created.Type == model.TypeIncome),
				created.Category,
				created.Date)))
			fmt.Println(cli.SubtleStyle.Render("id: " + created.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what the money was for (required)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "positive amount (required)")
	cmd.Flags().StringVarP(&txnType, "type", "t", string(model.TypeExpense), "INCOME or EXPENSE")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryOthers), "transaction category")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
