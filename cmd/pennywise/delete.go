package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction by id",
		Long: `Delete the transaction with the given identifier. Deletion is permanent;
there is no soft delete or undo. Deleting an unknown id does nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Delete(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s (if it existed)", args[0])))
			return nil
		},
	}
}
