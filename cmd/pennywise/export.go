package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/backup"
	"github.com/Veraticus/pennywise/internal/cli"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export the snapshot to a JSON backup file",
		Long: `Write the full transaction snapshot to a pretty-printed JSON file.
Without an argument the file is named finance_backup_<today>.json in the
current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			data, err := backup.Export(txns)
			if err != nil {
				return err
			}

			path := backup.Filename(time.Now())
			if len(args) == 1 {
				path = args[0]
			}

			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(txns), path)))
			return nil
		},
	}
}
