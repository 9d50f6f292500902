package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/backup"
	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/ofx"
)

func importCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a backup or bank export",
		Long: `Import transactions from a file.

JSON backups (the export format) REPLACE the current snapshot wholesale.
OFX/QFX bank exports are APPENDED as new transactions, typed by amount
sign, with categories defaulted for later cleanup.

Examples:
  pennywise import finance_backup_2024-06-01.json
  pennywise import --format ofx ~/Downloads/statement.qfx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json":
				return runImportJSON(cmd, args[0], force)
			case "ofx":
				return runImportOFX(cmd, args[0])
			default:
				return fmt.Errorf("unsupported import format: %s", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "input format (json, ofx)")
	cmd.Flags().BoolVar(&force, "force", false, "replace the snapshot without asking")

	return cmd
}

func runImportJSON(cmd *cobra.Command, path string, force bool) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	txns, err := backup.Import(data)
	if err != nil {
		return common.NewUserError("import failed, please check the file format", err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	current, err := store.Transactions(ctx)
	if err != nil {
		return err
	}

	if len(current) > 0 && !force {
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"This will replace all %d existing transactions with %d from %s.",
			len(current), len(txns), path)))
		if !confirm("Continue?") {
			fmt.Println(cli.SubtleStyle.Render("Import canceled."))
			return nil
		}
	}

	// Records are accepted as-is; suspicious ones are only reported.
	bar := progressbar.Default(int64(len(txns)), "checking records")
	suspicious := 0
	for i := range txns {
		if err := txns[i].Validate(); err != nil {
			suspicious++
			common.LogInfo("Imported record looks malformed", common.Fields{
				"index": i,
				"error": err.Error(),
			})
		}
		_ = bar.Add(1)
	}

	if err := store.ReplaceAll(ctx, txns); err != nil {
		return err
	}

	msg := fmt.Sprintf("Imported %d transactions", len(txns))
	if suspicious > 0 {
		msg += fmt.Sprintf(" (%d look malformed, kept anyway)", suspicious)
	}
	fmt.Println(cli.FormatSuccess(msg))
	return nil
}

func runImportOFX(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	drafts, err := ofx.NewParser().Parse(f)
	if err != nil {
		return common.NewUserError("could not parse OFX file", err)
	}
	if len(drafts) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions found in file."))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.Default(int64(len(drafts)), "importing")
	added := 0
	for _, draft := range drafts {
		if _, err := store.Add(ctx, draft); err != nil {
			common.LogError(err, "Skipping OFX transaction", common.Fields{
				"description": draft.Description,
				"date":        draft.Date,
			})
		} else {
			added++
		}
		_ = bar.Add(1)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d of %d transactions from %s", added, len(drafts), path)))
	return nil
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
