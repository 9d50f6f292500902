package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/cli"
)

// localeNames maps supported tags to display names for the confirmation
// message. Other tags are stored as-is; the insight advisor falls back to
// English for anything it does not recognize.
var localeNames = map[string]string{
	"en": "English",
	"zh": "中文",
}

func localeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locale [tag]",
		Short: "Show or set the display language",
		Long: `Without an argument, print the stored display language. With one, store it.
The locale picks the language the AI advisor answers in.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(args) == 0 {
				tag, err := store.Locale(ctx)
				if err != nil {
					return err
				}
				name := localeNames[tag]
				if name == "" {
					name = tag
				}
				fmt.Printf("%s (%s)\n", tag, name)
				return nil
			}

			tag := args[0]
			if _, known := localeNames[tag]; !known {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%q is not a known locale; storing it anyway", tag)))
			}
			if err := store.SetLocale(ctx, tag); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Locale set to " + tag))
			return nil
		},
	}
}
