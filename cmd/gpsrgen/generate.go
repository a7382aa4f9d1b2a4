package main

import (
	"fmt"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/qr"
	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		category string
		count    int
		plain    bool
		qrFile   string
		caption  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated commands",
		Long: `Generates commands and prints one per line. Each line holds the intent key
followed by a tab and the annotated sentence.`,
		Example: `  gpsrgen generate --category objects -n 10
  gpsrgen generate --plain --qr command.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := grammar.ParseCategory(category)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			gen, err := opts.newGenerator()
			if err != nil {
				return err
			}

			var last grammar.Example
			for i := 0; i < count; i++ {
				ex, err := gen.StartCommand(c)
				if err != nil {
					return err
				}
				sentence := ex.Sentence
				if plain {
					sentence = ex.PlainText()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ex.IntentKey(), sentence)
				last = ex
			}

			if qrFile != "" {
				if err := qr.WriteFile(last.PlainText(), qrFile, caption); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "QR code written to %s\n", qrFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Command category: people, objects or empty for any")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of commands")
	cmd.Flags().BoolVar(&plain, "plain", false, "Strip entity annotations")
	cmd.Flags().StringVar(&qrFile, "qr", "", "Write a QR code PNG of the last command to this file")
	cmd.Flags().BoolVar(&caption, "qr-caption", true, "Print the command under the QR code")
	return cmd
}
