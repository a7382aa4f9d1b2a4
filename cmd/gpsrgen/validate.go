package main

import (
	"fmt"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the grammar against the lexicons",
		Long: `Reports unknown productions and placeholders, follow-up cycles and empty
lexicon categories. Exits non-zero when the grammar is unusable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lex, err := lexicon.FromDir(opts.lexiconDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range lexicon.Categories {
				fmt.Fprintf(out, "%-26s %d\n", c, len(lex.Values(c)))
			}

			report := grammar.Validate(grammar.DefaultGrammar(), lex)
			for _, w := range report.Warnings {
				fmt.Fprintf(out, "warning: %v\n", w)
			}
			for _, e := range report.Errors {
				fmt.Fprintf(out, "error: %v\n", e)
			}
			if err := report.Err(); err != nil {
				return fmt.Errorf("grammar has %d errors", len(report.Errors))
			}
			fmt.Fprintln(out, "grammar OK")
			return nil
		},
	}
}
