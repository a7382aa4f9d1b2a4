package main

import (
	"fmt"
	"os"

	"github.com/Conceptual-Machines/gpsr-commands/internal/export"
	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		category string
		count    int
		limit    int
		out      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate commands and write an NLU YAML training file",
		Example: `  gpsrgen export -n 1000 --limit 15 --out nlu.yaml
  gpsrgen export --category people -n 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := grammar.ParseCategory(category)
			if err != nil {
				return err
			}
			gen, err := opts.newGenerator()
			if err != nil {
				return err
			}

			examples := make([]grammar.Example, 0, count)
			for i := 0; i < count; i++ {
				ex, err := gen.StartCommand(c)
				if err != nil {
					return err
				}
				examples = append(examples, ex)
			}
			doc := export.Build(examples, limit)

			if out == "" {
				return export.Write(cmd.OutOrStdout(), doc)
			}
			if err := writeDocument(out, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d intents to %s\n", len(doc.NLU), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Command category: people, objects or empty for any")
	cmd.Flags().IntVarP(&count, "count", "n", 100, "Number of commands to generate")
	cmd.Flags().IntVar(&limit, "limit", export.DefaultLimit, "Maximum examples per intent")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func writeDocument(path string, doc export.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return export.Write(f, doc)
}
