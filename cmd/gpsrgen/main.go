// Command gpsrgen generates annotated GPSR robot commands from the command
// grammar and the competition lexicons.
//
// Usage:
//
//	gpsrgen generate --category people -n 5
//	gpsrgen export -n 500 --out nlu.yaml
//	gpsrgen validate --lexicon-dir ./data
//	gpsrgen interactive
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand
type options struct {
	lexiconDir string
	seed       int64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gpsrgen",
		Short: "Generate annotated GPSR robot commands",
		Long: `gpsrgen expands the GPSR command grammar against the competition lexicons
(names, locations, rooms and objects) and prints commands with entity
annotations for NLU training.

Run without arguments to start the interactive menu.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts, defaultQRFile, defaultYAMLFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.lexiconDir, "lexicon-dir", os.Getenv("LEXICON_DIR"),
		"Directory with names/, maps/ and objects/ markdown files (default: embedded data)")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Random seed for reproducible output (0: time-based)")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newInteractiveCmd(opts))
	return rootCmd
}

// newGenerator loads the lexicons and builds a generator from the shared flags
func (o *options) newGenerator() (*grammar.Generator, error) {
	lex, err := lexicon.FromDir(o.lexiconDir)
	if err != nil {
		return nil, err
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return grammar.NewGenerator(lex, grammar.WithSeed(seed))
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
