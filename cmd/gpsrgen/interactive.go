package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/gpsr-commands/internal/export"
	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
	"github.com/Conceptual-Machines/gpsr-commands/internal/qr"
	"github.com/spf13/cobra"
)

const (
	defaultQRFile   = "command_qr.png"
	defaultYAMLFile = "NLU_YAML.yaml"
)

const menuPrompt = `'1': Any command,
'2': Command without manipulation,
'3': Command with manipulation,
'0': Generate QR code for the last command,
'-n [number]': run command multiple times,
's': Save YAML file
'q': Quit`

var repeatRE = regexp.MustCompile(`-n\s+(\d+)`)

func newInteractiveCmd(opts *options) *cobra.Command {
	var qrFile, yamlFile string

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Generate commands from a keyboard menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts, qrFile, yamlFile)
		},
	}
	cmd.Flags().StringVar(&qrFile, "qr-file", defaultQRFile, "File written by the '0' entry")
	cmd.Flags().StringVar(&yamlFile, "yaml-file", defaultYAMLFile, "File written by the 's' entry")
	return cmd
}

func runInteractive(cmd *cobra.Command, opts *options, qrFile, yamlFile string) error {
	gen, err := opts.newGenerator()
	if err != nil {
		return err
	}
	s := &session{
		gen:      gen,
		store:    export.NewMemoryStore(),
		out:      cmd.OutOrStdout(),
		qrFile:   qrFile,
		yamlFile: yamlFile,
	}
	return s.run(cmd.Context(), cmd.InOrStdin())
}

// session is one run of the interactive menu. It keeps every generated
// example for the YAML export and the most recent one for the QR entry.
type session struct {
	gen      *grammar.Generator
	store    *export.MemoryStore
	out      io.Writer
	qrFile   string
	yamlFile string

	last    grammar.Example
	hasLast bool
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, menuPrompt)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.handle(ctx, strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one menu line and reports whether the user asked to quit
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	if line == "" {
		fmt.Fprintln(s.out, menuPrompt)
		return false, nil
	}

	count := 1
	if m := repeatRE.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			count = n
		}
	}

	var category grammar.Category
	switch line[0] {
	case '1':
		category = grammar.CategoryAny
	case '2':
		category = grammar.CategoryPeople
	case '3':
		category = grammar.CategoryObjects
	case 'q':
		return true, nil
	case '0':
		return false, s.writeQR()
	case 's':
		return false, s.saveYAML(ctx)
	default:
		fmt.Fprintln(s.out, menuPrompt)
		return false, nil
	}

	for i := 0; i < count; i++ {
		ex, err := s.gen.StartCommand(category)
		if err != nil {
			s.reportFailure(category, err)
			continue
		}
		if err := s.store.Add(ctx, ex); err != nil {
			return false, err
		}
		s.last, s.hasLast = ex, true
		fmt.Fprintln(s.out, ex.Sentence)
	}
	return false, nil
}

// reportFailure logs a failed draw and keeps the menu running. Faults such
// as an empty lexicon category only hit some productions.
func (s *session) reportFailure(category grammar.Category, err error) {
	fields := logger.Fields{"category": string(category)}
	var gerr *grammar.GrammarError
	if errors.As(err, &gerr) {
		fields["kind"] = gerr.Kind.Error()
		fields["name"] = gerr.Name
	}
	logger.Warn("Command generation failed", fields)
	fmt.Fprintf(s.out, "Could not generate command: %v\n", err)
}

func (s *session) writeQR() error {
	if !s.hasLast {
		fmt.Fprintln(s.out, "No command generated yet")
		return nil
	}
	if err := qr.WriteFile(s.last.PlainText(), s.qrFile, true); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "QR code written to %s\n", s.qrFile)
	return nil
}

func (s *session) saveYAML(ctx context.Context) error {
	examples, err := s.store.All(ctx)
	if err != nil {
		return err
	}
	doc := export.Build(examples, export.DefaultLimit)
	if err := writeDocument(s.yamlFile, doc); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved %d intents to %s\n", len(doc.NLU), s.yamlFile)
	return nil
}
