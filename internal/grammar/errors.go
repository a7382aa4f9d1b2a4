package grammar

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Grammar-authoring and data-authoring faults. Match with errors.Is.
var (
	ErrUnknownProduction  = errors.New("unknown production")
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	ErrEmptyLexicon       = errors.New("empty lexicon")
	ErrGrammarCycle       = errors.New("grammar cycle")
)

// GrammarError names the element that caused a fault
type GrammarError struct {
	Kind       error
	Name       string
	Context    string // production or continuation point the fault was found in
	Suggestion string
}

func (e *GrammarError) Error() string {
	msg := fmt.Sprintf("%v: %q", e.Kind, e.Name)
	if e.Context != "" {
		msg += " in " + e.Context
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *GrammarError) Unwrap() error {
	return e.Kind
}

const maxSuggestionDistance = 3

// suggest returns the closest known name, or "" if none is close enough
func suggest(name string, known []string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist || (d == bestDist && k < best) {
			best, bestDist = k, d
		}
	}
	if bestDist > maxSuggestionDistance {
		return ""
	}
	return best
}
