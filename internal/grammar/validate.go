package grammar

import (
	"errors"
	"sort"
	"strings"

	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
)

// Report collects the faults found by Validate. Errors make the grammar
// unusable; warnings only fail the calls that hit them.
type Report struct {
	Errors   []error
	Warnings []error
}

// Err joins the errors, or returns nil
func (r Report) Err() error {
	return errors.Join(r.Errors...)
}

// Validate checks that every menu entry names a production, every
// continuation point exists, every placeholder resolves, the follow-up
// graph has no cycle, and every lexicon category in use has values.
func Validate(g *Grammar, lex lexicon.Lexicon) Report {
	var r Report
	known := knownNames()
	emptySeen := map[lexicon.Category]bool{}

	checkMenu := func(m Menu, table map[string]*Production, where string) {
		for _, id := range menuIDs(m) {
			if _, ok := table[id]; !ok {
				r.Errors = append(r.Errors, &GrammarError{Kind: ErrUnknownProduction, Name: id, Context: where, Suggestion: suggest(id, sortedIDs(table))})
			}
		}
	}
	checkMenu(g.Start, g.Commands, "top-level menu")
	for _, point := range sortedPoints(g.Followups) {
		checkMenu(g.Followups[point], g.Steps, string(point))
	}

	for _, table := range []map[string]*Production{g.Commands, g.Steps} {
		for _, id := range sortedIDs(table) {
			p := table[id]
			if p.parts == nil && p.Template != "" {
				parts, err := compileTemplate(p.Template)
				if err != nil {
					r.Errors = append(r.Errors, &GrammarError{Kind: ErrUnknownPlaceholder, Name: p.Template, Context: id + ": " + err.Error()})
					continue
				}
				p.parts = parts
			}
			if !p.Terminal() {
				if _, ok := g.Followups[p.Next]; !ok {
					r.Errors = append(r.Errors, &GrammarError{Kind: ErrUnknownProduction, Name: string(p.Next), Context: id})
				}
			}
			for _, part := range p.parts {
				if part.Slot == nil {
					continue
				}
				for _, name := range part.Slot.Names {
					if !knownName(name) {
						r.Errors = append(r.Errors, &GrammarError{Kind: ErrUnknownPlaceholder, Name: name, Context: id, Suggestion: suggest(name, known)})
						continue
					}
					if c, ok := referencedCategory(name); ok && len(lex.Values(c)) == 0 && !emptySeen[c] {
						emptySeen[c] = true
						r.Warnings = append(r.Warnings, &GrammarError{Kind: ErrEmptyLexicon, Name: string(c), Context: id})
					}
				}
			}
		}
	}

	if cycle := findCycle(g); cycle != nil {
		r.Errors = append(r.Errors, &GrammarError{Kind: ErrGrammarCycle, Name: string(cycle[0]), Context: joinPoints(cycle)})
	}
	return r
}

// findCycle walks continuation points depth-first and returns the first
// cycle found, as the list of points along it.
func findCycle(g *Grammar) []Continuation {
	const (
		unvisited = iota
		active
		done
	)
	state := map[Continuation]int{}
	var path []Continuation
	var cycle []Continuation

	var visit func(p Continuation) bool
	visit = func(p Continuation) bool {
		switch state[p] {
		case active:
			for i, q := range path {
				if q == p {
					cycle = append(append([]Continuation(nil), path[i:]...), p)
					break
				}
			}
			return true
		case done:
			return false
		}
		state[p] = active
		path = append(path, p)
		for _, id := range menuIDs(g.Followups[p]) {
			step, ok := g.Steps[id]
			if !ok || step.Terminal() {
				continue
			}
			if _, ok := g.Followups[step.Next]; !ok {
				continue
			}
			if visit(step.Next) {
				return true
			}
		}
		path = path[:len(path)-1]
		state[p] = done
		return false
	}

	for _, p := range sortedPoints(g.Followups) {
		if visit(p) {
			return cycle
		}
	}
	return nil
}

func menuIDs(m Menu) []string {
	ids := make([]string, 0, len(m.All)+len(m.People)+len(m.Objects))
	ids = append(ids, m.All...)
	ids = append(ids, m.People...)
	return append(ids, m.Objects...)
}

func sortedIDs(table map[string]*Production) []string {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedPoints(m map[Continuation]Menu) []Continuation {
	points := make([]Continuation, 0, len(m))
	for p := range m {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	return points
}

func joinPoints(points []Continuation) string {
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = string(p)
	}
	return strings.Join(names, " -> ")
}
