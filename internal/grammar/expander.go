package grammar

import "fmt"

// Category filters the top-level menu
type Category string

const (
	CategoryAny     Category = ""
	CategoryPeople  Category = "people"
	CategoryObjects Category = "objects"
)

// ParseCategory accepts "", "any", "people" and "objects"
func ParseCategory(s string) (Category, error) {
	switch s {
	case "", "any", "none":
		return CategoryAny, nil
	case string(CategoryPeople):
		return CategoryPeople, nil
	case string(CategoryObjects):
		return CategoryObjects, nil
	}
	return CategoryAny, fmt.Errorf("invalid category %q: expected people, objects or any", s)
}

// DefaultMaxDepth caps follow-up recursion
const DefaultMaxDepth = 10

// expansion is a fully expanded template: parts and the intents chosen for it
type expansion struct {
	parts   []Part
	intents []string
}

func (e *expansion) append(p *Production) {
	e.parts = append(e.parts, p.parts...)
	e.intents = append(e.intents, p.ID)
}

// choices returns the identifiers a menu offers for a category. With no
// category filter a split menu picks people or objects with equal odds.
func (g *Generator) choices(m Menu, c Category) []string {
	if len(m.All) > 0 {
		return m.All
	}
	switch c {
	case CategoryPeople:
		return m.People
	case CategoryObjects:
		return m.Objects
	}
	if g.rng.Float64() > 0.5 {
		return m.People
	}
	return m.Objects
}

func (g *Generator) expandStart(c Category) (*expansion, error) {
	ids := g.choices(g.grammar.Start, c)
	if len(ids) == 0 {
		return nil, &GrammarError{Kind: ErrUnknownProduction, Name: string(c), Context: "empty top-level menu"}
	}
	id := ids[g.rng.IntN(len(ids))]
	prod, ok := g.grammar.Commands[id]
	if !ok {
		return nil, &GrammarError{Kind: ErrUnknownProduction, Name: id, Context: "top-level menu"}
	}

	exp := &expansion{}
	exp.append(prod)
	if prod.Terminal() {
		return exp, nil
	}
	if err := g.expandFollowup(exp, prod.Next, c, 1); err != nil {
		return nil, err
	}
	return exp, nil
}

// expandFollowup appends a follow-up chosen from the continuation point's
// menu, recursing while the chosen step is itself non-terminal.
func (g *Generator) expandFollowup(exp *expansion, point Continuation, c Category, depth int) error {
	if depth > g.maxDepth {
		return &GrammarError{Kind: ErrGrammarCycle, Name: string(point), Context: fmt.Sprintf("depth %d", depth)}
	}
	menu, ok := g.grammar.Followups[point]
	if !ok {
		return &GrammarError{Kind: ErrUnknownProduction, Name: string(point), Context: "continuation point"}
	}
	ids := g.choices(menu, c)
	if len(ids) == 0 {
		return &GrammarError{Kind: ErrUnknownProduction, Name: string(point), Context: "empty follow-up menu"}
	}
	id := ids[g.rng.IntN(len(ids))]
	step, ok := g.grammar.Steps[id]
	if !ok {
		return &GrammarError{Kind: ErrUnknownProduction, Name: id, Context: string(point)}
	}

	exp.parts = append(exp.parts, literal(" "))
	exp.append(step)
	if step.Terminal() {
		return nil
	}
	return g.expandFollowup(exp, step.Next, c, depth+1)
}
