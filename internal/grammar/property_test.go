package grammar

import (
	"strings"
	"testing"

	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var categories = []Category{CategoryAny, CategoryPeople, CategoryObjects}

// TestStartCommandProperties covers any seed and any category: the first
// intent comes from the requested menu, entity spans are well formed, and
// the same seed gives the same example.
func TestStartCommandProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	lex := lexicon.Default()
	gr := DefaultGrammar()
	people := toSet(gr.Start.People)
	objects := toSet(gr.Start.Objects)

	generate := func(seed int64, idx int) (Example, bool) {
		g, err := NewGenerator(lex, WithSeed(seed))
		if err != nil {
			return Example{}, false
		}
		ex, err := g.StartCommand(categories[idx])
		return ex, err == nil
	}

	properties.Property("first intent belongs to the requested menu", prop.ForAll(
		func(seed int64, idx int) bool {
			ex, ok := generate(seed, idx)
			if !ok || len(ex.Intents) == 0 {
				return false
			}
			switch categories[idx] {
			case CategoryPeople:
				return people[ex.Intents[0]]
			case CategoryObjects:
				return objects[ex.Intents[0]]
			default:
				return people[ex.Intents[0]] || objects[ex.Intents[0]]
			}
		},
		gen.Int64(),
		gen.IntRange(0, len(categories)-1),
	))

	properties.Property("entity spans are balanced and typed", prop.ForAll(
		func(seed int64, idx int) bool {
			ex, ok := generate(seed, idx)
			if !ok {
				return false
			}
			opened := strings.Count(ex.Sentence, "[")
			if opened != strings.Count(ex.Sentence, "]") {
				return false
			}
			tags := entityTagRE.FindAllStringSubmatch(ex.Sentence, -1)
			if len(tags) != opened {
				return false
			}
			for _, tag := range tags {
				if !contains(EntityTypes, tag[1]) {
					return false
				}
			}
			return !strings.Contains(ex.Sentence, articleMarker)
		},
		gen.Int64(),
		gen.IntRange(0, len(categories)-1),
	))

	properties.Property("same seed gives the same example", prop.ForAll(
		func(seed int64, idx int) bool {
			a, okA := generate(seed, idx)
			b, okB := generate(seed, idx)
			return okA && okB && a.Sentence == b.Sentence && a.IntentKey() == b.IntentKey()
		},
		gen.Int64(),
		gen.IntRange(0, len(categories)-1),
	))

	properties.Property("plain text has no annotations", prop.ForAll(
		func(seed int64, idx int) bool {
			ex, ok := generate(seed, idx)
			if !ok {
				return false
			}
			plain := ex.PlainText()
			return !strings.ContainsAny(plain, "[]{}")
		},
		gen.Int64(),
		gen.IntRange(0, len(categories)-1),
	))

	properties.TestingRun(t)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
