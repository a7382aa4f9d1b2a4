package grammar

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
)

// Example is one generated command: the annotated sentence and the
// identifiers of every production chosen, in selection order.
type Example struct {
	Sentence string   `json:"sentence"`
	Intents  []string `json:"intents"`
	Category Category `json:"category"`
}

// IntentKey joins the intents with "+", the NLU intent name of the example
func (e Example) IntentKey() string {
	return strings.Join(e.Intents, "+")
}

var entitySpanRE = regexp.MustCompile(`\[([^\]]*)\]\{[^}]*\}`)

// PlainText returns the sentence with entity annotations removed
func (e Example) PlainText() string {
	return entitySpanRE.ReplaceAllString(e.Sentence, "$1")
}

// Generator expands the grammar against a lexicon. It is safe for
// concurrent use; calls are serialised on the random source.
type Generator struct {
	grammar  *Grammar
	maxDepth int

	mu  sync.Mutex
	rng *rand.Rand
	res *resolver
}

// Option configures a Generator
type Option func(*Generator)

// WithSeed makes generation deterministic
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = seededRNG(seed)
	}
}

// WithRand uses the given random source
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithGrammar replaces the default grammar. The grammar must be compiled.
func WithGrammar(gr *Grammar) Option {
	return func(g *Generator) {
		g.grammar = gr
	}
}

// WithMaxDepth overrides the follow-up recursion cap
func WithMaxDepth(depth int) Option {
	return func(g *Generator) {
		g.maxDepth = depth
	}
}

// NewGenerator validates the grammar against the lexicon and returns a
// generator. Empty lexicon categories are logged, not rejected.
func NewGenerator(lex lexicon.Lexicon, opts ...Option) (*Generator, error) {
	g := &Generator{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(g)
	}
	if g.grammar == nil {
		g.grammar = DefaultGrammar()
	}
	if g.rng == nil {
		g.rng = seededRNG(time.Now().UnixNano())
	}
	g.res = &resolver{lex: lex, rng: g.rng}

	report := Validate(g.grammar, lex)
	for _, w := range report.Warnings {
		logger.Warn("Grammar references an empty lexicon category", logger.Fields{"warning": w.Error()})
	}
	if err := report.Err(); err != nil {
		return nil, fmt.Errorf("invalid grammar: %w", err)
	}
	return g, nil
}

// Grammar returns the grammar the generator expands
func (g *Generator) Grammar() *Grammar {
	return g.grammar
}

// StartCommand generates one command. The first intent is the top-level
// command; follow-up intents come after it in order.
func (g *Generator) StartCommand(c Category) (Example, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	exp, err := g.expandStart(c)
	if err != nil {
		return Example{}, err
	}
	sentence, err := g.assemble(exp.parts)
	if err != nil {
		return Example{}, fmt.Errorf("%s: %w", strings.Join(exp.intents, "+"), err)
	}
	return Example{Sentence: sentence, Intents: exp.intents, Category: c}, nil
}

// Resolve resolves a single placeholder token such as "roomSRC". The
// article token "art" is returned unresolved as "{art}".
func (g *Generator) Resolve(token string) (string, error) {
	slot, err := ParseSlot(token)
	if err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.res.resolve(slot)
}

func seededRNG(seed int64) *rand.Rand {
	// #nosec G404 -- training data generation, not security sensitive
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
