package export

import (
	"io"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"gopkg.in/yaml.v3"
)

// DefaultLimit caps the examples kept per intent
const DefaultLimit = 15

// IntentExamples is one NLU entry: an intent key and its example sentences
type IntentExamples struct {
	Intent   string   `yaml:"intent" json:"intent"`
	Examples []string `yaml:"examples" json:"examples"`
}

// Document is the NLU training file
type Document struct {
	NLU []IntentExamples `yaml:"nlu" json:"nlu"`
}

// Build groups examples by intent key in first-seen order, drops duplicate
// sentences and keeps at most limit examples per intent. A limit of zero or
// less uses DefaultLimit.
func Build(examples []grammar.Example, limit int) Document {
	if limit <= 0 {
		limit = DefaultLimit
	}

	doc := Document{NLU: []IntentExamples{}}
	index := map[string]int{}
	seen := map[string]map[string]bool{}

	for _, ex := range examples {
		key := ex.IntentKey()
		i, ok := index[key]
		if !ok {
			i = len(doc.NLU)
			index[key] = i
			seen[key] = map[string]bool{}
			doc.NLU = append(doc.NLU, IntentExamples{Intent: key, Examples: []string{}})
		}
		if seen[key][ex.Sentence] || len(doc.NLU[i].Examples) >= limit {
			continue
		}
		seen[key][ex.Sentence] = true
		doc.NLU[i].Examples = append(doc.NLU[i].Examples, ex.Sentence)
	}
	return doc
}

// Marshal renders the document as YAML
func (d Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Write encodes the document as YAML to w
func Write(w io.Writer, d Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// Parse reads a document written by Write
func Parse(r io.Reader) (Document, error) {
	var d Document
	err := yaml.NewDecoder(r).Decode(&d)
	return d, err
}
