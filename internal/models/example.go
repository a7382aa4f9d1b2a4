package models

import (
	"strings"
	"time"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
)

const intentSeparator = "+"

// Example is a generated command persisted for NLU export
type Example struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Sentence  string    `gorm:"type:text;not null" json:"sentence"`
	IntentKey string    `gorm:"not null;index" json:"intent"`
	Category  string    `gorm:"index" json:"category"`
	RequestID string    `gorm:"index" json:"request_id,omitempty"`
}

// NewExample converts a generated example into its stored form
func NewExample(ex grammar.Example) *Example {
	return &Example{
		Sentence:  ex.Sentence,
		IntentKey: ex.IntentKey(),
		Category:  string(ex.Category),
	}
}

// ToGrammar converts back to a generated example
func (e *Example) ToGrammar() grammar.Example {
	var intents []string
	if e.IntentKey != "" {
		intents = strings.Split(e.IntentKey, intentSeparator)
	}
	return grammar.Example{
		Sentence: e.Sentence,
		Intents:  intents,
		Category: grammar.Category(e.Category),
	}
}
