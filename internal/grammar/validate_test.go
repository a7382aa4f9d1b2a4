package grammar

import (
	"errors"
	"testing"

	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultGrammar(t *testing.T) {
	report := Validate(DefaultGrammar(), lexicon.Default())
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.NoError(t, report.Err())
}

func TestValidate_EmptyLexiconIsWarning(t *testing.T) {
	lex := testLexicon()
	lex[lexicon.Room] = nil
	lex[lexicon.PersonName] = []string{}

	report := Validate(DefaultGrammar(), lex)
	assert.NoError(t, report.Err())
	require.Len(t, report.Warnings, 2)
	for _, w := range report.Warnings {
		assert.True(t, errors.Is(w, ErrEmptyLexicon))
	}
}

func TestValidate_UnknownPlaceholder(t *testing.T) {
	gr := DefaultGrammar()
	gr.Steps["deliverObjToMe"] = &Production{ID: "deliverObjToMe", Template: "{delivrVerb} it to me"}
	require.NoError(t, gr.Compile())

	report := Validate(gr, testLexicon())
	require.Len(t, report.Errors, 1)
	assert.True(t, errors.Is(report.Errors[0], ErrUnknownPlaceholder))

	var gerr *GrammarError
	require.True(t, errors.As(report.Errors[0], &gerr))
	assert.Equal(t, "delivrVerb", gerr.Name)
	assert.Equal(t, "deliverObjToMe", gerr.Context)
	assert.Equal(t, "deliverVerb", gerr.Suggestion)
}

func TestValidate_UnknownAlternative(t *testing.T) {
	gr := DefaultGrammar()
	gr.Steps["followPrsToRoom"] = &Production{ID: "followPrsToRoom", Template: "{followVerb} them to the {loc2_hallDEST}"}

	report := Validate(gr, testLexicon())
	require.Len(t, report.Errors, 1)
	assert.True(t, errors.Is(report.Errors[0], ErrUnknownPlaceholder))
}

func TestValidate_UnknownProduction(t *testing.T) {
	gr := DefaultGrammar()
	gr.Start.Objects = append(gr.Start.Objects, "takeObjFromPlcmnt")
	gr.Followups[HasObj] = Menu{All: []string{"placeObjOnPlcmt", "throwObj"}}

	report := Validate(gr, testLexicon())
	require.Len(t, report.Errors, 2)
	for _, err := range report.Errors {
		assert.True(t, errors.Is(err, ErrUnknownProduction))
	}

	var gerr *GrammarError
	require.True(t, errors.As(report.Errors[0], &gerr))
	assert.Equal(t, "takeObjFromPlcmt", gerr.Suggestion)

	_, err := NewGenerator(testLexicon(), WithGrammar(gr))
	assert.True(t, errors.Is(err, ErrUnknownProduction))
}

func TestValidate_UnknownContinuation(t *testing.T) {
	gr := DefaultGrammar()
	gr.Commands["goToLoc"].Next = "atRoom"

	report := Validate(gr, testLexicon())
	require.Len(t, report.Errors, 1)
	assert.True(t, errors.Is(report.Errors[0], ErrUnknownProduction))
}

func TestValidate_MalformedTemplate(t *testing.T) {
	gr := DefaultGrammar()
	gr.Steps["followPrs"] = &Production{ID: "followPrs", Template: "{followVerb them"}

	report := Validate(gr, testLexicon())
	require.Len(t, report.Errors, 1)
	assert.True(t, errors.Is(report.Errors[0], ErrUnknownPlaceholder))
}

func TestValidate_Cycle(t *testing.T) {
	gr := DefaultGrammar()
	gr.Steps["placeObjOnPlcmt"].Next = AtLoc

	report := Validate(gr, testLexicon())
	require.Len(t, report.Errors, 1)
	assert.True(t, errors.Is(report.Errors[0], ErrGrammarCycle))
	assert.Contains(t, report.Errors[0].Error(), "->")
}

func TestDescribe(t *testing.T) {
	d := DefaultGrammar().Describe()
	assert.Contains(t, d.People, "greetNameInRm")
	assert.Contains(t, d.Objects, "takeObjFromPlcmt")
	assert.Equal(t, []string{"findPrs", "meetName", "findObj"}, d.Followups[string(AtLoc)])
	assert.Equal(t, []string{"takeObj"}, d.Followups[string(FoundObj)])
}
