package grammar

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/Conceptual-Machines/gpsr-commands/internal/lexicon"
)

const verbSuffix = "Verb"

// Entity type names carried by entity tags
const (
	EntityPlacement            = "location_placement"
	EntityRoom                 = "room"
	EntityLocation             = "location"
	EntityGesturePerson        = "gesture_person"
	EntityPosePerson           = "pose_person"
	EntityPersonName           = "person_name"
	EntityGesturePersonPlural  = "gesture_person_plural"
	EntityPosePersonPlural     = "pose_person_plural"
	EntityPersonInfo           = "info_person"
	EntityObject               = "object"
	EntityObjectCategory       = "object_category"
	EntityObjectCategoryPlural = "object_category_plural"
	EntityObjectCompare        = "object_compare"
	EntityTalk                 = "talk"
	EntityQuestion             = "question"
	EntityCloth                = "cloth"
	EntityClothes              = "clothes"
)

// EntityTypes lists every entity type the grammar can emit
var EntityTypes = []string{
	EntityPlacement, EntityRoom, EntityLocation, EntityGesturePerson, EntityPosePerson,
	EntityPersonName, EntityGesturePersonPlural, EntityPosePersonPlural, EntityPersonInfo,
	EntityObject, EntityObjectCategory, EntityObjectCategoryPlural, EntityObjectCompare,
	EntityTalk, EntityQuestion, EntityCloth, EntityClothes,
}

type slotKind int

const (
	kindPhrase slotKind = iota
	kindLexicon
	kindPrepLexicon
	kindConnector
	kindArticle
)

// slotDef describes how a named placeholder resolves. Verbs and
// prepositions are looked up by name pattern instead of listed here.
type slotDef struct {
	kind     slotKind
	entity   string
	phrases  []string
	category lexicon.Category
	prep     string
}

var slotTable = map[string]slotDef{
	"plcmtLoc":  {kind: kindLexicon, entity: EntityPlacement, category: lexicon.PlacementLocation},
	"plcmtLoc2": {kind: kindLexicon, entity: EntityPlacement, category: lexicon.PlacementLocation},
	"room":      {kind: kindLexicon, entity: EntityRoom, category: lexicon.Room},
	"room2":     {kind: kindLexicon, entity: EntityRoom, category: lexicon.Room},
	"loc":       {kind: kindLexicon, entity: EntityLocation, category: lexicon.Location},
	"loc2":      {kind: kindLexicon, entity: EntityLocation, category: lexicon.Location},
	"name":      {kind: kindLexicon, entity: EntityPersonName, category: lexicon.PersonName},
	"obj":       {kind: kindLexicon, entity: EntityObject, category: lexicon.Object},
	"singCat":   {kind: kindLexicon, entity: EntityObjectCategory, category: lexicon.ObjectCategorySingular},
	"plurCat":   {kind: kindLexicon, entity: EntityObjectCategoryPlural, category: lexicon.ObjectCategoryPlural},

	"inRoom": {kind: kindPrepLexicon, entity: EntityRoom, category: lexicon.Room, prep: "inLocPrep"},
	"atLoc":  {kind: kindPrepLexicon, entity: EntityLocation, category: lexicon.Location, prep: "atLocPrep"},

	"gestPers":     {kind: kindPhrase, entity: EntityGesturePerson, phrases: gesturePersons},
	"posePers":     {kind: kindPhrase, entity: EntityPosePerson, phrases: posePersons},
	"gestPersPlur": {kind: kindPhrase, entity: EntityGesturePersonPlural, phrases: gesturePersonsPlural},
	"posePersPlur": {kind: kindPhrase, entity: EntityPosePersonPlural, phrases: posePersonsPlural},
	"persInfo":     {kind: kindPhrase, entity: EntityPersonInfo, phrases: personInfos},
	"objComp":      {kind: kindPhrase, entity: EntityObjectCompare, phrases: objectComparisons},
	"talk":         {kind: kindPhrase, entity: EntityTalk, phrases: talkTopics},
	"question":     {kind: kindPhrase, entity: EntityQuestion, phrases: questions},
	"colorClothe":  {kind: kindPhrase, entity: EntityCloth, phrases: colorGarments},
	"colorClothes": {kind: kindPhrase, entity: EntityClothes, phrases: colorGarmentsPlural},

	"connector": {kind: kindConnector},
	articleName: {kind: kindArticle},
}

// knownName reports whether a single (non-alternated) placeholder name resolves
func knownName(name string) bool {
	if _, ok := slotTable[name]; ok {
		return true
	}
	if _, ok := prepSynonyms[name]; ok {
		return true
	}
	_, ok := verbSynonyms[strings.TrimSuffix(name, verbSuffix)]
	return ok && strings.HasSuffix(name, verbSuffix)
}

// knownNames lists every resolvable placeholder name, sorted
func knownNames() []string {
	names := make([]string, 0, len(slotTable)+len(prepSynonyms)+len(verbSynonyms))
	for n := range slotTable {
		names = append(names, n)
	}
	for n := range prepSynonyms {
		names = append(names, n)
	}
	for v := range verbSynonyms {
		names = append(names, v+verbSuffix)
	}
	sort.Strings(names)
	return names
}

// referencedCategory returns the lexicon category a name draws from, if any
func referencedCategory(name string) (lexicon.Category, bool) {
	def, ok := slotTable[name]
	if !ok || (def.kind != kindLexicon && def.kind != kindPrepLexicon) {
		return "", false
	}
	return def.category, true
}

type resolver struct {
	lex lexicon.Lexicon
	rng *rand.Rand
}

// resolve turns a slot into its surface text. The alternation choice is a
// fresh draw on every call.
func (r *resolver) resolve(slot Slot) (string, error) {
	name := slot.Names[0]
	if len(slot.Names) > 1 {
		name = slot.Names[r.rng.IntN(len(slot.Names))]
	}

	if strings.HasSuffix(name, verbSuffix) {
		if synonyms, ok := verbSynonyms[strings.TrimSuffix(name, verbSuffix)]; ok {
			return r.pick(synonyms), nil
		}
	}
	if synonyms, ok := prepSynonyms[name]; ok {
		return r.pick(synonyms), nil
	}

	def, ok := slotTable[name]
	if !ok {
		return "", &GrammarError{Kind: ErrUnknownPlaceholder, Name: name, Context: slot.Token, Suggestion: suggest(name, knownNames())}
	}

	switch def.kind {
	case kindConnector:
		return r.pick(connectors), nil
	case kindArticle:
		return articleMarker, nil
	case kindPhrase:
		return annotate(r.pick(def.phrases), def.entity, slot.Role), nil
	case kindLexicon:
		value, err := r.lexiconValue(def.category, name)
		if err != nil {
			return "", err
		}
		return annotate(value, def.entity, slot.Role), nil
	case kindPrepLexicon:
		prep := r.pick(prepSynonyms[def.prep])
		value, err := r.lexiconValue(def.category, name)
		if err != nil {
			return "", err
		}
		return prep + " the " + annotate(value, def.entity, slot.Role), nil
	}
	return "", &GrammarError{Kind: ErrUnknownPlaceholder, Name: name, Context: slot.Token}
}

func (r *resolver) lexiconValue(c lexicon.Category, name string) (string, error) {
	values := r.lex.Values(c)
	if len(values) == 0 {
		return "", &GrammarError{Kind: ErrEmptyLexicon, Name: string(c), Context: name}
	}
	return r.pick(values), nil
}

func (r *resolver) pick(values []string) string {
	return values[r.rng.IntN(len(values))]
}

// annotate renders an entity span: [value]{"entity": "type","role": "source"}
func annotate(value, entity string, role Role) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(value)
	b.WriteString(`]{"entity": "`)
	b.WriteString(entity)
	b.WriteString(`"`)
	if role != RoleNone {
		b.WriteString(`,"role": "`)
		b.WriteString(string(role))
		b.WriteString(`"`)
	}
	b.WriteString("}")
	return b.String()
}
