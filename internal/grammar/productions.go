package grammar

import "fmt"

// Continuation names a follow-up menu a non-terminal production delegates to
type Continuation string

const (
	AtLoc     Continuation = "atLoc"
	HasObj    Continuation = "hasObj"
	FoundPers Continuation = "foundPers"
	FoundObj  Continuation = "foundObj"
)

// Production maps a command identifier to its template. A production with
// a Next continuation ends in a dangling connective and is followed by a
// follow-up expansion.
type Production struct {
	ID       string
	Template string
	Next     Continuation

	parts []Part
}

// Terminal reports whether the production ends the sentence
func (p Production) Terminal() bool {
	return p.Next == ""
}

// Menu lists command identifiers. Category-agnostic menus use All; the
// others split into people and object commands.
type Menu struct {
	People  []string
	Objects []string
	All     []string
}

// Grammar is the full production set. Top-level commands and follow-up
// commands live in separate tables, so identifiers may collide.
type Grammar struct {
	Start     Menu
	Commands  map[string]*Production
	Followups map[Continuation]Menu
	Steps     map[string]*Production
}

// Compile parses every template into parts
func (g *Grammar) Compile() error {
	for _, table := range []map[string]*Production{g.Commands, g.Steps} {
		for id, p := range table {
			parts, err := compileTemplate(p.Template)
			if err != nil {
				return fmt.Errorf("production %s: %w", id, err)
			}
			p.parts = parts
		}
	}
	return nil
}

// Description is a JSON-friendly summary of the grammar menus
type Description struct {
	People    []string            `json:"people"`
	Objects   []string            `json:"objects"`
	Followups map[string][]string `json:"followups"`
}

// Describe summarises the top-level and follow-up menus
func (g *Grammar) Describe() Description {
	d := Description{
		People:    append([]string(nil), g.Start.People...),
		Objects:   append([]string(nil), g.Start.Objects...),
		Followups: make(map[string][]string, len(g.Followups)),
	}
	for point, menu := range g.Followups {
		d.Followups[string(point)] = menuIDs(menu)
	}
	return d
}

func productions(ps ...*Production) map[string]*Production {
	out := make(map[string]*Production, len(ps))
	for _, p := range ps {
		out[p.ID] = p
	}
	return out
}

// DefaultGrammar returns a freshly compiled copy of the GPSR command grammar
func DefaultGrammar() *Grammar {
	g := &Grammar{
		Start: Menu{
			// HRI and people perception commands
			People: []string{
				"goToLoc", "findPrsInRoom", "meetPrsAtBeac", "countPrsInRoom", "tellPrsInfoInLoc",
				"talkInfoToGestPrsInRoom", "answerToGestPrsInRoom", "followNameFromBeacToRoom",
				"guideNameFromBeacToBeac", "guidePrsFromBeacToBeac", "guideClothPrsFromBeacToBeac",
				"greetClothDscInRm", "greetNameInRm", "meetNameAtLocThenFindInRm", "countClothPrsInRoom",
				"countClothPrsInRoom", "tellPrsInfoAtLocToPrsAtLoc", "followPrsAtLoc",
			},
			// Object manipulation and perception commands
			Objects: []string{
				"goToLoc", "takeObjFromPlcmt", "findObjInRoom", "countObjOnPlcmt", "tellObjPropOnPlcmt",
				"bringMeObjFromPlcmt", "tellCatPropOnPlcmt",
			},
		},
		Commands: productions(
			&Production{ID: "goToLoc", Template: "{goVerb} {toLocPrep} the {loc_roomSRC} then", Next: AtLoc},
			&Production{ID: "takeObjFromPlcmt", Template: "{takeVerb} {art} {obj_singCat} {fromLocPrep} the {plcmtLocSRC} and", Next: HasObj},
			&Production{ID: "findPrsInRoom", Template: "{findVerb} a {gestPers_posePers} {inLocPrep} the {roomSRC} and", Next: FoundPers},
			&Production{ID: "findObjInRoom", Template: "{findVerb} {art} {obj_singCat} {inLocPrep} the {roomSRC} then", Next: FoundObj},
			&Production{ID: "meetPrsAtBeac", Template: "{meetVerb} {name} {inLocPrep} the {room} and", Next: FoundPers},
			&Production{ID: "countObjOnPlcmt", Template: "{countVerb} {plurCat} there are {onLocPrep} the {plcmtLocSRC}"},
			&Production{ID: "countPrsInRoom", Template: "{countVerb} {gestPersPlur_posePersPlur} are {inLocPrep} the {roomSRC}"},
			&Production{ID: "tellPrsInfoInLoc", Template: "{tellVerb} me the {persInfo} of the person {inRoom_atLocSRC}"},
			&Production{ID: "tellObjPropOnPlcmt", Template: "{tellVerb} me what is the {objComp} object {onLocPrep} the {plcmtLocSRC}"},
			&Production{ID: "talkInfoToGestPrsInRoom", Template: "{talkVerb} {talk} {talkPrep} the {gestPers} {inLocPrep} the {roomSRC}"},
			&Production{ID: "answerToGestPrsInRoom", Template: "{answerVerb} the {question} {ofPrsPrep} the {gestPers} {inLocPrep} the {roomSRC}"},
			&Production{ID: "followNameFromBeacToRoom", Template: "{followVerb} {name} {fromLocPrep} the {locSRC} {toLocPrep} the {roomDEST}"},
			&Production{ID: "guideNameFromBeacToBeac", Template: "{guideVerb} {name} {fromLocPrep} the {locSRC} {toLocPrep} the {loc_roomDEST}"},
			&Production{ID: "guidePrsFromBeacToBeac", Template: "{guideVerb} the {gestPers_posePers} {fromLocPrep} the {locSRC} {toLocPrep} the {loc_roomDEST}"},
			&Production{ID: "guideClothPrsFromBeacToBeac", Template: "{guideVerb} the person wearing a {colorClothe} {fromLocPrep} the {locSRC} {toLocPrep} the {loc_roomDEST}"},
			&Production{ID: "bringMeObjFromPlcmt", Template: "{bringVerb} me {art} {obj} {fromLocPrep} the {plcmtLocSRC}"},
			&Production{ID: "tellCatPropOnPlcmt", Template: "{tellVerb} me what is the {objComp} {singCat} {onLocPrep} the {plcmtLocSRC}"},
			&Production{ID: "greetClothDscInRm", Template: "{greetVerb} the person wearing {art} {colorClothe} {inLocPrep} the {roomSRC} and", Next: FoundPers},
			&Production{ID: "greetNameInRm", Template: "{greetVerb} {name} {inLocPrep} the {room} and", Next: FoundPers},
			&Production{ID: "meetNameAtLocThenFindInRm", Template: "{meetVerb} {name} {atLocPrep} the {locSRC} then {findVerb} them {inLocPrep} the {roomDEST}"},
			&Production{ID: "countClothPrsInRoom", Template: "{countVerb} people {inLocPrep} the {roomSRC} are wearing {colorClothes}"},
			&Production{ID: "tellPrsInfoAtLocToPrsAtLoc", Template: "{tellVerb} the {persInfo} of the person {atLocPrep} the {locSRC} to the person {atLocPrep} the {loc2DEST}"},
			&Production{ID: "followPrsAtLoc", Template: "{followVerb} the {gestPers_posePers} {inRoom_atLocSRC}"},
		),
		Followups: map[Continuation]Menu{
			AtLoc: {
				People:  []string{"findPrs", "meetName"},
				Objects: []string{"findObj"},
			},
			HasObj:    {All: []string{"placeObjOnPlcmt", "deliverObjToMe", "deliverObjToPrsInRoom", "deliverObjToNameAtBeac"}},
			FoundPers: {All: []string{"talkInfo", "answerQuestion", "followPrs", "followPrsToRoom", "guidePrsToBeacon"}},
			FoundObj:  {All: []string{"takeObj"}},
		},
		Steps: productions(
			&Production{ID: "findObj", Template: "{findVerb} {art} {obj_singCat} and", Next: FoundObj},
			&Production{ID: "findPrs", Template: "{findVerb} the {gestPers_posePers} and", Next: FoundPers},
			&Production{ID: "meetName", Template: "{meetVerb} {name} and", Next: FoundPers},
			&Production{ID: "placeObjOnPlcmt", Template: "{placeVerb} it {onLocPrep} the {plcmtLoc2DEST}"},
			&Production{ID: "deliverObjToMe", Template: "{deliverVerb} it to me"},
			&Production{ID: "deliverObjToPrsInRoom", Template: "{deliverVerb} it {deliverPrep} the {gestPers_posePers} {inLocPrep} the {roomDEST}"},
			&Production{ID: "deliverObjToNameAtBeac", Template: "{deliverVerb} it {deliverPrep} {name} {inLocPrep} the {roomDEST}"},
			&Production{ID: "talkInfo", Template: "{talkVerb} {talk}"},
			&Production{ID: "answerQuestion", Template: "{answerVerb} a {question}"},
			&Production{ID: "followPrs", Template: "{followVerb} them"},
			&Production{ID: "followPrsToRoom", Template: "{followVerb} them {toLocPrep} the {loc2_room2DEST}"},
			&Production{ID: "guidePrsToBeacon", Template: "{guideVerb} them {toLocPrep} the {loc2_room2DEST}"},
			&Production{ID: "takeObj", Template: "{takeVerb} it and", Next: HasObj},
		),
	}
	if err := g.Compile(); err != nil {
		panic(fmt.Sprintf("grammar: default grammar does not compile: %v", err))
	}
	return g
}
