package grammar

// Verb roles and their surface synonyms. A "<role>Verb" placeholder draws
// one synonym per occurrence.
var verbSynonyms = map[string][]string{
	"take":      {"take", "get", "grasp", "fetch"},
	"place":     {"put", "place"},
	"deliver":   {"bring", "give", "deliver"},
	"bring":     {"bring", "give"},
	"go":        {"go", "navigate"},
	"find":      {"find", "locate", "look for"},
	"talk":      {"tell", "say"},
	"answer":    {"answer"},
	"meet":      {"meet"},
	"tell":      {"tell"},
	"greet":     {"greet", "salute", "say hello to", "introduce yourself to"},
	"remember":  {"meet", "contact", "get to know", "get acquainted with"},
	"count":     {"tell me how many"},
	"describe":  {"tell me how", "describe"},
	"offer":     {"offer"},
	"follow":    {"follow"},
	"guide":     {"guide", "escort", "take", "lead"},
	"accompany": {"accompany"},
}

// Preposition roles, addressed by their full placeholder name
var prepSynonyms = map[string][]string{
	"deliverPrep": {"to"},
	"placePrep":   {"on"},
	"inLocPrep":   {"in"},
	"fromLocPrep": {"from"},
	"toLocPrep":   {"to"},
	"atLocPrep":   {"at"},
	"talkPrep":    {"to"},
	"locPrep":     {"in", "at"},
	"onLocPrep":   {"on"},
	"arePrep":     {"are"},
	"ofPrsPrep":   {"of"},
}

var connectors = []string{"and"}

var (
	gesturePersons = []string{
		"waving person", "person raising their left arm", "person raising their right arm",
		"person pointing to the left", "person pointing to the right",
	}
	posePersons = []string{"sitting person", "standing person", "lying person"}

	gesturePersonsPlural = []string{
		"waving persons", "persons raising their left arm", "persons raising their right arm",
		"persons pointing to the left", "persons pointing to the right",
	}
	posePersonsPlural = []string{"sitting persons", "standing persons", "lying persons"}

	personInfos       = []string{"name", "pose", "gesture"}
	objectComparisons = []string{"biggest", "largest", "smallest", "heaviest", "lightest", "thinnest"}

	talkTopics = []string{
		"something about yourself", "the time", "what day is today", "what day is tomorrow",
		"your teams name", "your teams country", "your teams affiliation",
		"the day of the week", "the day of the month",
	}
	questions = []string{"question", "quiz"}

	colors         = []string{"blue", "yellow", "black", "white", "red", "orange", "gray"}
	garments       = []string{"t shirt", "shirt", "blouse", "sweater", "coat", "jacket"}
	garmentsPlural = []string{"t shirts", "shirts", "blouses", "sweaters", "coats", "jackets"}

	colorGarments       = crossProduct(colors, garments)
	colorGarmentsPlural = crossProduct(colors, garmentsPlural)
)

// crossProduct joins every a with every b, a-major
func crossProduct(as, bs []string) []string {
	out := make([]string, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, a+" "+b)
		}
	}
	return out
}
