package lexicon

import (
	"regexp"
	"strings"

	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
)

var (
	nameCellRE     = regexp.MustCompile(`\|\s*([A-Za-z]+)\s*\|`)
	locationRowRE  = regexp.MustCompile(`\|\s*([0-9]+)\s*\|\s*([A-Za-z,\s, \(,\)]+)\|`)
	roomCellRE     = regexp.MustCompile(`\|\s*(\w+ \w*)\s*\|`)
	objectCellRE   = regexp.MustCompile(`\|\s*(\w+)\s*\|`)
	classHeadingRE = regexp.MustCompile(`# Class \s*([\w,\s, \(,\)]+)\s*`)
)

const (
	placementMarker   = "(p)"
	objectTableHeader = "Objectname"
)

// ParseNames extracts person names from a single-column markdown table.
// The first cell is the table header and is dropped.
func ParseNames(data string) []string {
	names := firstGroups(nameCellRE, data)
	if len(names) == 0 {
		logger.Warn("List of names is empty. Check content of names markdown file", nil)
		return []string{}
	}
	return names[1:]
}

// ParseLocations extracts location names from an "ID | Name" table. Locations
// suffixed with "(p)" are placement locations and are also returned in the
// second list; the marker is removed from both lists.
func ParseLocations(data string) ([]string, []string) {
	var locations, placements []string
	for _, m := range locationRowRE.FindAllStringSubmatch(data, -1) {
		loc := strings.TrimSpace(m[2])
		if strings.HasSuffix(loc, placementMarker) {
			placements = append(placements, strings.TrimSpace(strings.ReplaceAll(loc, placementMarker, "")))
		}
		locations = append(locations, strings.TrimSpace(strings.ReplaceAll(loc, placementMarker, "")))
	}
	if len(locations) == 0 {
		logger.Warn("List of locations is empty. Check content of location markdown file", nil)
		return []string{}, []string{}
	}
	if placements == nil {
		placements = []string{}
	}
	return locations, placements
}

// ParseRooms extracts room names from a single-column markdown table,
// dropping the header cell.
func ParseRooms(data string) []string {
	rooms := firstGroups(roomCellRE, data)
	if len(rooms) == 0 {
		logger.Warn("List of rooms is empty. Check content of room markdown file", nil)
		return []string{}
	}
	return rooms[1:]
}

// ParseObjects extracts object names and their categories. Categories come
// from "# Class plural (singular)" headings; underscores turn into spaces.
func ParseObjects(data string) (objects, plural, singular []string) {
	objects, plural, singular = []string{}, []string{}, []string{}

	for _, obj := range firstGroups(objectCellRE, data) {
		if obj == objectTableHeader {
			continue
		}
		objects = append(objects, strings.TrimSpace(strings.ReplaceAll(obj, "_", " ")))
	}

	for _, m := range classHeadingRE.FindAllStringSubmatch(data, -1) {
		heading := strings.NewReplacer("(", "", ")", "").Replace(strings.TrimSpace(m[1]))
		fields := strings.Fields(heading)
		if len(fields) < 2 {
			logger.Warn("Skipping malformed object class heading", logger.Fields{"heading": m[1]})
			continue
		}
		plural = append(plural, strings.ReplaceAll(fields[0], "_", " "))
		singular = append(singular, strings.ReplaceAll(fields[1], "_", " "))
	}

	if len(objects) == 0 && len(plural) == 0 {
		logger.Warn("List of objects or object categories is empty. Check content of object markdown file", nil)
	}
	return objects, plural, singular
}

func firstGroups(re *regexp.Regexp, data string) []string {
	matches := re.FindAllStringSubmatch(data, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}
