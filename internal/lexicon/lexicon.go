package lexicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
	"github.com/Conceptual-Machines/gpsr-commands/pkg/embedded"
)

// Category names one pool of interchangeable surface values
type Category string

const (
	PersonName             Category = "person_names"
	Location               Category = "locations"
	PlacementLocation      Category = "placement_locations"
	Room                   Category = "rooms"
	Object                 Category = "objects"
	ObjectCategoryPlural   Category = "object_categories_plural"
	ObjectCategorySingular Category = "object_categories_singular"
)

// Categories lists every lexicon category in a stable order
var Categories = []Category{
	PersonName,
	Location,
	PlacementLocation,
	Room,
	Object,
	ObjectCategoryPlural,
	ObjectCategorySingular,
}

// Lexicon maps each category to its ordered values. It is read-only once built.
type Lexicon map[Category][]string

// Values returns the values of a category (nil if absent)
func (l Lexicon) Values(c Category) []string {
	return l[c]
}

// Empty reports the categories that have no values
func (l Lexicon) Empty() []Category {
	var empty []Category
	for _, c := range Categories {
		if len(l[c]) == 0 {
			empty = append(empty, c)
		}
	}
	return empty
}

// Relative paths of the lexicon files below a lexicon directory
const (
	NamesFile     = "names/names.md"
	LocationsFile = "maps/location_names.md"
	RoomsFile     = "maps/room_names.md"
	ObjectsFile   = "objects/objects.md"
)

// Default parses the lexicons embedded in the binary
func Default() Lexicon {
	return build(
		string(embedded.NamesMd),
		string(embedded.LocationNamesMd),
		string(embedded.RoomNamesMd),
		string(embedded.ObjectsMd),
	)
}

// Load reads and parses the four lexicon files below dir
func Load(dir string) (Lexicon, error) {
	files := []string{NamesFile, LocationsFile, RoomsFile, ObjectsFile}
	data := make([]string, len(files))
	for i, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read lexicon file %s: %w", name, err)
		}
		data[i] = string(raw)
	}

	lex := build(data[0], data[1], data[2], data[3])
	logger.Info("Lexicons loaded", logger.Fields{
		"dir":       dir,
		"names":     len(lex[PersonName]),
		"locations": len(lex[Location]),
		"rooms":     len(lex[Room]),
		"objects":   len(lex[Object]),
	})
	return lex, nil
}

// FromDir loads the lexicons below dir, or the embedded ones when dir is empty
func FromDir(dir string) (Lexicon, error) {
	if dir == "" {
		return Default(), nil
	}
	return Load(dir)
}

func build(names, locations, rooms, objects string) Lexicon {
	locs, placements := ParseLocations(locations)
	objs, plural, singular := ParseObjects(objects)
	return Lexicon{
		PersonName:             ParseNames(names),
		Location:               locs,
		PlacementLocation:      placements,
		Room:                   ParseRooms(rooms),
		Object:                 objs,
		ObjectCategoryPlural:   plural,
		ObjectCategorySingular: singular,
	}
}
