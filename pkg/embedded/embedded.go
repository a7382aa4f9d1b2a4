package embedded

import (
	_ "embed"
)

// Default competition lexicons, in the markdown table layout of the rulebook repository
//
//go:embed data/names/names.md
var NamesMd []byte

//go:embed data/maps/location_names.md
var LocationNamesMd []byte

//go:embed data/maps/room_names.md
var RoomNamesMd []byte

//go:embed data/objects/objects.md
var ObjectsMd []byte
