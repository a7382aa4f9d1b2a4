package grammar

import (
	"fmt"
	"strings"
)

// Role is the source/destination marker carried into an entity tag
type Role string

const (
	RoleNone        Role = ""
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

const (
	sourceSuffix      = "SRC"
	destinationSuffix = "DEST"
	alternationSep    = "_"
	articleName       = "art"
	articleMarker     = "{art}"
)

// Slot is one parsed placeholder. Names holds one name, or the two
// alternatives of an underscore alternation.
type Slot struct {
	Token string
	Names []string
	Role  Role
}

func (s Slot) isArticle() bool {
	return len(s.Names) == 1 && s.Names[0] == articleName
}

// ParseSlot parses a placeholder token such as "loc_roomSRC"
func ParseSlot(token string) (Slot, error) {
	slot := Slot{Token: token}
	name := token
	switch {
	case strings.HasSuffix(name, sourceSuffix):
		slot.Role = RoleSource
		name = strings.TrimSuffix(name, sourceSuffix)
	case strings.HasSuffix(name, destinationSuffix):
		slot.Role = RoleDestination
		name = strings.TrimSuffix(name, destinationSuffix)
	}

	names := strings.Split(name, alternationSep)
	if len(names) > 2 {
		return Slot{}, &GrammarError{Kind: ErrUnknownPlaceholder, Name: token, Context: "alternation takes exactly two names"}
	}
	for _, n := range names {
		if n == "" {
			return Slot{}, &GrammarError{Kind: ErrUnknownPlaceholder, Name: token}
		}
	}
	slot.Names = names
	return slot, nil
}

// Part is a literal text fragment or a placeholder slot
type Part struct {
	Text string
	Slot *Slot
}

func literal(text string) Part {
	return Part{Text: text}
}

// compileTemplate splits "{takeVerb} it and" into literal and slot parts
func compileTemplate(tmpl string) ([]Part, error) {
	var parts []Part
	rest := tmpl
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, fmt.Errorf("template %q: unbalanced '}'", tmpl)
			}
			parts = append(parts, literal(rest))
			break
		}
		if open > 0 {
			if strings.IndexByte(rest[:open], '}') >= 0 {
				return nil, fmt.Errorf("template %q: unbalanced '}'", tmpl)
			}
			parts = append(parts, literal(rest[:open]))
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("template %q: unterminated placeholder", tmpl)
		}
		token := rest[open+1 : open+end]
		if !isToken(token) {
			return nil, fmt.Errorf("template %q: invalid placeholder %q", tmpl, token)
		}
		slot, err := ParseSlot(token)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", tmpl, err)
		}
		parts = append(parts, Part{Slot: &slot})
		rest = rest[open+end+1:]
	}
	return parts, nil
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
