package grammar

import (
	"strings"
	"unicode"
)

// assemble resolves every slot independently, then fills article slots.
//
// All article slots receive the same a/an choice, taken from the word after
// the first article that is followed by a letter. Sentences with two
// articles in front of words of different kinds get one of them wrong.
func (g *Generator) assemble(parts []Part) (string, error) {
	out := make([]string, len(parts))
	var articles []int
	for i, p := range parts {
		if p.Slot == nil {
			out[i] = p.Text
			continue
		}
		if p.Slot.isArticle() {
			articles = append(articles, i)
			continue
		}
		text, err := g.res.resolve(*p.Slot)
		if err != nil {
			return "", err
		}
		out[i] = text
	}

	if len(articles) > 0 {
		article := chooseArticle(out, articles)
		for _, i := range articles {
			out[i] = article
		}
	}
	return strings.Join(out, ""), nil
}

func chooseArticle(out []string, articles []int) string {
	for _, i := range articles {
		next := strings.TrimLeftFunc(strings.Join(out[i+1:], ""), unicode.IsSpace)
		next = strings.TrimPrefix(next, "[")
		if next == "" {
			continue
		}
		r := rune(next[0])
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			continue
		}
		return articleFor(r)
	}
	return "a"
}

func articleFor(r rune) string {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
