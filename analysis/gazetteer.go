package analysis

import (
	"sort"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// span is a half open rune range of the original text.
type span struct {
	start, end int
}

// gazetteer finds whole word, case insensitive occurrences of a fixed term list.
type gazetteer struct {
	matcher *goahocorasick.Machine
}

// newGazetteer builds the Aho-Corasick automaton over the lowercased terms.
func newGazetteer(terms []string) (*gazetteer, error) {
	unique := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		unique[string(lowerRunes([]rune(term)))] = struct{}{}
	}
	if len(unique) == 0 {
		return &gazetteer{}, nil
	}

	sorted := make([]string, 0, len(unique))
	for term := range unique {
		sorted = append(sorted, term)
	}
	sort.Strings(sorted)

	patterns := make([][]rune, len(sorted))
	for i, term := range sorted {
		patterns[i] = []rune(term)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &gazetteer{matcher: m}, nil
}

// find returns non overlapping matches bounded by non word runes, leftmost
// first and longest when two matches start at the same rune.
func (g *gazetteer) find(text []rune) []span {
	if g.matcher == nil || len(text) == 0 {
		return nil
	}
	lowered := lowerRunes(text)
	terms := g.matcher.MultiPatternSearch(lowered, false)

	candidates := make([]span, 0, len(terms))
	for _, term := range terms {
		s := span{start: term.Pos, end: term.Pos + len(term.Word)}
		if s.start < 0 || s.end > len(lowered) || !isBoundary(lowered, s) {
			continue
		}
		candidates = append(candidates, s)
	}
	return dropOverlaps(candidates)
}

func dropOverlaps(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})
	var kept []span
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		kept = append(kept, s)
		lastEnd = s.end
	}
	return kept
}

func isBoundary(text []rune, s span) bool {
	if s.start > 0 && isWord(text[s.start-1]) {
		return false
	}
	if s.end < len(text) && isWord(text[s.end]) {
		return false
	}
	return true
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lowerRunes lowers rune by rune so indexes keep pointing at the original text.
func lowerRunes(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = unicode.ToLower(r)
	}
	return out
}
