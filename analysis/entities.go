package analysis

import (
	"chat-engine/domain"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var (
	honorificPattern = regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Miss|Dr|Prof|Sir)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`)

	organizationPattern = regexp.MustCompile(`\b(?:[A-Z][\w&]*\s+)+(?:Inc|Corp|Corporation|Ltd|LLC|Company|University|Bank|Group|Foundation)\b\.?`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`),
		regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:january|february|march|april|may|june|july|august|september|october|november|december)(?:\s+\d{4})?\b`),
		regexp.MustCompile(`(?i)\b(?:next|last|this)\s+(?:week|month|year|weekend|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		regexp.MustCompile(`(?i)\b(?:today|tomorrow|yesterday|tonight)\b`),
		regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)s?\b`),
		regexp.MustCompile(`(?i)\b(?:january|february|march|april|june|july|august|september|october|november|december)(?:\s+\d{4})?\b`),
	}
)

// GazetteerExtractor recognizes entities from embedded word lists and a few
// surface patterns. It has no state after construction and is safe for concurrent use.
type GazetteerExtractor struct {
	places        *gazetteer
	organizations *gazetteer
	names         *gazetteer
}

// NewGazetteerExtractor builds the extractor from the embedded lexicon.
func NewGazetteerExtractor() (*GazetteerExtractor, error) {
	return NewGazetteerExtractorFromFS(lexiconFolder, placesFile, organizationsFile, namesFile)
}

// NewGazetteerExtractorFromFS builds the extractor from word lists found in fsys.
func NewGazetteerExtractorFromFS(fsys fs.FS, placesPath, organizationsPath, namesPath string) (*GazetteerExtractor, error) {
	lists := make([][]string, 3)
	for i, path := range []string{placesPath, organizationsPath, namesPath} {
		words, err := LoadWordList(fsys, path)
		if err != nil {
			return nil, err
		}
		lists[i] = words
	}
	return NewGazetteerExtractorFromLists(lists[0], lists[1], lists[2])
}

func NewGazetteerExtractorFromLists(places, organizations, names []string) (*GazetteerExtractor, error) {
	p, err := newGazetteer(places)
	if err != nil {
		return nil, err
	}
	o, err := newGazetteer(organizations)
	if err != nil {
		return nil, err
	}
	n, err := newGazetteer(names)
	if err != nil {
		return nil, err
	}
	return &GazetteerExtractor{places: p, organizations: o, names: n}, nil
}

// Extract implements contract.EntityExtractor.
func (g *GazetteerExtractor) Extract(text string) (domain.Entities, error) {
	runes := []rune(text)
	return domain.Entities{
		People:        g.people(text, runes),
		Places:        spansToText(runes, g.places.find(runes)),
		Organizations: g.organizationsIn(text, runes),
		Dates:         regexpMatches(text, datePatterns),
	}, nil
}

// people combines honorific mentions with capitalized known first names,
// each extended with an immediately following capitalized surname.
func (g *GazetteerExtractor) people(text string, runes []rune) []string {
	spans := regexpSpans(text, []*regexp.Regexp{honorificPattern})
	for _, s := range g.names.find(runes) {
		if !unicode.IsUpper(runes[s.start]) {
			continue
		}
		spans = append(spans, span{start: s.start, end: extendCapitalized(runes, s.end)})
	}
	return spansToText(runes, dropOverlaps(spans))
}

func (g *GazetteerExtractor) organizationsIn(text string, runes []rune) []string {
	spans := append(g.organizations.find(runes), regexpSpans(text, []*regexp.Regexp{organizationPattern})...)
	return spansToText(runes, dropOverlaps(spans))
}

// extendCapitalized swallows one following " Word" when Word is capitalized.
func extendCapitalized(runes []rune, end int) int {
	if end+1 >= len(runes) || runes[end] != ' ' || !unicode.IsUpper(runes[end+1]) {
		return end
	}
	i := end + 1
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}
	return i
}

func regexpMatches(text string, patterns []*regexp.Regexp) []string {
	runes := []rune(text)
	return spansToText(runes, dropOverlaps(regexpSpans(text, patterns)))
}

// regexpSpans converts byte offsets of every match into rune spans.
func regexpSpans(text string, patterns []*regexp.Regexp) []span {
	runeIndex := make(map[int]int, len(text)+1)
	i := 0
	for b := range text {
		runeIndex[b] = i
		i++
	}
	runeIndex[len(text)] = i

	var spans []span
	for _, p := range patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: runeIndex[loc[0]], end: runeIndex[loc[1]]})
		}
	}
	return spans
}

func spansToText(runes []rune, spans []span) []string {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})
	out := lo.Map(spans, func(s span, _ int) string {
		return strings.TrimSuffix(string(runes[s.start:s.end]), ".")
	})
	return lo.Uniq(out)
}
