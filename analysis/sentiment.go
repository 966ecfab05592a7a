package analysis

import (
	"chat-engine/domain"
	"strings"
)

// Lexicon is a fixed word list scored +1 (positive) or -1 (negative).
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewLexicon(positive, negative []string) Lexicon {
	return Lexicon{positive: toSet(positive), negative: toSet(negative)}
}

// DefaultLexicon loads the embedded positive and negative word lists.
func DefaultLexicon() (Lexicon, error) {
	positive, err := LoadWordList(lexiconFolder, positiveFile)
	if err != nil {
		return Lexicon{}, err
	}
	negative, err := LoadWordList(lexiconFolder, negativeFile)
	if err != nil {
		return Lexicon{}, err
	}
	return NewLexicon(positive, negative), nil
}

// Score sums +1 for every whitespace separated token found in the positive
// list and -1 for every one in the negative list. Tokens keep their
// punctuation, "bad!" does not count.
func (l Lexicon) Score(text string) (domain.Sentiment, int) {
	score := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, ok := l.positive[word]; ok {
			score++
		}
		if _, ok := l.negative[word]; ok {
			score--
		}
	}
	switch {
	case score > 0:
		return domain.SentimentPositive, score
	case score < 0:
		return domain.SentimentNegative, score
	default:
		return domain.SentimentNeutral, score
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
