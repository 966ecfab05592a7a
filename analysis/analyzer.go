package analysis

import (
	"chat-engine/contract"
	"chat-engine/domain"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// Analyzer computes the entities, sentiment and language of a raw message.
type Analyzer struct {
	log       *slog.Logger
	extractor contract.EntityExtractor
	lexicon   Lexicon
}

func NewAnalyzer(log *slog.Logger, extractor contract.EntityExtractor, lexicon Lexicon) *Analyzer {
	return &Analyzer{log: log, extractor: extractor, lexicon: lexicon}
}

// NewDefaultAnalyzer wires the embedded lexicon and gazetteer.
func NewDefaultAnalyzer(log *slog.Logger) (*Analyzer, error) {
	lexicon, err := DefaultLexicon()
	if err != nil {
		return nil, err
	}
	extractor, err := NewGazetteerExtractor()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(log, extractor, lexicon), nil
}

func (a *Analyzer) Analyze(text string) (domain.Analysis, error) {
	entities, err := a.extractor.Extract(text)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("entity extraction: %w", err)
	}

	sentiment, score := a.lexicon.Score(text)

	lang := detectLanguage(text)

	a.log.Debug("Message analyzed", "sentiment", sentiment, "score", score, "lang", lang)
	return domain.Analysis{
		Entities:       entities,
		Sentiment:      sentiment,
		SentimentScore: score,
		Language:       lang,
	}, nil
}

// detectLanguage returns the ISO 639-1 code of text, empty when nothing can be told.
func detectLanguage(text string) string {
	if !strings.ContainsFunc(text, unicode.IsLetter) {
		return ""
	}
	info := whatlanggo.Detect(text)
	if info.Lang < 0 {
		return ""
	}
	return info.Lang.Iso6391()
}
