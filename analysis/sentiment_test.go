package analysis

import (
	"chat-engine/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexicon_Score(t *testing.T) {
	lexicon, err := DefaultLexicon()
	require.NoError(t, err)

	tests := []struct {
		name      string
		input     string
		sentiment domain.Sentiment
		score     int
	}{
		{name: "Negative word", input: "I hate this", sentiment: domain.SentimentNegative, score: -1},
		{name: "Positive words add up", input: "Great, I LOVE it and I am happy", sentiment: domain.SentimentPositive, score: 2},
		{name: "Mixed cancels out", input: "good and bad", sentiment: domain.SentimentNeutral, score: 0},
		{name: "Punctuation keeps the token apart", input: "bad!", sentiment: domain.SentimentNeutral, score: 0},
		{name: "Case insensitive", input: "TERRIBLE awful Sad", sentiment: domain.SentimentNegative, score: -3},
		{name: "Empty string", input: "", sentiment: domain.SentimentNeutral, score: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentiment, score := lexicon.Score(tt.input)
			require.Equal(t, tt.sentiment, sentiment)
			require.Equal(t, tt.score, score)
		})
	}
}

func TestLoadWordList_SkipsCommentsAndDuplicates(t *testing.T) {
	req := require.New(t)

	words, err := LoadWordList(lexiconFolder, negativeFile)
	req.NoError(err)
	req.Equal([]string{"bad", "hate", "sad", "angry", "terrible", "awful"}, words)

	places, err := LoadWordList(lexiconFolder, placesFile)
	req.NoError(err)
	req.NotContains(places, "# Countries, regions and major cities, one per line.")
}
