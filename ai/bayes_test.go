package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func trainedBayes() *BayesClassifier {
	c := NewBayesClassifier()
	c.AddDocument("hello", "greeting")
	c.AddDocument("goodbye friend", "farewell")
	c.Train()
	return c
}

func TestBayesClassifier_Classify(t *testing.T) {
	req := require.New(t)
	c := trainedBayes()

	p := c.Classify("Hello!", nil)
	req.Equal("greeting", p.Tag)
	req.Equal("bayes", p.Source)
	// prior 2/3, likelihood 2/2
	req.InDelta(2.0/3.0, p.Score, 1e-9)

	req.Equal("farewell", c.Classify("goodbye", nil).Tag)
}

func TestBayesClassifier_ClassificationScore(t *testing.T) {
	req := require.New(t)
	c := trainedBayes()

	// smoothing count 1 over class total 2
	req.InDelta(1.0/3.0, c.ClassificationScore("hello", "farewell"), 1e-9)
	req.Zero(c.ClassificationScore("hello", "missing"))
}

func TestBayesClassifier_Classifications_SortedBestFirst(t *testing.T) {
	req := require.New(t)
	c := trainedBayes()

	classifications := c.Classifications("goodbye friend")
	req.Len(classifications, 2)
	req.Equal("farewell", classifications[0].Label)
	req.GreaterOrEqual(classifications[0].Value, classifications[1].Value)
}

func TestBayesClassifier_Untrained(t *testing.T) {
	req := require.New(t)
	c := NewBayesClassifier()

	p := c.Classify("hello", nil)
	req.Empty(p.Tag)
	req.Zero(p.Score)
	req.Empty(c.Classifications("hello"))
}

func TestBayesClassifier_JSONRoundTrip(t *testing.T) {
	req := require.New(t)
	c := trainedBayes()

	data, err := json.Marshal(c)
	req.NoError(err)

	restored := NewBayesClassifier()
	req.NoError(json.Unmarshal(data, restored))

	for _, probe := range []string{"hello", "goodbye", "something else"} {
		req.Equal(c.Classifications(probe), restored.Classifications(probe))
	}
}
