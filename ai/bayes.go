package ai

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/lang/en"
)

const defaultSmoothing = 1.0

// BayesClassifier is a naive Bayes classifier over stemmed word presence.
// Documents are buffered by AddDocument and counted by Train. Once trained it
// is only read, so Classify is safe for concurrent use.
type BayesClassifier struct {
	analyzer      *analysis.Analyzer
	smoothing     float64
	vocabulary    map[string]struct{}
	labels        []string
	classFeatures map[string]map[string]float64
	classTotals   map[string]float64
	totalExamples float64
	pending       []document
}

type document struct {
	features []string
	label    string
}

func NewBayesClassifier() *BayesClassifier {
	return &BayesClassifier{
		analyzer:      en.NewAnalyzer(),
		smoothing:     defaultSmoothing,
		vocabulary:    make(map[string]struct{}),
		classFeatures: make(map[string]map[string]float64),
		classTotals:   make(map[string]float64),
		totalExamples: 1,
	}
}

// AddDocument tokenizes a raw pattern and queues it under label.
func (c *BayesClassifier) AddDocument(text, label string) {
	features := c.tokenize(text)
	for _, f := range features {
		c.vocabulary[f] = struct{}{}
	}
	c.pending = append(c.pending, document{features: features, label: label})
}

// Train counts every queued document.
func (c *BayesClassifier) Train() {
	for _, doc := range c.pending {
		c.addExample(doc)
	}
	c.pending = nil
}

func (c *BayesClassifier) addExample(doc document) {
	counts, ok := c.classFeatures[doc.label]
	if !ok {
		counts = make(map[string]float64)
		c.classFeatures[doc.label] = counts
		c.classTotals[doc.label] = 1
		c.labels = append(c.labels, doc.label)
	}
	c.totalExamples++
	c.classTotals[doc.label]++
	for _, f := range doc.features {
		if _, seen := counts[f]; seen {
			counts[f]++
		} else {
			counts[f] = 1 + c.smoothing
		}
	}
}

// Classification is the score of one label for a text.
type Classification struct {
	Label string
	Value float64
}

// Classifications scores every label, best first. Labels with equal scores
// keep their training order.
func (c *BayesClassifier) Classifications(text string) []Classification {
	observation := c.observe(text)
	out := make([]Classification, 0, len(c.labels))
	for _, label := range c.labels {
		out = append(out, Classification{Label: label, Value: c.probabilityOfClass(observation, label)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// ClassificationScore returns the score of label for text, zero for unknown labels.
func (c *BayesClassifier) ClassificationScore(text, label string) float64 {
	if _, ok := c.classFeatures[label]; !ok {
		return 0
	}
	return c.probabilityOfClass(c.observe(text), label)
}

// Name implements Strategy.
func (c *BayesClassifier) Name() string {
	return "bayes"
}

// Classify implements Strategy. An untrained classifier yields an empty prediction.
func (c *BayesClassifier) Classify(text string, _ []float64) Prediction {
	classifications := c.Classifications(text)
	if len(classifications) == 0 {
		return Prediction{Source: c.Name()}
	}
	return Prediction{
		Tag:    classifications[0].Label,
		Score:  clamp01(classifications[0].Value),
		Source: c.Name(),
	}
}

// observe keeps the tokens of text that belong to the trained vocabulary.
func (c *BayesClassifier) observe(text string) []string {
	var observation []string
	for _, token := range c.tokenize(text) {
		if _, ok := c.vocabulary[token]; ok {
			observation = append(observation, token)
		}
	}
	return observation
}

// probabilityOfClass is the class prior times the product of the feature
// likelihoods, summed in log space.
func (c *BayesClassifier) probabilityOfClass(observation []string, label string) float64 {
	counts := c.classFeatures[label]
	total := c.classTotals[label]
	logProb := 0.0
	for _, f := range observation {
		count, ok := counts[f]
		if !ok {
			count = c.smoothing
		}
		logProb += math.Log(count / total)
	}
	return (total / c.totalExamples) * math.Exp(logProb)
}

// tokenize lowercases, drops English stop words and stems, each distinct token once.
func (c *BayesClassifier) tokenize(text string) []string {
	stream := c.analyzer.Analyze([]byte(text))
	seen := make(map[string]struct{}, len(stream))
	tokens := make([]string, 0, len(stream))
	for _, tok := range stream {
		term := string(tok.Term)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		tokens = append(tokens, term)
	}
	return tokens
}

type bayesJSON struct {
	Smoothing     float64                       `json:"smoothing"`
	TotalExamples float64                       `json:"totalExamples"`
	Labels        []string                      `json:"labels"`
	ClassTotals   map[string]float64            `json:"classTotals"`
	ClassFeatures map[string]map[string]float64 `json:"classFeatures"`
	Vocabulary    []string                      `json:"vocabulary"`
}

func (c *BayesClassifier) MarshalJSON() ([]byte, error) {
	vocabulary := make([]string, 0, len(c.vocabulary))
	for v := range c.vocabulary {
		vocabulary = append(vocabulary, v)
	}
	sort.Strings(vocabulary)
	return json.Marshal(bayesJSON{
		Smoothing:     c.smoothing,
		TotalExamples: c.totalExamples,
		Labels:        c.labels,
		ClassTotals:   c.classTotals,
		ClassFeatures: c.classFeatures,
		Vocabulary:    vocabulary,
	})
}

func (c *BayesClassifier) UnmarshalJSON(data []byte) error {
	var raw bayesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	restored := NewBayesClassifier()
	if raw.Smoothing > 0 {
		restored.smoothing = raw.Smoothing
	}
	if raw.TotalExamples > 0 {
		restored.totalExamples = raw.TotalExamples
	}
	for _, label := range raw.Labels {
		counts := raw.ClassFeatures[label]
		if counts == nil {
			counts = make(map[string]float64)
		}
		restored.labels = append(restored.labels, label)
		restored.classFeatures[label] = counts
		restored.classTotals[label] = raw.ClassTotals[label]
		if restored.classTotals[label] <= 0 {
			restored.classTotals[label] = 1
		}
	}
	for _, v := range raw.Vocabulary {
		restored.vocabulary[v] = struct{}{}
	}
	*c = *restored
	return nil
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
