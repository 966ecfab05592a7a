package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedStrategy struct {
	name  string
	tag   string
	score float64
	calls int
}

func (f *fixedStrategy) Name() string {
	return f.name
}

func (f *fixedStrategy) Classify(_ string, _ []float64) Prediction {
	f.calls++
	return Prediction{Tag: f.tag, Score: f.score, Source: f.name}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		primaryScore  float64
		fallbackScore float64
		expectedTag   string
		fallbackCalls int
	}{
		{name: "Primary clears its threshold", primaryScore: 0.9, fallbackScore: 0.99, expectedTag: "primary", fallbackCalls: 0},
		{name: "Primary exactly at threshold", primaryScore: 0.7, fallbackScore: 0.99, expectedTag: "primary", fallbackCalls: 0},
		{name: "Fallback overrides below threshold", primaryScore: 0.6, fallbackScore: 0.8, expectedTag: "fallback", fallbackCalls: 1},
		{name: "Fallback wins even when lower", primaryScore: 0.6, fallbackScore: 0.1, expectedTag: "fallback", fallbackCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			primary := &fixedStrategy{name: "network", tag: "primary", score: tt.primaryScore}
			fallback := &fixedStrategy{name: "bayes", tag: "fallback", score: tt.fallbackScore}

			p := Resolve([]Tier{{Strategy: primary, Threshold: 0.7}, {Strategy: fallback}}, "text", nil)

			req.Equal(tt.expectedTag, p.Tag)
			req.Equal(tt.fallbackCalls, fallback.calls)
		})
	}
}

func TestResolve_NoTiers(t *testing.T) {
	require.Equal(t, Prediction{}, Resolve(nil, "text", nil))
}
