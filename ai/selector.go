package ai

import "chat-engine/domain"

const (
	UnknownIntent   = "unknown"
	DefaultFallback = "I don't understand, please rephrase"
)

// Selector turns a resolved prediction into a reply drawn from the trained responses.
type Selector struct {
	minConfidence float64
	fallback      string
	choose        Chooser
}

func NewSelector(minConfidence float64, fallback string, choose Chooser) Selector {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return Selector{minConfidence: minConfidence, fallback: fallback, choose: choose}
}

// Select picks a random response of the predicted tag when the score is above
// the minimum confidence, and the fixed fallback otherwise.
func (s Selector) Select(p Prediction, responses map[string][]string) domain.ResponseResult {
	if p.Score > s.minConfidence {
		if text, ok := Pick(s.choose, responses[p.Tag]); ok {
			return domain.ResponseResult{
				Text:       text,
				Confidence: clamp01(p.Score),
				Intent:     p.Tag,
			}
		}
	}
	return s.Fallback()
}

func (s Selector) Fallback() domain.ResponseResult {
	return domain.ResponseResult{Text: s.fallback, Confidence: 0, Intent: UnknownIntent}
}
