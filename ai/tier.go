package ai

// Prediction is an intent resolved by one strategy.
type Prediction struct {
	Tag    string
	Score  float64
	Source string
}

// Strategy resolves an intent from the raw text or its encoded vector.
type Strategy interface {
	Name() string
	Classify(text string, vector []float64) Prediction
}

// Tier is a strategy trusted only when its score reaches Threshold.
type Tier struct {
	Strategy  Strategy
	Threshold float64
}

// Resolve tries the tiers in order and returns the first prediction that
// clears its threshold. The last tier is returned whatever it scores.
func Resolve(tiers []Tier, text string, vector []float64) Prediction {
	var p Prediction
	for i, tier := range tiers {
		p = tier.Strategy.Classify(text, vector)
		if p.Score >= tier.Threshold || i == len(tiers)-1 {
			return p
		}
	}
	return p
}
