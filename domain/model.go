package domain

import "encoding/json"

// TrainedModel is the persisted form of a training run.
// Network and Classifier are opaque to everything but the ai package.
type TrainedModel struct {
	Network    json.RawMessage     `json:"network"`
	Responses  map[string][]string `json:"responses"`
	Vocabulary []string            `json:"vocabulary"`
	Classifier json.RawMessage     `json:"classifier,omitempty"`
}
