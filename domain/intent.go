// Package domain contains core concepts of the chat engine.
// This file defines the supervised training records.
// Records are validated when loaded, malformed ones never reach training.
package domain

// QAResponseTag is the synthetic intent every knowledge base answer is filed under.
const QAResponseTag = "qa_response"

// IntentDefinition is a category of user goal with its example patterns and candidate replies.
type IntentDefinition struct {
	Tag       string   `json:"tag" validate:"required"`
	Patterns  []string `json:"patterns" validate:"dive,required"`
	Responses []string `json:"responses" validate:"dive,required"`
}

// QAPair is a knowledge base entry, trained as a pattern of QAResponseTag.
type QAPair struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// IntentsFile mirrors intents.json.
type IntentsFile struct {
	Intents []IntentDefinition `json:"intents" validate:"dive"`
}

// KnowledgeFile mirrors knowledge-base.json.
type KnowledgeFile struct {
	QAPairs []QAPair `json:"qa_pairs" validate:"dive"`
}

// TrainingData is everything a training run consumes.
type TrainingData struct {
	Intents []IntentDefinition
	QAPairs []QAPair
}

// IsEmpty reports whether no example at all can be derived from the data.
func (d TrainingData) IsEmpty() bool {
	for _, intent := range d.Intents {
		if len(intent.Patterns) > 0 {
			return false
		}
	}
	return len(d.QAPairs) == 0
}
