// Package domain contains core concepts of the chat engine.
// This file defines conversation messages and the analysis attached to them.
package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Entities groups the named entities found in a message, in order of appearance.
type Entities struct {
	People        []string `json:"people"`
	Places        []string `json:"places"`
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
}

// Analysis is computed from the raw user text, independently of intent resolution.
type Analysis struct {
	Entities       Entities  `json:"entities"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore int       `json:"sentimentScore"`
	Language       string    `json:"language,omitempty"`
}

// ConversationMessage is one entry of a room history.
// Confidence, Intent and Analysis are only set on assistant entries.
type ConversationMessage struct {
	Role       Role      `json:"role"`
	Message    string    `json:"message"`
	Timestamp  int64     `json:"timestamp"`
	Confidence float64   `json:"confidence,omitempty"`
	Intent     string    `json:"intent,omitempty"`
	Analysis   *Analysis `json:"analysis,omitempty"`
}
