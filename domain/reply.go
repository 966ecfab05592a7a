package domain

// ResponseResult is the outcome of classification and reply selection.
type ResponseResult struct {
	Text       string
	Confidence float64
	Intent     string
}

// Reply is what a turn returns to the transport layer.
type Reply struct {
	Role       Role      `json:"role"`
	Message    string    `json:"message"`
	Timestamp  int64     `json:"timestamp"`
	Confidence float64   `json:"confidence"`
	Intent     string    `json:"intent,omitempty"`
	Analysis   *Analysis `json:"analysis,omitempty"`
	RoomID     RoomID    `json:"roomId,omitempty"`
	UserID     string    `json:"userId,omitempty"`
	Error      bool      `json:"error,omitempty"`
}

// ToMessage converts the reply into the history entry stored for the room.
func (r Reply) ToMessage() ConversationMessage {
	return ConversationMessage{
		Role:       r.Role,
		Message:    r.Message,
		Timestamp:  r.Timestamp,
		Confidence: r.Confidence,
		Intent:     r.Intent,
		Analysis:   r.Analysis,
	}
}
