package domain

import "time"

// ChatRole is the author of a chatbot message.
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn of a chatbot conversation.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatReply is returned to the user after a chat turn.
type ChatReply struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}

// ResumeAnalysis scores a resume against a job posting.
type ResumeAnalysis struct {
	JobID           JobID    `json:"jobId"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Summary         string   `json:"summary"`
	// AIAssisted is false when the summary was produced without the language model.
	AIAssisted bool `json:"aiAssisted"`
}
