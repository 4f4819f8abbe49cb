package models

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of a conversation history
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the result of processing one user message
type ChatReply struct {
	Message        string       `json:"message"`
	JobSuggestions []JobListing `json:"job_suggestions"`
	RequiresInput  bool         `json:"requires_input"`
}
