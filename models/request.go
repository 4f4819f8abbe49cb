package models

// ResumeParseResponse represents the API response for resume parsing
// @Description Structured resume extracted from an uploaded file
type ResumeParseResponse struct {
	Success  bool          `json:"success" example:"true"`
	Data     ResumeProfile `json:"data"`
	Message  string        `json:"message,omitempty" example:"Resume parsed successfully"`
	ResumeID string        `json:"resume_id,omitempty" example:"3f0c8f1e-1d1a-4c8e-9d0a-6b7f1c2d3e4f"`
}

// CreateSessionRequest creates a chat session from an inline profile or an archived resume
// @Description Chat session creation request
type CreateSessionRequest struct {
	Profile  *ResumeProfile `json:"profile,omitempty"`
	ResumeID string         `json:"resume_id,omitempty" example:"3f0c8f1e-1d1a-4c8e-9d0a-6b7f1c2d3e4f"`
}

// SessionResponse represents the API response for session creation
// @Description Chat session creation result
type SessionResponse struct {
	Success   bool   `json:"success" example:"true"`
	SessionID string `json:"session_id" example:"session_1700000000_abc123"`
	Message   string `json:"message" example:"Chat agent created successfully"`
}

// HistoryResponse represents a session's conversation history
// @Description Conversation history, oldest first
type HistoryResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// ResumeListResponse represents archived resumes
// @Description Archived resume parse results
type ResumeListResponse struct {
	Resumes []ResumeRecord `json:"resumes"`
}

// StatusResponse is a generic success acknowledgement
type StatusResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Session deleted"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Session not found"`
	Code    int    `json:"code" example:"404"`
	Details string `json:"details,omitempty" example:"session abc does not exist"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status   string            `json:"status" example:"healthy"`
	Version  string            `json:"version" example:"1.0.0"`
	Services map[string]string `json:"services"`
	Sessions int               `json:"sessions" example:"3"`
}
