package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/models"
)

// AnalyzeMessageTool classifies a chat message without opening a session
type AnalyzeMessageTool struct{}

// NewAnalyzeMessageTool creates a new message analysis tool
func NewAnalyzeMessageTool() *AnalyzeMessageTool {
	return &AnalyzeMessageTool{}
}

func (t *AnalyzeMessageTool) Name() string {
	return "analyze_message"
}

func (t *AnalyzeMessageTool) Description() string {
	return `Classify a job seeker's chat message.
Returns the intent (greeting, search_jobs, resume_feedback, career_advice, general) and any location or job type hints.
When a profile is given, also returns the search query the agent would run.`
}

func (t *AnalyzeMessageTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"message"}, map[string]interface{}{
		"message": property("string", "The user's chat message"),
		"profile": property("object", "Optional resume profile used to compose the search query"),
	})
}

// AnalyzeMessageInput represents the input for message analysis
type AnalyzeMessageInput struct {
	Message string                `json:"message"`
	Profile *models.ResumeProfile `json:"profile,omitempty"`
}

// AnalyzeMessageOutput is the analysis result
type AnalyzeMessageOutput struct {
	Intent string              `json:"intent"`
	Params models.SearchParams `json:"params"`
	Query  string              `json:"query,omitempty"`
}

func (t *AnalyzeMessageTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeMessageInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	out := AnalyzeMessageOutput{
		Intent: string(agent.ClassifyIntent(in.Message)),
		Params: agent.ExtractSearchParams(in.Message),
	}
	if in.Profile != nil {
		out.Query = agent.ComposeQuery(*in.Profile, out.Params)
	}

	return NewSuccessResult(out)
}
