package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jobhunter/backend/models"
)

// ResumeParser structures resume text into a profile
type ResumeParser interface {
	ParseResume(ctx context.Context, text string) (models.ResumeProfile, error)
}

// ParseResumeTool parses resume text into a structured profile
type ParseResumeTool struct {
	parser ResumeParser
}

// NewParseResumeTool creates a new resume parsing tool
func NewParseResumeTool(parser ResumeParser) *ParseResumeTool {
	return &ParseResumeTool{
		parser: parser,
	}
}

func (t *ParseResumeTool) Name() string {
	return "parse_resume"
}

func (t *ParseResumeTool) Description() string {
	return `Parse resume text into a structured profile using the language model.
Input should be the plain text content of the resume.
Returns name, contact details, skills, experience and education.`
}

func (t *ParseResumeTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"resume_text"}, map[string]interface{}{
		"resume_text": property("string", "The resume text content to parse"),
	})
}

// ParseResumeInput represents the input for resume parsing
type ParseResumeInput struct {
	ResumeText string `json:"resume_text"`
}

func (t *ParseResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var parseInput ParseResumeInput
	if err := json.Unmarshal(input, &parseInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if strings.TrimSpace(parseInput.ResumeText) == "" {
		return NewErrorResult("resume_text is required")
	}

	profile, err := t.parser.ParseResume(ctx, parseInput.ResumeText)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("resume parsing failed: %v", err))
	}

	return NewSuccessResult(profile)
}
