package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jobhunter/backend/logger"
	"github.com/jobhunter/backend/models"
)

var (
	// ErrGenerationFailure is returned when every configured model failed
	ErrGenerationFailure = errors.New("text generation failed")
	// ErrParseFailure is returned when the model output is not a usable profile
	ErrParseFailure = errors.New("resume parsing failed")
)

const (
	maxResumeChars  = 3000
	maxRawTextChars = 1000
)

// Client tries an ordered list of models on one provider until one answers
type Client struct {
	provider Provider
	models   []string
	logger   *zap.Logger
}

// NewClient creates a client over provider. models are tried in order.
func NewClient(provider Provider, modelNames []string, log *zap.Logger) (*Client, error) {
	if provider == nil {
		return nil, errors.New("llm provider is required")
	}
	if len(modelNames) == 0 {
		return nil, errors.New("at least one model is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		provider: provider,
		models:   append([]string(nil), modelNames...),
		logger:   log.With(zap.String("component", "llm"), zap.String("provider", provider.Name())),
	}, nil
}

// ProviderName returns the name of the underlying provider
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// Models returns the failover order
func (c *Client) Models() []string {
	return append([]string(nil), c.models...)
}

// GenerateText returns the first non-empty answer in model order. When all
// models fail the returned error wraps ErrGenerationFailure and every
// per-model error.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	errs := []error{ErrGenerationFailure}

	for _, model := range c.models {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		text, err := c.provider.Generate(ctx, model, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			c.logger.Debug("generation succeeded", zap.String("model", model), zap.Int("chars", len(text)))
			return strings.TrimSpace(text), nil
		}
		if err == nil {
			err = errors.New("empty response")
		}

		c.logger.Warn("model failed, trying next",
			zap.String("model", model),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", model, err))
	}

	return "", errors.Join(errs...)
}

// ParseResume asks the model to structure resume text into a profile
func (c *Client) ParseResume(ctx context.Context, text string) (models.ResumeProfile, error) {
	prompt := resumePrompt(truncateRunes(text, maxResumeChars))

	answer, err := c.GenerateText(ctx, prompt)
	if err != nil {
		return models.ResumeProfile{}, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	profile, err := decodeProfile(answer)
	if err != nil {
		c.logger.Warn("unusable resume response",
			zap.Error(err),
			zap.String("response", logger.Truncate(answer, 200)))
		return models.ResumeProfile{}, err
	}

	profile.RawText = truncateRunes(text, maxRawTextChars)

	c.logger.Info("resume parsed",
		zap.String("name", profile.Name),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("experience", len(profile.Experience)))

	return profile, nil
}

// Close closes the provider
func (c *Client) Close() error {
	return c.provider.Close()
}

func decodeProfile(answer string) (models.ResumeProfile, error) {
	var profile models.ResumeProfile

	raw, ok := extractJSON(answer)
	if !ok {
		return profile, fmt.Errorf("%w: response is not JSON", ErrParseFailure)
	}

	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.ResumeProfile{}, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	if err := profile.Validate(); err != nil {
		return models.ResumeProfile{}, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	profile.Normalize()
	return profile, nil
}

// extractJSON strips markdown fences and surrounding prose, returning the
// outermost JSON object
func extractJSON(text string) (string, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}

	candidate := text[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func resumePrompt(text string) string {
	return fmt.Sprintf(`Extract the following information from this resume and return it as a JSON object:

{
  "name": "Full name",
  "email": "Email address",
  "phone": "Phone number",
  "skills": ["skill1", "skill2"],
  "experience": [
    {
      "title": "Job title",
      "company": "Company name",
      "start_date": "YYYY-MM",
      "end_date": "YYYY-MM or Present",
      "description": "Brief description",
      "location": "City"
    }
  ],
  "education": [
    {
      "degree": "Degree",
      "institution": "Institution name",
      "field_of_study": "Field",
      "start_date": "YYYY",
      "end_date": "YYYY",
      "gpa": 3.5
    }
  ],
  "summary": "Professional summary"
}

Resume text:
%s

Return ONLY the JSON object, no markdown formatting, no explanation.`, text)
}
