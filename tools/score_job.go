package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/models"
)

// ScoreJobTool scores a job posting against a profile's skills
type ScoreJobTool struct{}

// NewScoreJobTool creates a new job scoring tool
func NewScoreJobTool() *ScoreJobTool {
	return &ScoreJobTool{}
}

func (t *ScoreJobTool) Name() string {
	return "score_job_match"
}

func (t *ScoreJobTool) Description() string {
	return `Score how well a job posting matches a resume profile.
The score is the fraction of the profile's skills mentioned in the job title or description.
Returns the score (0-1), the match percentage, the matched skills and whether the job would be suggested.`
}

func (t *ScoreJobTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"profile", "job"}, map[string]interface{}{
		"profile": property("object", "Resume profile; only skills are used"),
		"job":     property("object", "Job posting with title and content"),
	})
}

// ScoreJobInput represents the input for job scoring
type ScoreJobInput struct {
	Profile models.ResumeProfile `json:"profile"`
	Job     models.RawResult     `json:"job"`
}

// ScoreJobOutput is the scoring result
type ScoreJobOutput struct {
	MatchScore    float64  `json:"match_score"`
	MatchPercent  int      `json:"match_percent"`
	MatchedSkills []string `json:"matched_skills"`
	Qualifies     bool     `json:"qualifies"`
}

func (t *ScoreJobTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var scoreInput ScoreJobInput
	if err := json.Unmarshal(input, &scoreInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(ScoreJob(scoreInput.Profile, scoreInput.Job))
}

// ScoreJob scores one posting the same way the chat agent ranks search results
func ScoreJob(profile models.ResumeProfile, job models.RawResult) ScoreJobOutput {
	jobText := strings.ToLower(job.Title + " " + job.Content)
	score := agent.Score(jobText, profile.Skills)

	matched := []string{}
	for _, skill := range profile.Skills {
		if strings.Contains(jobText, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}

	return ScoreJobOutput{
		MatchScore:    score,
		MatchPercent:  agent.MatchPercent(score),
		MatchedSkills: matched,
		Qualifies:     len(agent.Rank([]models.RawResult{job}, profile)) > 0,
	}
}
