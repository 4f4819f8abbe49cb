package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/models"
)

// JobFinder runs the job search pipeline for a profile
type JobFinder interface {
	FindJobs(ctx context.Context, profile models.ResumeProfile, params models.SearchParams) agent.SearchOutcome
}

// SearchJobsTool searches job boards for postings matching a profile
type SearchJobsTool struct {
	finder JobFinder
}

// NewSearchJobsTool creates a new job search tool
func NewSearchJobsTool(finder JobFinder) *SearchJobsTool {
	return &SearchJobsTool{
		finder: finder,
	}
}

func (t *SearchJobsTool) Name() string {
	return "search_jobs"
}

func (t *SearchJobsTool) Description() string {
	return `Search job boards for postings that match a resume profile.
Optional location and job_type narrow the search.
Returns ranked listings with match scores. When nothing relevant is found, sample listings are returned and outcome is "no_qualifying_results".`
}

func (t *SearchJobsTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"profile"}, map[string]interface{}{
		"profile":  property("object", "Resume profile with skills and experience"),
		"location": property("string", "Optional location, e.g. Berlin or remote"),
		"job_type": property("string", "Optional job type: full time, part time or internship"),
	})
}

// SearchJobsInput represents the input for job search
type SearchJobsInput struct {
	Profile  models.ResumeProfile `json:"profile"`
	Location string               `json:"location,omitempty"`
	JobType  string               `json:"job_type,omitempty"`
}

// SearchJobsOutput is the search result
type SearchJobsOutput struct {
	Outcome  string              `json:"outcome"`
	Query    string              `json:"query"`
	Listings []models.JobListing `json:"listings"`
}

func (t *SearchJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in SearchJobsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	outcome := t.finder.FindJobs(ctx, in.Profile, models.SearchParams{
		Location: in.Location,
		JobType:  in.JobType,
	})
	if outcome.Kind == agent.SearchCallFailed {
		return NewErrorResult(fmt.Sprintf("job search failed: %v", outcome.Err))
	}

	listings := outcome.Listings
	if listings == nil {
		listings = []models.JobListing{}
	}

	return NewSuccessResult(SearchJobsOutput{
		Outcome:  outcome.Kind.String(),
		Query:    outcome.Query,
		Listings: listings,
	})
}
