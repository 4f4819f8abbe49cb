package models

// JobListing is a job suggestion returned to the user
type JobListing struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	PostedDate  string  `json:"posted_date,omitempty"`
	Salary      string  `json:"salary,omitempty"`
	MatchScore  float64 `json:"match_score"` // 0-1
}

// RawResult is a single hit returned by a job search backend
type RawResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	SourceName    string `json:"source_name,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	Location      string `json:"location,omitempty"`
}

// SearchParams holds optional hints pulled from a chat message.
// An empty field means no constraint.
type SearchParams struct {
	Location string `json:"location,omitempty"`
	JobType  string `json:"job_type,omitempty"`
}

// Job type values recognised in chat messages
const (
	JobTypeFullTime   = "full time"
	JobTypePartTime   = "part time"
	JobTypeInternship = "internship"
)
