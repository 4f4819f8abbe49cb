package agent

import (
	"strings"

	"github.com/jobhunter/backend/models"
)

const querySkillCount = 3

// ComposeQuery builds the search engine query:
// "{skills} {level}{ job_type} jobs{ in location}"
func ComposeQuery(profile models.ResumeProfile, params models.SearchParams) string {
	var sb strings.Builder

	sb.WriteString(strings.Join(profile.TopSkills(querySkillCount), " "))
	sb.WriteString(" ")
	sb.WriteString(EstimateExperienceLevel(profile))

	if params.JobType != "" {
		sb.WriteString(" ")
		sb.WriteString(params.JobType)
	}

	sb.WriteString(" jobs")

	if params.Location != "" {
		sb.WriteString(" in ")
		sb.WriteString(params.Location)
	}

	return sb.String()
}
