package agent

import (
	"strings"

	"github.com/jobhunter/backend/models"
)

// Location cues in scan order. Only "remote" and "hybrid" resolve to a value;
// the others mark that a location was mentioned without extracting it.
var locationCues = []string{"in ", "at ", "near ", "location ", "city ", "remote", "hybrid"}

var literalLocations = map[string]string{
	"remote": "Remote",
	"hybrid": "Hybrid",
}

var jobTypePhrases = []struct {
	phrases []string
	jobType string
}{
	{phrases: []string{"full time", "full-time"}, jobType: models.JobTypeFullTime},
	{phrases: []string{"part time", "part-time"}, jobType: models.JobTypePartTime},
	{phrases: []string{"internship"}, jobType: models.JobTypeInternship},
}

// ExtractSearchParams pulls optional location and job type hints from a message
func ExtractSearchParams(message string) models.SearchParams {
	var params models.SearchParams
	lowered := strings.ToLower(message)

	for _, cue := range locationCues {
		if !strings.Contains(lowered, cue) {
			continue
		}
		if loc, ok := literalLocations[cue]; ok {
			params.Location = loc
		}
		break
	}

	for _, jt := range jobTypePhrases {
		if containsAny(lowered, jt.phrases) {
			params.JobType = jt.jobType
			break
		}
	}

	return params
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
