package agent

import (
	"strconv"
	"strings"

	"github.com/jobhunter/backend/models"
)

// Experience level labels, used verbatim in search queries
const (
	LevelEntry  = "entry level"
	LevelJunior = "junior"
	LevelMid    = "mid level"
	LevelSenior = "senior"
)

// ExperienceMonths sums closed experience spans using only the year part of
// each date. Entries ending in "present" and entries with malformed dates
// contribute nothing.
func ExperienceMonths(profile models.ResumeProfile) int {
	total := 0
	for _, exp := range profile.Experience {
		if exp.StartDate == "" || exp.EndDate == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(exp.EndDate), "present") {
			continue
		}
		start, ok := leadingYear(exp.StartDate)
		if !ok {
			continue
		}
		end, ok := leadingYear(exp.EndDate)
		if !ok {
			continue
		}
		total += (end - start) * 12
	}
	return total
}

// EstimateExperienceLevel buckets total experience into a seniority label
func EstimateExperienceLevel(profile models.ResumeProfile) string {
	years := float64(ExperienceMonths(profile)) / 12

	switch {
	case years < 1:
		return LevelEntry
	case years < 3:
		return LevelJunior
	case years < 7:
		return LevelMid
	default:
		return LevelSenior
	}
}

func leadingYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
