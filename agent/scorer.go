package agent

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jobhunter/backend/models"
)

const (
	maxCandidates        = 5
	minMatchScore        = 0.3
	descriptionMaxLength = 200
	ellipsis             = "..."
)

// Score returns the fraction of skills found in jobText, in [0,1].
// jobText is expected to be lowercase.
func Score(jobText string, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range skills {
		if strings.Contains(jobText, strings.ToLower(skill)) {
			matched++
		}
	}

	return math.Min(float64(matched)/float64(len(skills)), 1.0)
}

// Rank scores the first few candidates against the profile, drops weak
// matches and returns the rest ordered by score, highest first.
func Rank(candidates []models.RawResult, profile models.ResumeProfile) []models.JobListing {
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	listings := make([]models.JobListing, 0, len(candidates))
	for _, c := range candidates {
		jobText := strings.ToLower(c.Title + " " + c.Content)
		score := Score(jobText, profile.Skills)
		if score <= minMatchScore {
			continue
		}

		listings = append(listings, models.JobListing{
			Title:       valueOr(c.Title, "Job Title"),
			Company:     companyName(c),
			Location:    valueOr(c.Location, "Location not specified"),
			URL:         valueOr(c.URL, "#"),
			Description: truncateDescription(valueOr(c.Content, "No description available")),
			PostedDate:  c.PublishedDate,
			MatchScore:  math.Round(score*100) / 100,
		})
	}

	sortByScore(listings)
	return listings
}

func sortByScore(listings []models.JobListing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].MatchScore > listings[j].MatchScore
	})
}

func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) > descriptionMaxLength {
		runes = runes[:descriptionMaxLength]
	}
	return string(runes) + ellipsis
}

var titleCaser = cases.Title(language.English)

// companyName prefers the backend's source name and falls back to the
// path segment of a LinkedIn URL.
func companyName(c models.RawResult) string {
	if c.SourceName != "" {
		return c.SourceName
	}
	if strings.Contains(c.URL, "linkedin.com") {
		parts := strings.Split(c.URL, "/")
		if len(parts) > 3 && parts[3] != "" {
			return titleCaser.String(strings.ReplaceAll(parts[3], "-", " "))
		}
	}
	return "Company not specified"
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

type sampleJob struct {
	listing  models.JobListing
	min, max float64
}

var sampleJobs = []sampleJob{
	{
		listing: models.JobListing{
			Title:       "Python Developer",
			Company:     "Tech Solutions Inc.",
			Location:    "Remote",
			URL:         "https://example.com/job1",
			Description: "Looking for Python developer with FastAPI and React experience. Minimum 2 years experience required.",
			PostedDate:  "2024-01-15",
			Salary:      "$80,000 - $120,000",
		},
		min: 0.7, max: 0.9,
	},
	{
		listing: models.JobListing{
			Title:       "Full Stack Engineer",
			Company:     "Innovate Co.",
			Location:    "New York, NY",
			URL:         "https://example.com/job2",
			Description: "Join our team as a Full Stack Engineer working with React, Python, and AWS.",
			PostedDate:  "2024-01-10",
			Salary:      "$90,000 - $130,000",
		},
		min: 0.6, max: 0.8,
	},
	{
		listing: models.JobListing{
			Title:       "Software Developer",
			Company:     "Digital Systems",
			Location:    "Remote",
			URL:         "https://example.com/job3",
			Description: "We're hiring a Software Developer with JavaScript and Python skills.",
			PostedDate:  "2024-01-05",
			Salary:      "$75,000 - $110,000",
		},
		min: 0.5, max: 0.7,
	},
	{
		listing: models.JobListing{
			Title:       "Backend Developer",
			Company:     "DataTech",
			Location:    "Austin, TX",
			URL:         "https://example.com/job4",
			Description: "Backend developer position focusing on API development with FastAPI.",
			PostedDate:  "2024-01-03",
			Salary:      "$85,000 - $125,000",
		},
		min: 0.6, max: 0.8,
	},
}

// SampleListings returns the illustrative listings used when a search finds
// nothing relevant. random must return values in [0,1).
func SampleListings(random func() float64) []models.JobListing {
	listings := make([]models.JobListing, 0, len(sampleJobs))
	for _, s := range sampleJobs {
		l := s.listing
		l.MatchScore = s.min + random()*(s.max-s.min)
		listings = append(listings, l)
	}
	sortByScore(listings)
	return listings
}
