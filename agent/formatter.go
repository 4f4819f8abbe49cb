package agent

import (
	"fmt"
	"math"
	"strings"

	"github.com/jobhunter/backend/models"
)

const renderedJobCount = 3

const clarifyingPrompt = "I can help you find jobs, give resume feedback, or provide career advice. What would you like to do?"

const noJobsMessage = "I couldn't find any jobs matching your criteria. Try adjusting your search terms or location."

const adviceFallback = "Based on your skills and experience, I recommend focusing on roles that leverage your strongest skills. " +
	"Consider looking for positions at companies that value the expertise you have already demonstrated."

var suggestedSkills = []string{"AWS", "Docker", "TypeScript"}

// FormatGreeting builds the personalized greeting for a profile
func FormatGreeting(profile models.ResumeProfile) string {
	name := profile.FirstName()
	if name == "" {
		name = "there"
	}
	skills := strings.Join(profile.TopSkills(3), ", ")

	return fmt.Sprintf(`Hello %s!

I'm your AI Job Hunter assistant. I've analyzed your resume and found skills in: **%s**.

Here's what I can help you with:
1. **Find job opportunities** matching your skills
2. **Give feedback** on your resume
3. Provide **career advice** based on your experience

What would you like to do?`, name, skills)
}

// FormatJobResults renders the top of a ranked list
func FormatJobResults(listings []models.JobListing) string {
	if len(listings) == 0 {
		return noJobsMessage
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**I found %d job opportunities for you:**\n\n", len(listings))

	for i, job := range listings {
		if i >= renderedJobCount {
			break
		}
		salary := job.Salary
		if salary == "" {
			salary = "Not specified"
		}

		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, job.Title)
		fmt.Fprintf(&sb, "   **Company:** %s\n", job.Company)
		fmt.Fprintf(&sb, "   **Location:** %s\n", job.Location)
		fmt.Fprintf(&sb, "   **Match:** %d%%\n", MatchPercent(job.MatchScore))
		fmt.Fprintf(&sb, "   **Salary:** %s\n", salary)
		fmt.Fprintf(&sb, "   **Description:** %s\n", job.Description)
		fmt.Fprintf(&sb, "   [Apply Here](%s)\n\n", job.URL)
	}

	sb.WriteString("Would you like me to search for more specific roles or adjust the search criteria?")
	return sb.String()
}

// FormatSearchError reports a failed search call inline
func FormatSearchError(err error) string {
	return fmt.Sprintf("I encountered an error while searching: %v", err)
}

// MatchPercent converts a [0,1] score to a percentage, halves rounding to even
func MatchPercent(score float64) int {
	return int(math.RoundToEven(score * 100))
}

// FeedbackPrompt builds the language model prompt for resume feedback
func FeedbackPrompt(profile models.ResumeProfile) string {
	return fmt.Sprintf(`Based on this resume data, provide 3 specific, actionable suggestions for improvement:

Resume Summary:
- Name: %s
- Skills: %d skills including %s
- Experience: %d positions
- Education: %d degrees

Focus on:
1. Skill presentation
2. Experience descriptions
3. Overall resume strength

Provide concise, helpful feedback.`,
		profile.Name,
		len(profile.Skills),
		strings.Join(profile.TopSkills(5), ", "),
		len(profile.Experience),
		len(profile.Education),
	)
}

// AdvicePrompt builds the language model prompt for career advice
func AdvicePrompt(profile models.ResumeProfile, question string) string {
	return fmt.Sprintf(`Provide career advice based on this resume and query:

Resume:
- Skills: %s
- Experience Level: %d positions

User Question: %s

Give specific, actionable advice.`,
		strings.Join(profile.TopSkills(5), ", "),
		len(profile.Experience),
		question,
	)
}

// FeedbackFallback is returned when feedback generation fails
func FeedbackFallback(profile models.ResumeProfile) string {
	missing := len(suggestedSkills) - len(profile.Skills)
	if missing < 0 {
		missing = 0
	}

	expand := "Consider adding in-demand tools relevant to the roles you're targeting"
	if missing > 0 {
		expand = "Consider adding " + strings.Join(suggestedSkills[:missing], ", ")
	}

	return fmt.Sprintf(`Based on your resume, here are some suggestions:

1. **Quantify achievements**: Add numbers to your experience descriptions (e.g., "Improved performance by 20%%")
2. **Expand skills**: %s
3. **Update summary**: Make your summary more specific to the roles you're targeting

Your resume looks good overall! Focus on tailoring it for specific job applications.`, expand)
}

// AdviceFallback is returned when advice generation fails
func AdviceFallback() string {
	return adviceFallback
}
