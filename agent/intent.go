package agent

import "strings"

// Intent is the classified purpose of a user message
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentSearchJobs     Intent = "search_jobs"
	IntentResumeFeedback Intent = "resume_feedback"
	IntentCareerAdvice   Intent = "career_advice"
	IntentGeneral        Intent = "general"
)

// IntentRule maps a keyword set to an intent
type IntentRule struct {
	Intent   Intent
	Keywords []string
}

// Matches reports whether any keyword occurs in the lowercased message
func (r IntentRule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Evaluated in order, first match wins.
var intentRules = []IntentRule{
	{Intent: IntentGreeting, Keywords: []string{"hello", "hi", "hey", "greetings"}},
	{Intent: IntentSearchJobs, Keywords: []string{"job", "search", "find", "opportunity", "opening", "position"}},
	{Intent: IntentResumeFeedback, Keywords: []string{"resume", "cv", "feedback", "improve"}},
	{Intent: IntentCareerAdvice, Keywords: []string{"advice", "career", "help", "suggest", "recommend"}},
}

// IntentRules returns a copy of the ordered classification rules
func IntentRules() []IntentRule {
	rules := make([]IntentRule, len(intentRules))
	for i, r := range intentRules {
		rules[i] = IntentRule{Intent: r.Intent, Keywords: append([]string(nil), r.Keywords...)}
	}
	return rules
}

// ClassifyIntent maps a message to an intent using case-insensitive
// substring matching. Keywords are substrings, so "this" matches "hi".
func ClassifyIntent(message string) Intent {
	lowered := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.Matches(lowered) {
			return rule.Intent
		}
	}
	return IntentGeneral
}
