package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"hi there", IntentGreeting},
		{"HELLO", IntentGreeting},
		{"Greetings, agent", IntentGreeting},
		{"find me a job", IntentSearchJobs},
		{"any openings for me?", IntentSearchJobs},
		{"can you look at my resume", IntentResumeFeedback},
		{"feedback on my CV please", IntentResumeFeedback},
		{"I need career advice", IntentCareerAdvice},
		{"what do you recommend", IntentCareerAdvice},
		{"what's the weather", IntentGeneral},
		{"", IntentGeneral},
		// substring matching: "this" contains "hi", so greeting wins over search
		{"is this job good", IntentGreeting},
		// search rules precede feedback rules
		{"search jobs for my resume", IntentSearchJobs},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.message))
		})
	}
}

func TestClassifyIntentIsDeterministic(t *testing.T) {
	messages := []string{"hi there", "find a position", "improve my cv", "career help", "ok"}
	for _, m := range messages {
		first := ClassifyIntent(m)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ClassifyIntent(m))
		}
	}
}

func TestIntentRulesOrder(t *testing.T) {
	rules := IntentRules()

	want := []Intent{IntentGreeting, IntentSearchJobs, IntentResumeFeedback, IntentCareerAdvice}
	got := make([]Intent, 0, len(rules))
	for _, r := range rules {
		got = append(got, r.Intent)
	}
	assert.Equal(t, want, got)

	// mutating the copy leaves classification untouched
	rules[0].Keywords[0] = "zzz"
	assert.Equal(t, IntentGreeting, ClassifyIntent("hello"))
}

func TestIntentRuleMatches(t *testing.T) {
	for _, rule := range IntentRules() {
		for _, kw := range rule.Keywords {
			assert.True(t, rule.Matches("say "+kw+" now"), "rule %s keyword %q", rule.Intent, kw)
		}
		assert.False(t, rule.Matches("zzz"))
	}
}
