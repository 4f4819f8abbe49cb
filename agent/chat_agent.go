package agent

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/jobhunter/backend/models"
)

// LanguageModel generates prose for feedback and advice replies
type LanguageModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// JobSearcher retrieves raw job postings for a query
type JobSearcher interface {
	Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.RawResult, error)
}

// DefaultJobDomains restricts searches to job boards
var DefaultJobDomains = []string{
	"linkedin.com/jobs",
	"indeed.com",
	"glassdoor.com",
	"monster.com",
	"careerbuilder.com",
}

const defaultMaxResults = 8

// SearchOutcomeKind tags how a job search ended
type SearchOutcomeKind int

const (
	// SearchFound means at least one result passed the score threshold
	SearchFound SearchOutcomeKind = iota
	// SearchNoQualifyingResults means the search worked but nothing was
	// relevant, so sample listings were substituted
	SearchNoQualifyingResults
	// SearchCallFailed means the search backend returned an error
	SearchCallFailed
)

func (k SearchOutcomeKind) String() string {
	switch k {
	case SearchFound:
		return "found"
	case SearchNoQualifyingResults:
		return "no_qualifying_results"
	case SearchCallFailed:
		return "call_failed"
	default:
		return "unknown"
	}
}

// SearchOutcome is the result of the search pipeline
type SearchOutcome struct {
	Kind     SearchOutcomeKind
	Query    string
	Listings []models.JobListing
	Err      error
}

// ChatAgent routes chat messages to job search, resume feedback or career
// advice and records the conversation in the session store
type ChatAgent struct {
	sessions   *SessionStore
	llm        LanguageModel
	searcher   JobSearcher
	logger     *zap.Logger
	random     func() float64
	domains    []string
	maxResults int
}

// Option configures a ChatAgent
type Option func(*ChatAgent)

// WithRandom sets the source used to score sample listings
func WithRandom(random func() float64) Option {
	return func(a *ChatAgent) {
		a.random = random
	}
}

// WithSearchDomains overrides the job board allowlist
func WithSearchDomains(domains []string) Option {
	return func(a *ChatAgent) {
		a.domains = domains
	}
}

// WithMaxResults overrides how many raw results are requested per search
func WithMaxResults(n int) Option {
	return func(a *ChatAgent) {
		if n > 0 {
			a.maxResults = n
		}
	}
}

// NewChatAgent creates a chat agent. llm and searcher may be nil: feedback
// and advice then use fallback templates, and searches return sample listings.
func NewChatAgent(sessions *SessionStore, llm LanguageModel, searcher JobSearcher, logger *zap.Logger, opts ...Option) *ChatAgent {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &ChatAgent{
		sessions:   sessions,
		llm:        llm,
		searcher:   searcher,
		logger:     logger.With(zap.String("component", "chat_agent")),
		random:     rand.Float64,
		domains:    DefaultJobDomains,
		maxResults: defaultMaxResults,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// CreateSession opens a session for a parsed resume. The session keeps its
// own copy of the profile.
func (a *ChatAgent) CreateSession(sessionID string, profile models.ResumeProfile) {
	profile = profile.Clone()
	profile.Normalize()
	a.sessions.Create(sessionID, profile)
	a.logger.Info("session created",
		zap.String("session_id", sessionID),
		zap.Int("skills", len(profile.Skills)))
}

// DeleteSession removes a session; unknown ids are ignored
func (a *ChatAgent) DeleteSession(sessionID string) {
	if a.sessions.Delete(sessionID) {
		a.logger.Info("session deleted", zap.String("session_id", sessionID))
	}
}

// History returns the conversation of a session
func (a *ChatAgent) History(sessionID string) ([]models.ChatMessage, error) {
	sess, err := a.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.History(), nil
}

// SessionCount returns the number of open sessions
func (a *ChatAgent) SessionCount() int {
	return a.sessions.Len()
}

// Shutdown drops every open session
func (a *ChatAgent) Shutdown() {
	n := a.sessions.Len()
	a.sessions.Clear()
	a.logger.Info("sessions cleared", zap.Int("sessions", n))
}

// Process handles one user message. The only error it returns is
// ErrSessionNotFound; collaborator failures become reply text.
func (a *ChatAgent) Process(ctx context.Context, sessionID, message string) (models.ChatReply, error) {
	var reply models.ChatReply

	err := a.sessions.WithSession(sessionID, func(sess *Session) error {
		sess.append(models.RoleUser, message)

		intent := ClassifyIntent(message)
		a.logger.Debug("message classified",
			zap.String("session_id", sessionID),
			zap.String("intent", string(intent)))

		reply = a.dispatch(ctx, sess.Profile, intent, message)

		sess.append(models.RoleAssistant, reply.Message)
		return nil
	})
	if err != nil {
		return models.ChatReply{}, err
	}

	return reply, nil
}

func (a *ChatAgent) dispatch(ctx context.Context, profile models.ResumeProfile, intent Intent, message string) models.ChatReply {
	reply := models.ChatReply{JobSuggestions: []models.JobListing{}}

	switch intent {
	case IntentGreeting:
		reply.Message = FormatGreeting(profile)
		reply.RequiresInput = true

	case IntentSearchJobs:
		outcome := a.FindJobs(ctx, profile, ExtractSearchParams(message))
		if outcome.Kind == SearchCallFailed {
			reply.Message = FormatSearchError(outcome.Err)
			break
		}
		reply.JobSuggestions = outcome.Listings
		reply.Message = FormatJobResults(outcome.Listings)

	case IntentResumeFeedback:
		reply.Message = a.generate(ctx, FeedbackPrompt(profile), func() string {
			return FeedbackFallback(profile)
		})

	case IntentCareerAdvice:
		reply.Message = a.generate(ctx, AdvicePrompt(profile, message), AdviceFallback)

	default:
		reply.Message = clarifyingPrompt
		reply.RequiresInput = true
	}

	return reply
}

// FindJobs runs the search pipeline for a profile: compose the query, call
// the search backend and rank the results
func (a *ChatAgent) FindJobs(ctx context.Context, profile models.ResumeProfile, params models.SearchParams) SearchOutcome {
	query := ComposeQuery(profile, params)

	if a.searcher == nil {
		a.logger.Info("no search backend configured, using sample listings", zap.String("query", query))
		return SearchOutcome{
			Kind:     SearchNoQualifyingResults,
			Query:    query,
			Listings: SampleListings(a.random),
		}
	}

	a.logger.Info("searching jobs", zap.String("query", query))

	results, err := a.searcher.Search(ctx, query, a.maxResults, a.domains)
	if err != nil {
		a.logger.Warn("job search failed", zap.String("query", query), zap.Error(err))
		return SearchOutcome{Kind: SearchCallFailed, Query: query, Err: err}
	}

	listings := Rank(results, profile)
	if len(listings) == 0 {
		a.logger.Info("no qualifying results, using sample listings",
			zap.String("query", query),
			zap.Int("raw_results", len(results)))
		return SearchOutcome{
			Kind:     SearchNoQualifyingResults,
			Query:    query,
			Listings: SampleListings(a.random),
		}
	}

	a.logger.Info("jobs ranked",
		zap.String("query", query),
		zap.Int("raw_results", len(results)),
		zap.Int("listings", len(listings)))

	return SearchOutcome{Kind: SearchFound, Query: query, Listings: listings}
}

func (a *ChatAgent) generate(ctx context.Context, prompt string, fallback func() string) string {
	if a.llm == nil {
		return fallback()
	}

	text, err := a.llm.GenerateText(ctx, prompt)
	if err != nil || text == "" {
		a.logger.Warn("text generation failed, using fallback", zap.Error(err))
		return fallback()
	}
	return text
}
