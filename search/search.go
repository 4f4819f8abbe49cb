package search

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jobhunter/backend/config"
	"github.com/jobhunter/backend/models"
	"github.com/jobhunter/backend/utils"
)

// ErrSearchFailure is returned when the search backend cannot be reached or
// answers with an error
var ErrSearchFailure = errors.New("job search failed")

// Searcher retrieves raw postings for a query, restricted to domains
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.RawResult, error)
}

// NewFromConfig returns the configured search backend, or nil when it has no
// credentials. A nil Searcher makes the agent answer with sample listings.
func NewFromConfig(cfg *config.Config, log *zap.Logger) Searcher {
	if !cfg.SearchConfigured() {
		return nil
	}

	httpClient := utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)
	limiter := NewLimiter(cfg.SearchRatePerSecond)

	switch cfg.SearchProvider {
	case config.SearchPSE:
		return NewPSEClient(cfg.PSEAPIKey, cfg.PSEEngineID, httpClient, limiter, log)
	default:
		return NewTavilyClient(cfg.TavilyAPIKey, httpClient, limiter, log)
	}
}

// NewLimiter builds a token bucket allowing perSecond requests with a burst
// of one second's worth
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func wait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", ErrSearchFailure, err)
	}
	return nil
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanContent strips markup from a snippet and collapses whitespace.
// Plain text passes through unchanged apart from whitespace.
func CleanContent(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	}

	doc.Find("script, style, noscript").Remove()

	// join text nodes with spaces so adjacent blocks do not run together
	var parts []string
	collectText(doc.Selection, &parts)

	return strings.TrimSpace(whitespace.ReplaceAllString(strings.Join(parts, " "), " "))
}

func collectText(s *goquery.Selection, parts *[]string) {
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "#text" {
			*parts = append(*parts, child.Text())
			return
		}
		collectText(child, parts)
	})
}

func limitResults(results []models.RawResult, maxResults int) []models.RawResult {
	if maxResults > 0 && len(results) > maxResults {
		return results[:maxResults]
	}
	return results
}
