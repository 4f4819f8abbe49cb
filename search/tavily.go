package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jobhunter/backend/logger"
	"github.com/jobhunter/backend/models"
)

// TavilyEndpoint is the Tavily search API
const TavilyEndpoint = "https://api.tavily.com/search"

// TavilyClient searches with the Tavily API
type TavilyClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewTavilyClient creates a Tavily client. limiter may be nil.
func NewTavilyClient(apiKey string, client *http.Client, limiter *rate.Limiter, log *zap.Logger) *TavilyClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &TavilyClient{
		apiKey:   apiKey,
		endpoint: TavilyEndpoint,
		client:   client,
		limiter:  limiter,
		logger:   logger.Component(log, "tavily"),
	}
}

// WithEndpoint overrides the API URL
func (c *TavilyClient) WithEndpoint(endpoint string) *TavilyClient {
	c.endpoint = endpoint
	return c
}

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date"`
}

// Search runs an advanced-depth search restricted to domains
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.RawResult, error) {
	if err := wait(ctx, c.limiter); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(tavilyRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "advanced",
		MaxResults:     maxResults,
		IncludeDomains: domains,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %w", ErrSearchFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrSearchFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrSearchFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrSearchFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: Tavily API error (status %d): %s",
			ErrSearchFailure, resp.StatusCode, logger.Truncate(string(body), 200))
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %w", ErrSearchFailure, err)
	}

	results := make([]models.RawResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, models.RawResult{
			Title:         r.Title,
			URL:           r.URL,
			Content:       CleanContent(r.Content),
			PublishedDate: r.PublishedDate,
		})
	}

	c.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("results", len(results)))

	return limitResults(results, maxResults), nil
}
