package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jobhunter/backend/logger"
	"github.com/jobhunter/backend/models"
)

// PSEEndpoint is the Google Programmable Search Engine JSON API
const PSEEndpoint = "https://www.googleapis.com/customsearch/v1"

// PSE returns at most 10 items per page
const psePageSize = 10

// PSEClient searches job boards through Google Programmable Search Engine,
// one site-filtered query per domain
type PSEClient struct {
	apiKey   string
	engineID string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewPSEClient creates a PSE client. limiter may be nil.
func NewPSEClient(apiKey, engineID string, client *http.Client, limiter *rate.Limiter, log *zap.Logger) *PSEClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &PSEClient{
		apiKey:   apiKey,
		engineID: engineID,
		endpoint: PSEEndpoint,
		client:   client,
		limiter:  limiter,
		logger:   logger.Component(log, "pse"),
	}
}

// WithEndpoint overrides the API URL
func (c *PSEClient) WithEndpoint(endpoint string) *PSEClient {
	c.endpoint = endpoint
	return c
}

type pseResponse struct {
	Items []pseItem `json:"items"`
}

type pseItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	HTMLSnippet string `json:"htmlSnippet"`
	DisplayLink string `json:"displayLink"`
}

// Search queries each domain in turn, deduplicating by URL, until maxResults
// postings are collected. It fails only if every domain query failed.
func (c *PSEClient) Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.RawResult, error) {
	if len(domains) == 0 {
		domains = []string{""}
	}

	var results []models.RawResult
	var errs []error
	seen := make(map[string]bool)

	for _, domain := range domains {
		siteQuery := query
		if domain != "" {
			siteQuery = query + " site:" + domain
		}

		items, err := c.searchPage(ctx, siteQuery, 1, psePageSize)
		if err != nil {
			c.logger.Warn("site search failed", zap.String("domain", domain), zap.Error(err))
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		c.logger.Debug("site search completed",
			zap.String("domain", domain),
			zap.Int("items", len(items)))

		for _, item := range items {
			if item.Link == "" || seen[item.Link] || !isPreferredDetailURL(item.Link) {
				continue
			}
			seen[item.Link] = true

			snippet := item.Snippet
			if item.HTMLSnippet != "" {
				snippet = item.HTMLSnippet
			}
			results = append(results, models.RawResult{
				Title:   item.Title,
				URL:     item.Link,
				Content: CleanContent(snippet),
			})
		}

		if maxResults > 0 && len(results) >= maxResults {
			break
		}
	}

	if len(errs) > 0 && len(errs) == len(domains) {
		return nil, errors.Join(errs...)
	}

	c.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("results", len(results)))

	return limitResults(results, maxResults), nil
}

// isPreferredDetailURL keeps only concrete job pages for boards that also
// serve listing pages
func isPreferredDetailURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return true
	}

	host := strings.ToLower(u.Host)
	q := u.Query()

	if strings.Contains(host, "indeed") && strings.Contains(u.Path, "/jobs") && q.Get("vjk") == "" {
		return false
	}

	return true
}

// searchPage fetches a single page of results
func (c *PSEClient) searchPage(ctx context.Context, query string, start, num int) ([]pseItem, error) {
	if err := wait(ctx, c.limiter); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))
	params.Set("start", strconv.Itoa(start))

	reqURL := c.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrSearchFailure, err)
	}

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
		return nil, fmt.Errorf("%w: PSE API error (status %d): %s",
			ErrSearchFailure, resp.StatusCode, logger.Truncate(string(body), 200))
	}

	var parsed pseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %w", ErrSearchFailure, err)
	}

	return parsed.Items, nil
}
