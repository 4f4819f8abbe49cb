package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/config"
	"github.com/jobhunter/backend/docs"
	"github.com/jobhunter/backend/models"
)

func TestApplyFlags(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg := &config.Config{Port: "8000"}
	applyFlags(cfg)
	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.Debug)

	viper.Set("port", "9090")
	viper.Set("debug", true)
	viper.Set("log-json", true)
	applyFlags(cfg)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.LogJSON)
}

func TestBuildDepsWithoutCredentials(t *testing.T) {
	cfg := &config.Config{
		LLMProvider:    config.ProviderGemini,
		SearchProvider: config.SearchTavily,
	}

	d, err := buildDeps(context.Background(), cfg, zap.NewNop(), true)
	require.NoError(t, err)
	defer d.close(zap.NewNop())

	assert.Nil(t, d.llm)
	assert.Nil(t, d.searcher)
	assert.Nil(t, d.records)
	require.NotNil(t, d.agent)

	assert.Equal(t, map[string]string{
		"llm":     "templates",
		"search":  "sample data",
		"archive": "disabled",
		"uploads": "disabled",
	}, d.services(cfg))

	// the agent still answers with sample listings
	outcome := d.agent.FindJobs(context.Background(), models.ResumeProfile{Name: "Ada"}, models.SearchParams{})
	assert.NotEmpty(t, outcome.Listings)
}

func TestPrintReply(t *testing.T) {
	var buf bytes.Buffer
	printReply(&buf, models.ChatReply{
		Message: "Here are some jobs",
		JobSuggestions: []models.JobListing{
			{Title: "Go Developer", Company: "Acme", URL: "https://example.com/1", MatchScore: 0.75},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Agent: Here are some jobs")
	assert.Contains(t, out, "[1] Go Developer at Acme (75% match)")
	assert.Contains(t, out, "https://example.com/1")
}

var pathParam = regexp.MustCompile(`:([a-z_]+)`)

func TestSwaggerDocCoversRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		LLMProvider:    config.ProviderGemini,
		SearchProvider: config.SearchTavily,
		FrontendURLs:   []string{"http://localhost:3000"},
		MaxUploadMB:    1,
	}

	d, err := buildDeps(context.Background(), cfg, zap.NewNop(), false)
	require.NoError(t, err)
	defer d.close(zap.NewNop())

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	for _, route := range newRouter(cfg, d, zap.NewNop()).Routes() {
		if strings.HasPrefix(route.Path, "/swagger/") {
			continue
		}
		path := pathParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			assert.Contains(t, ops, strings.ToLower(route.Method), "undocumented %s %s", route.Method, path)
		}
	}
}
