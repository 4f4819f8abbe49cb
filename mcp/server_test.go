package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhunter/backend/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewScoreJobTool())
	registry.Register(tools.NewAnalyzeMessageTool())

	r := gin.New()
	NewServer(registry, "test", nil).RegisterRoutes(&r.RouterGroup)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func rpc(t *testing.T, r *gin.Engine, method string, params any) MCPResponse {
	t.Helper()
	req := map[string]any{"jsonrpc": "2.0", "id": 1, "method": method}
	if params != nil {
		req["params"] = params
	}

	w := post(t, r, "/mcp", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2.0", resp.JSONRPC)
	return resp
}

func resultAs[T any](t *testing.T, resp MCPResponse) T {
	t.Helper()
	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestInitialize(t *testing.T) {
	resp := rpc(t, newTestRouter(), "initialize", nil)
	require.Nil(t, resp.Error)

	result := resultAs[InitializeResult](t, resp)
	assert.Equal(t, "jobhunter", result.ServerInfo.Name)
	assert.Equal(t, "test", result.ServerInfo.Version)
	assert.Equal(t, protocolVersion, result.ProtocolVersion)
}

func TestToolsList(t *testing.T) {
	r := newTestRouter()

	list := resultAs[ToolsListResult](t, rpc(t, r, "tools/list", nil))
	require.Len(t, list.Tools, 2)
	assert.Equal(t, "analyze_message", list.Tools[0].Name)
	assert.Equal(t, "score_job_match", list.Tools[1].Name)
	assert.Equal(t, "object", list.Tools[0].InputSchema["type"])

	w := post(t, r, "/mcp/tools/list", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	var direct ToolsListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &direct))
	assert.Len(t, direct.Tools, 2)
}

func TestToolsCall(t *testing.T) {
	r := newTestRouter()

	resp := rpc(t, r, "tools/call", map[string]any{
		"name":      "analyze_message",
		"arguments": map[string]any{"message": "hello there"},
	})
	require.Nil(t, resp.Error)

	call := resultAs[ToolCallResult](t, resp)
	assert.False(t, call.IsError)
	require.Len(t, call.Content, 1)
	assert.Equal(t, "text", call.Content[0].Type)
	assert.Contains(t, call.Content[0].Text, `"intent":"greeting"`)
}

func TestToolsCallFailures(t *testing.T) {
	r := newTestRouter()

	call := resultAs[ToolCallResult](t, rpc(t, r, "tools/call", map[string]any{"name": "missing"}))
	assert.True(t, call.IsError)
	assert.Contains(t, call.Content[0].Text, "tool not found")

	call = resultAs[ToolCallResult](t, rpc(t, r, "tools/call", map[string]any{
		"name":      "score_job_match",
		"arguments": map[string]any{"job": 5},
	}))
	assert.True(t, call.IsError)

	resp := rpc(t, r, "tools/call", map[string]any{})
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)
}

func TestUnknownMethod(t *testing.T) {
	resp := rpc(t, newTestRouter(), "resources/list", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)
}

func TestMalformedRequest(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeParseError, resp.Error.Code)
}

func TestDirectToolsCall(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/mcp/tools/call", map[string]any{
		"name":      "score_job_match",
		"arguments": map[string]any{"profile": map[string]any{"skills": []string{"Go"}}, "job": map[string]any{"title": "Go dev"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var call ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &call))
	assert.False(t, call.IsError)
	assert.Contains(t, call.Content[0].Text, `"match_score":1`)

	w = post(t, r, "/mcp/tools/call", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
