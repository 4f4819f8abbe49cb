package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/tools"
)

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

const protocolVersion = "2024-11-05"

// Server represents an MCP (Model Context Protocol) server
// This allows the job hunter tools to be used by external AI agents
type Server struct {
	registry *tools.ToolRegistry
	logger   *zap.Logger
	version  string
}

// NewServer creates a new MCP server
func NewServer(registry *tools.ToolRegistry, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		registry: registry,
		logger:   log.With(zap.String("component", "mcp")),
		version:  version,
	}
}

// MCPRequest represents an incoming MCP tool call request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents an MCP error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult represents the result of initialize
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
	Capabilities    map[string]interface{} `json:"capabilities"`
}

// ServerInfo identifies the server to MCP clients
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsListResult represents the result of tools/list
type ToolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}

// ToolDefinition represents a tool definition for MCP
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolCallParams represents parameters for tools/call
type ToolCallParams struct {
	Name      string          `json:"name" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult represents the result of tools/call
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ContentItem represents a content item in MCP
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RegisterRoutes registers MCP endpoints on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP handles MCP JSON-RPC requests
// @Summary MCP JSON-RPC endpoint
// @Description Model Context Protocol entry point supporting initialize, tools/list and tools/call
// @Tags MCP
// @Accept json
// @Produce json
// @Param request body MCPRequest true "JSON-RPC request"
// @Success 200 {object} MCPResponse
// @Router /mcp [post]
func (s *Server) HandleMCP(c *gin.Context) {
	var req MCPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sendError(c, nil, codeParseError, "Parse error", err.Error())
		return
	}

	switch req.Method {
	case "initialize":
		s.sendResult(c, req.ID, InitializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo:      ServerInfo{Name: "jobhunter", Version: s.version},
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
		})
	case "tools/list":
		s.sendResult(c, req.ID, s.listTools())
	case "tools/call":
		s.handleToolsCall(c, req)
	default:
		s.sendError(c, req.ID, codeMethodNotFound, "Method not found", req.Method)
	}
}

// HandleToolsList handles POST /mcp/tools/list
// @Summary List MCP tools
// @Tags MCP
// @Produce json
// @Success 200 {object} ToolsListResult
// @Router /mcp/tools/list [post]
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, s.listTools())
}

// HandleToolsCall handles POST /mcp/tools/call
// @Summary Call an MCP tool
// @Tags MCP
// @Accept json
// @Produce json
// @Param request body ToolCallParams true "Tool name and arguments"
// @Success 200 {object} ToolCallResult
// @Failure 400 {object} map[string]string
// @Router /mcp/tools/call [post]
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, s.callTool(c.Request.Context(), params))
}

func (s *Server) listTools() ToolsListResult {
	registered := s.registry.List()

	definitions := make([]ToolDefinition, 0, len(registered))
	for _, tool := range registered {
		definitions = append(definitions, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}

	return ToolsListResult{Tools: definitions}
}

func (s *Server) handleToolsCall(c *gin.Context, req MCPRequest) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		detail := "tool name is required"
		if err != nil {
			detail = err.Error()
		}
		s.sendError(c, req.ID, codeInvalidParams, "Invalid params", detail)
		return
	}

	s.sendResult(c, req.ID, s.callTool(c.Request.Context(), params))
}

func (s *Server) callTool(ctx context.Context, params ToolCallParams) ToolCallResult {
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return ToolCallResult{
			Content: []ContentItem{{Type: "text", Text: err.Error()}},
			IsError: true,
		}
	}

	return ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: string(result)}},
		IsError: isFailure(result),
	}
}

func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	tool, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	start := time.Now()
	s.logger.Info("executing tool", zap.String("tool", name))

	result, err := tool.Execute(ctx, args)
	if err != nil {
		s.logger.Error("tool failed", zap.String("tool", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("tool completed",
		zap.String("tool", name),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// isFailure reports whether a tool returned an unsuccessful ToolResult
func isFailure(result json.RawMessage) bool {
	var tr tools.ToolResult
	if err := json.Unmarshal(result, &tr); err != nil {
		return false
	}
	return !tr.Success
}

func (s *Server) sendResult(c *gin.Context, id interface{}, result interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *Server) sendError(c *gin.Context, id interface{}, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}
