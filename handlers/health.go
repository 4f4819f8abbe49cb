package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/models"
)

// Version is reported by the index and health endpoints
const Version = "1.0.0"

// HealthHandler reports service status
type HealthHandler struct {
	agent    *agent.ChatAgent
	services map[string]string
}

// NewHealthHandler creates a health handler. services describes each
// collaborator, e.g. {"llm": "gemini", "search": "sample data"}.
func NewHealthHandler(chatAgent *agent.ChatAgent, services map[string]string) *HealthHandler {
	copied := make(map[string]string, len(services))
	for k, v := range services {
		copied[k] = v
	}
	return &HealthHandler{agent: chatAgent, services: copied}
}

// Index lists the API entry points
// @Summary Service index
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Job Hunter Agent API",
		"version": Version,
		"docs":    "/swagger/index.html",
		"endpoints": []string{
			"POST /parse-resume",
			"POST /create-agent/{session_id}",
			"POST /sessions",
			"POST /chat/{session_id}",
			"GET /session/{session_id}/history",
			"DELETE /session/{session_id}",
			"GET /resumes",
			"GET /resumes/{resume_id}",
			"DELETE /resumes/{resume_id}",
			"POST /mcp",
		},
	})
}

// Health returns service health
// @Summary Health check
// @Description Returns service status, configured collaborators and the number of open sessions
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: h.services,
		Sessions: h.agent.SessionCount(),
	})
}
