package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/models"
)

// ChatHandler handles chat session requests
type ChatHandler struct {
	agent   *agent.ChatAgent
	records RecordArchive
	logger  *zap.Logger
}

// NewChatHandler creates a chat handler. records may be nil, in which case
// sessions cannot be created from an archived resume id.
func NewChatHandler(chatAgent *agent.ChatAgent, records RecordArchive, log *zap.Logger) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{
		agent:   chatAgent,
		records: records,
		logger:  log.With(zap.String("component", "chat_handler")),
	}
}

// CreateAgent opens a chat session under a caller-chosen id
// @Summary Create chat agent
// @Description Create (or replace) a chat session for a parsed resume profile
// @Tags Chat
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param profile body models.ResumeProfile true "Parsed resume profile"
// @Success 200 {object} models.SessionResponse "Session created"
// @Failure 400 {object} models.ErrorResponse "Invalid profile"
// @Router /create-agent/{session_id} [post]
func (h *ChatHandler) CreateAgent(c *gin.Context) {
	var profile models.ResumeProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid resume profile", err)
		return
	}

	sessionID := c.Param("session_id")
	h.agent.CreateSession(sessionID, profile)

	c.JSON(http.StatusOK, models.SessionResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Chat agent created successfully",
	})
}

// CreateSession opens a chat session with a generated id
// @Summary Create chat session
// @Description Create a chat session from an inline profile or an archived resume id
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.CreateSessionRequest true "Profile or resume id"
// @Success 201 {object} models.SessionResponse "Session created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Resume not found"
// @Router /sessions [post]
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var profile models.ResumeProfile
	switch {
	case req.Profile != nil:
		profile = *req.Profile

	case req.ResumeID != "":
		if h.records == nil {
			respondError(c, http.StatusBadRequest, "Resume archive not configured", nil)
			return
		}
		record, err := h.records.GetResume(c.Request.Context(), req.ResumeID)
		if err != nil {
			respondError(c, statusFor(err), "Failed to load resume", err)
			return
		}
		profile = record.Profile

	default:
		respondError(c, http.StatusBadRequest, "profile or resume_id is required", nil)
		return
	}

	if err := profile.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid resume profile", err)
		return
	}

	sessionID := uuid.NewString()
	h.agent.CreateSession(sessionID, profile)

	c.JSON(http.StatusCreated, models.SessionResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Chat agent created successfully",
	})
}

// Chat sends a message to a session
// @Summary Chat
// @Description Send a message to the chat agent and receive its reply with any job suggestions
// @Tags Chat
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param message body models.ChatMessage true "User message"
// @Success 200 {object} models.ChatReply "Agent reply"
// @Failure 400 {object} models.ErrorResponse "Malformed message body"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /chat/{session_id} [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var msg models.ChatMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message body", err)
		return
	}

	reply, err := h.agent.Process(c.Request.Context(), c.Param("session_id"), msg.Content)
	if err != nil {
		respondError(c, statusFor(err), "Session not found", err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

// History returns the conversation of a session
// @Summary Session history
// @Tags Chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.HistoryResponse "Conversation, oldest first"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/{session_id}/history [get]
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("session_id")

	messages, err := h.agent.History(sessionID)
	if err != nil {
		respondError(c, statusFor(err), "Session not found", err)
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}

// DeleteSession removes a session
// @Summary Delete session
// @Description Delete a chat session. Unknown ids succeed.
// @Tags Chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.StatusResponse "Session deleted"
// @Router /session/{session_id} [delete]
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	h.agent.DeleteSession(c.Param("session_id"))

	c.JSON(http.StatusOK, models.StatusResponse{
		Success: true,
		Message: "Session deleted",
	})
}
