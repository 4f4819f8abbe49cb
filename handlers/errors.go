package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/llm"
	"github.com/jobhunter/backend/models"
	"github.com/jobhunter/backend/storage"
	"github.com/jobhunter/backend/utils"
)

// statusFor maps collaborator errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, agent.ErrSessionNotFound), errors.Is(err, storage.ErrResumeNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrExtractionFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrParseFailure), errors.Is(err, llm.ErrGenerationFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{
		Error: message,
		Code:  status,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
