package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/models"
)

// TextExtractor turns an uploaded document into plain text
type TextExtractor interface {
	ExtractFile(header *multipart.FileHeader) (text, mimeType string, data []byte, err error)
}

// ResumeParser structures resume text into a profile
type ResumeParser interface {
	ParseResume(ctx context.Context, text string) (models.ResumeProfile, error)
}

// FileArchive stores original resume uploads
type FileArchive interface {
	UploadResume(ctx context.Context, resumeID string, content []byte, filename, contentType string) (string, error)
	DeleteResume(ctx context.Context, fileURL string) error
}

// RecordArchive stores parsed resumes
type RecordArchive interface {
	SaveResume(ctx context.Context, record *models.ResumeRecord) error
	GetResume(ctx context.Context, id string) (*models.ResumeRecord, error)
	ListResumes(ctx context.Context, limit int) ([]models.ResumeRecord, error)
	DeleteResume(ctx context.Context, id string) error
}

const defaultListLimit = 20

// ResumeHandler handles resume upload and archive requests
type ResumeHandler struct {
	extractor TextExtractor
	parser    ResumeParser
	files     FileArchive
	records   RecordArchive
	maxUpload int64
	logger    *zap.Logger
}

// NewResumeHandler creates a resume handler. parser, files and records may
// be nil; parsing then answers 503 and archiving is skipped.
func NewResumeHandler(extractor TextExtractor, parser ResumeParser, files FileArchive, records RecordArchive, maxUpload int64, log *zap.Logger) *ResumeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResumeHandler{
		extractor: extractor,
		parser:    parser,
		files:     files,
		records:   records,
		maxUpload: maxUpload,
		logger:    log.With(zap.String("component", "resume_handler")),
	}
}

// ParseResume extracts a structured profile from an uploaded resume
// @Summary Parse resume
// @Description Upload a PDF, DOCX or TXT resume and extract a structured profile with the language model
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX, TXT)"
// @Success 200 {object} models.ResumeParseResponse "Parsed profile"
// @Failure 400 {object} models.ErrorResponse "Missing file or unsupported format"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 422 {object} models.ErrorResponse "Unreadable document"
// @Failure 502 {object} models.ErrorResponse "Language model could not structure the resume"
// @Failure 503 {object} models.ErrorResponse "Language model not configured"
// @Router /parse-resume [post]
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+(1<<20))
	}

	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(c, http.StatusRequestEntityTooLarge, "File too large", err)
			return
		}
		respondError(c, http.StatusBadRequest, "Resume file is required", err)
		return
	}

	if h.maxUpload > 0 && header.Size > h.maxUpload {
		respondError(c, http.StatusRequestEntityTooLarge, "File too large", nil)
		return
	}

	if h.parser == nil {
		respondError(c, http.StatusServiceUnavailable, "Language model not configured", nil)
		return
	}

	text, mimeType, data, err := h.extractor.ExtractFile(header)
	if err != nil {
		h.logger.Warn("text extraction failed",
			zap.String("file", header.Filename),
			zap.String("mime", mimeType),
			zap.Error(err))
		respondError(c, statusFor(err), "Failed to read resume", err)
		return
	}

	h.logger.Info("resume received",
		zap.String("file", header.Filename),
		zap.String("mime", mimeType),
		zap.Int("chars", len(text)))

	profile, err := h.parser.ParseResume(c.Request.Context(), text)
	if err != nil {
		h.logger.Warn("resume parsing failed", zap.String("file", header.Filename), zap.Error(err))
		respondError(c, statusFor(err), "Failed to parse resume", err)
		return
	}

	resumeID := h.archive(c.Request.Context(), profile, header.Filename, mimeType, data)

	c.JSON(http.StatusOK, models.ResumeParseResponse{
		Success:  true,
		Data:     profile,
		Message:  "Resume parsed successfully",
		ResumeID: resumeID,
	})
}

// archive stores the upload and the parse result when archives are
// configured. Failures are logged and do not fail the request.
func (h *ResumeHandler) archive(ctx context.Context, profile models.ResumeProfile, filename, mimeType string, data []byte) string {
	if h.records == nil {
		return ""
	}

	record := &models.ResumeRecord{
		ID:        uuid.NewString(),
		Profile:   profile,
		FileName:  filename,
		CreatedAt: time.Now().UTC(),
	}

	if h.files != nil {
		url, err := h.files.UploadResume(ctx, record.ID, data, filename, mimeType)
		if err != nil {
			h.logger.Warn("resume upload failed", zap.String("resume_id", record.ID), zap.Error(err))
		} else {
			record.FileURL = url
		}
	}

	if err := h.records.SaveResume(ctx, record); err != nil {
		h.logger.Warn("resume archive failed", zap.String("resume_id", record.ID), zap.Error(err))
		return ""
	}

	return record.ID
}

// ListResumes returns archived parse results
// @Summary List archived resumes
// @Description List the most recent archived resume parse results, newest first
// @Tags Resume
// @Produce json
// @Param limit query int false "Maximum number of records" default(20)
// @Success 200 {object} models.ResumeListResponse "Archived resumes"
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 503 {object} models.ErrorResponse "Archive not configured"
// @Router /resumes [get]
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	if h.records == nil {
		respondError(c, http.StatusServiceUnavailable, "Resume archive not configured", nil)
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = n
	}

	records, err := h.records.ListResumes(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("listing resumes failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to list resumes", err)
		return
	}

	c.JSON(http.StatusOK, models.ResumeListResponse{Resumes: records})
}

// GetResume returns one archived parse result
// @Summary Get archived resume
// @Tags Resume
// @Produce json
// @Param resume_id path string true "Resume ID"
// @Success 200 {object} models.ResumeRecord "Archived resume"
// @Failure 404 {object} models.ErrorResponse "Resume not found"
// @Failure 503 {object} models.ErrorResponse "Archive not configured"
// @Router /resumes/{resume_id} [get]
func (h *ResumeHandler) GetResume(c *gin.Context) {
	if h.records == nil {
		respondError(c, http.StatusServiceUnavailable, "Resume archive not configured", nil)
		return
	}

	record, err := h.records.GetResume(c.Request.Context(), c.Param("resume_id"))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusNotFound {
			respondError(c, status, "Resume not found", err)
			return
		}
		respondError(c, status, "Failed to load resume", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteResume removes an archived parse result and its uploaded file
// @Summary Delete archived resume
// @Tags Resume
// @Produce json
// @Param resume_id path string true "Resume ID"
// @Success 200 {object} models.StatusResponse "Resume deleted"
// @Failure 404 {object} models.ErrorResponse "Resume not found"
// @Failure 503 {object} models.ErrorResponse "Archive not configured"
// @Router /resumes/{resume_id} [delete]
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	if h.records == nil {
		respondError(c, http.StatusServiceUnavailable, "Resume archive not configured", nil)
		return
	}

	ctx := c.Request.Context()
	record, err := h.records.GetResume(ctx, c.Param("resume_id"))
	if err != nil {
		respondError(c, statusFor(err), "Resume not found", err)
		return
	}

	if record.FileURL != "" && h.files != nil {
		if err := h.files.DeleteResume(ctx, record.FileURL); err != nil {
			h.logger.Warn("deleting uploaded file failed", zap.String("resume_id", record.ID), zap.Error(err))
		}
	}

	if err := h.records.DeleteResume(ctx, record.ID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete resume", err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		Success: true,
		Message: "Resume deleted",
	})
}
