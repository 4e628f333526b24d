package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sahayai/internal/config"
	"sahayai/internal/domain"
	"sahayai/internal/service"
)

// DocumentHandler handles the document analysis endpoint.
type DocumentHandler struct {
	insightService service.InsightService
	maxFileBytes   int64
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(insightService service.InsightService, cfg *config.UploadConfig) *DocumentHandler {
	return &DocumentHandler{
		insightService: insightService,
		maxFileBytes:   cfg.MaxFileSizeMB * 1024 * 1024,
	}
}

// Process handles POST /api/v1/documents/process
// @Summary Analyze a legal document
// @Description Extract text from an uploaded PDF or image (with OCR) and return a structured AI analysis from the given party's perspective
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to analyze (pdf, jpg, jpeg, png, gif, bmp, tiff)"
// @Param user_role formData string true "Requesting party's legal standing" Enums(plaintiff, defendant)
// @Success 200 {object} APIResponse{data=InsightDocument} "Structured insight, or an error payload when no text/insight could be produced"
// @Failure 400 {object} APIResponse "Missing file or invalid role"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 415 {object} APIResponse "Unsupported file type"
// @Router /documents/process [post]
func (h *DocumentHandler) Process(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "no file part in the request")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "no file selected")
		return
	}
	if header.Size > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	roleValue := strings.ToLower(c.PostForm("user_role"))
	if roleValue == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "no user role specified")
		return
	}
	role := domain.Role(roleValue)
	if !domain.ValidAnalysisRoles[role] {
		HandleError(c, domain.ErrInvalidRole)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}

	result, err := h.insightService.Process(c.Request.Context(), service.ProcessInput{
		Data:     data,
		Filename: header.Filename,
		Role:     role,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result.Payload())
}
