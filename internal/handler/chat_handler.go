package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sahayai/internal/service"
)

// ChatHandler handles the document Q&A endpoint.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat
// @Summary Ask a question about a document
// @Description Answer a question grounded only in the supplied document context, with direct-quote citations
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question, document context, and optional role"
// @Success 200 {object} APIResponse{data=domain.ChatAnswer}
// @Failure 400 {object} APIResponse "Missing question or context"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
		Context  string `json:"context" binding:"required"`
		UserRole string `json:"user_role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "'question' and 'context' are required")
		return
	}

	answer, err := h.chatService.Answer(c.Request.Context(), service.AnswerInput{
		Question: req.Question,
		Context:  req.Context,
		Role:     req.UserRole,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, answer)
}
