package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/handler/http/dto"
)

type ChatHandler struct {
	chat contract.IChatRepository
}

func NewChatHandler(chat contract.IChatRepository) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// ListMessages returns the global chat log in insertion order.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.chat.ListMessages(c.Request.Context()))
}

// Send appends a message as the session user. Blank text is dropped
// without error, mirroring the repository's no-op contract.
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.SendChatMessageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	message, err := h.chat.Send(c.Request.Context(), UserFromContext(c), req.Text)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to send message")
		return
	}
	if message == nil {
		MessageHandler(c, http.StatusOK, "Nothing to send")
		return
	}
	SuccessHandler(c, http.StatusCreated, message)
}
