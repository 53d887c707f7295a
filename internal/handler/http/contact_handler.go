package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/handler/http/dto"
)

type ContactHandler struct {
	inbox contract.IAdminMessageRepository
	users contract.IUserRepository
}

func NewContactHandler(inbox contract.IAdminMessageRepository, users contract.IUserRepository) *ContactHandler {
	return &ContactHandler{inbox: inbox, users: users}
}

// ListAdmins returns the roster entries holding an administrator role, for
// the contact page.
func (h *ContactHandler) ListAdmins(c *gin.Context) {
	admins := make([]entity.User, 0)
	for _, u := range h.users.ListUsers(c.Request.Context()) {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}
	SuccessHandler(c, http.StatusOK, admins)
}

// Send delivers a contact-form message to the administrator inbox.
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	message, err := h.inbox.Send(c.Request.Context(), UserFromContext(c), req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, entity.ErrNotAuthenticated) {
			ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to send message")
		return
	}
	SuccessHandler(c, http.StatusCreated, message)
}

// ListMessages returns the administrator inbox.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.inbox.ListMessages(c.Request.Context()))
}
