package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/handler/http/dto"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	Me(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	users contract.IUserRepository
}

func NewAuthHandler(users contract.IUserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles account creation. The new user becomes the session user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrEmailInUse) {
			ErrorHandler(c, http.StatusConflict, "Email already in use")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, user)
}

// Login handles session creation. The password is accepted but not checked.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// Logout clears the session record.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.users.Logout(c.Request.Context()); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out")
}

// Me returns the current session user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.users.CurrentUser(c.Request.Context())
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}
