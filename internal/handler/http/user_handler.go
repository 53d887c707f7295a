package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/handler/http/dto"
)

type UserHandler struct {
	users contract.IUserRepository
}

func NewUserHandler(users contract.IUserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers returns the full roster for the admin panel.
func (h *UserHandler) ListUsers(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.users.ListUsers(c.Request.Context()))
}

// GetUser returns a single roster entry.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// UpdateUser replaces a roster entry. Profile edits are open to the entry's
// owner; role changes are restricted to the primary administrator and can
// neither touch another primary administrator nor grant that role.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	caller := UserFromContext(c)
	target, err := h.users.GetUserByID(c.Request.Context(), req.ID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}

	newRole := entity.Role(req.Role)
	if newRole.Rank() < 0 {
		ErrorHandler(c, http.StatusBadRequest, "Unknown role")
		return
	}
	if newRole != target.Role {
		switch {
		case caller == nil || !caller.IsPrimaryAdmin():
			ErrorHandler(c, http.StatusForbidden, "Only the primary administrator can change roles")
			return
		case target.IsPrimaryAdmin(), caller.ID == target.ID:
			ErrorHandler(c, http.StatusForbidden, "This account's role cannot be changed")
			return
		case newRole == entity.RoleAdminPrimario:
			ErrorHandler(c, http.StatusForbidden, "The primary administrator role cannot be granted")
			return
		}
	} else if caller == nil || (caller.ID != target.ID && !caller.IsAdmin()) {
		ErrorHandler(c, http.StatusForbidden, "Cannot edit another user's profile")
		return
	}

	updated := entity.User{
		ID:                 req.ID,
		Email:              req.Email,
		DisplayName:        req.DisplayName,
		PhotoURL:           req.PhotoURL,
		Role:               newRole,
		FavoriteCategories: req.FavoriteCategories,
	}
	if err := h.users.UpdateUser(c.Request.Context(), updated); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// DeleteUser removes a roster entry. Authored content elsewhere keeps its
// snapshots.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller := UserFromContext(c)
	target, err := h.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if target.IsPrimaryAdmin() || (caller != nil && caller.ID == target.ID) {
		ErrorHandler(c, http.StatusForbidden, "This account cannot be deleted")
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), target.ID); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}
