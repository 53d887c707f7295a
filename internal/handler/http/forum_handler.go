package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/handler/http/dto"
)

type ForumHandler struct {
	forum contract.IForumRepository
}

func NewForumHandler(forum contract.IForumRepository) *ForumHandler {
	return &ForumHandler{forum: forum}
}

// ListThreads returns all threads, most recently active first.
func (h *ForumHandler) ListThreads(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.forum.ListThreads(c.Request.Context()))
}

// GetThread returns one thread by id.
func (h *ForumHandler) GetThread(c *gin.Context) {
	thread, err := h.forum.GetThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "Thread not found")
		return
	}
	SuccessHandler(c, http.StatusOK, thread)
}

// CreateThread starts a thread authored by the session user.
func (h *ForumHandler) CreateThread(c *gin.Context) {
	var req dto.CreateThreadRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	thread, err := h.forum.CreateThread(c.Request.Context(), UserFromContext(c), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, entity.ErrNotAuthenticated) {
			ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create thread")
		return
	}
	SuccessHandler(c, http.StatusCreated, thread)
}

// ListComments returns a thread's comments, oldest first.
func (h *ForumHandler) ListComments(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.forum.ListComments(c.Request.Context(), c.Param("id")))
}

// AddComment replies to a thread as the session user.
func (h *ForumHandler) AddComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.forum.AddComment(c.Request.Context(), UserFromContext(c), c.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotAuthenticated):
			ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
		case errors.Is(err, entity.ErrThreadNotFound):
			ErrorHandler(c, http.StatusNotFound, "Thread not found")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to add comment")
		}
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}
