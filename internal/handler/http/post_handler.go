package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/handler/http/dto"
)

type PostHandler struct {
	posts contract.IPostRepository
}

func NewPostHandler(posts contract.IPostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListUserPosts returns a user's posts, newest first.
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.posts.ListByUser(c.Request.Context(), c.Param("id")))
}

// AddPost appends a photo post to the session user's profile.
func (h *PostHandler) AddPost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user := UserFromContext(c)
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	post, err := h.posts.AddPost(c.Request.Context(), user.ID, req.ImageURL, req.Caption)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to save post")
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}
