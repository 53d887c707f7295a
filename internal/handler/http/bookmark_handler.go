package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
)

type BookmarkHandler struct {
	bookmarks contract.IBookmarkRepository
}

func NewBookmarkHandler(bookmarks contract.IBookmarkRepository) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// ListSaved returns the saved event ids for the current profile.
func (h *BookmarkHandler) ListSaved(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.bookmarks.List(c.Request.Context()))
}

// Toggle flips an event id in and out of the saved set and reports the
// resulting membership.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	eventID := c.Param("id")
	if err := h.bookmarks.Toggle(c.Request.Context(), eventID); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to toggle bookmark")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"eventId": eventID, "saved": h.bookmarks.IsSaved(c.Request.Context(), eventID)})
}
