package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/handler/http/dto"
)

type ReviewHandler struct {
	reviews contract.IReviewRepository
}

func NewReviewHandler(reviews contract.IReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ListReviews returns every review.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.reviews.ListReviews(c.Request.Context()))
}

// GetMyReview returns the session user's review, if any.
func (h *ReviewHandler) GetMyReview(c *gin.Context) {
	user := UserFromContext(c)
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	review, ok := h.reviews.GetUserReview(c.Request.Context(), user.ID)
	if !ok {
		ErrorHandler(c, http.StatusNotFound, "No review yet")
		return
	}
	SuccessHandler(c, http.StatusOK, review)
}

// AddReview replaces the session user's review.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user := UserFromContext(c)
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	review, err := h.reviews.AddReview(c.Request.Context(), user.ID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidRating) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to save review")
		return
	}
	SuccessHandler(c, http.StatusCreated, review)
}
