package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IPostRepository is the append-only log of per-user photo posts.
type IPostRepository interface {
	// AddPost appends a post timestamped at call time.
	AddPost(ctx context.Context, userID, imageURL, caption string) (*entity.UserPost, error)
	// ListByUser returns a user's posts ordered by createdAt descending.
	ListByUser(ctx context.Context, userID string) []entity.UserPost
	// ListAll returns every post in insertion order.
	ListAll(ctx context.Context) []entity.UserPost
}
