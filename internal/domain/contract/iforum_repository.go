package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IForumRepository owns the forumThreads and forumComments collections and
// keeps the derived thread fields (commentCount, lastActivityAt) consistent
// on every comment write.
type IForumRepository interface {
	// ListThreads returns all threads ordered by lastActivityAt descending.
	ListThreads(ctx context.Context) []entity.ForumThread
	// GetThread retrieves one thread. Fails with entity.ErrThreadNotFound.
	GetThread(ctx context.Context, threadID string) (*entity.ForumThread, error)
	// CreateThread starts a thread authored by author. Fails with
	// entity.ErrNotAuthenticated when author is nil.
	CreateThread(ctx context.Context, author *entity.User, title, content string) (*entity.ForumThread, error)
	// ListComments returns a thread's comments ordered by createdAt ascending.
	ListComments(ctx context.Context, threadID string) []entity.ForumComment
	// AddComment appends a comment and, in the same synchronous step, bumps the
	// parent thread's commentCount by one and its lastActivityAt to the new
	// comment's timestamp. Fails with entity.ErrNotAuthenticated or
	// entity.ErrThreadNotFound.
	AddComment(ctx context.Context, author *entity.User, threadID, content string) (*entity.ForumComment, error)
}
