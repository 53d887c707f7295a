package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

// PostRepository owns the "posts" collection, the append-only log of
// per-user photo posts.
type PostRepository struct {
	mu    sync.Mutex
	store contract.IRecordStore
	log   contract.IAppLogger
	ids   contract.IIDGenerator
	clock contract.IClock
}

func NewPostRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	clock contract.IClock,
) *PostRepository {
	return &PostRepository{store: store, log: log, ids: ids, clock: clock}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func (r *PostRepository) all(ctx context.Context) []entity.UserPost {
	posts, _ := recordstore.Read[[]entity.UserPost](ctx, r.store, r.log, postsKey)
	return posts
}

// AddPost appends a post timestamped at call time. Posts are never mutated
// or removed.
func (r *PostRepository) AddPost(ctx context.Context, userID, imageURL, caption string) (*entity.UserPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := entity.UserPost{
		ID:        r.ids.NewID("post"),
		UserID:    userID,
		ImageURL:  imageURL,
		Caption:   caption,
		CreatedAt: r.clock.Now(),
	}
	if err := recordstore.Write(ctx, r.store, postsKey, append(r.all(ctx), post)); err != nil {
		return nil, fmt.Errorf("persisting posts: %w", err)
	}
	return &post, nil
}

// ListByUser returns a user's posts ordered by createdAt descending.
func (r *PostRepository) ListByUser(ctx context.Context, userID string) []entity.UserPost {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.UserPost, 0)
	for _, p := range r.all(ctx) {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ListAll returns every post in insertion order.
func (r *PostRepository) ListAll(ctx context.Context) []entity.UserPost {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(ctx)
}
