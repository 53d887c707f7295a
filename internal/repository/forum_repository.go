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

// ForumRepository owns the "forumThreads" and "forumComments" collections.
// The thread's commentCount and lastActivityAt are derived from its
// comments and updated in the same synchronous step as every comment write,
// so the invariant commentCount == count(comments) holds at all times.
type ForumRepository struct {
	mu    sync.Mutex
	store contract.IRecordStore
	log   contract.IAppLogger
	ids   contract.IIDGenerator
	clock contract.IClock
}

func NewForumRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	clock contract.IClock,
) *ForumRepository {
	return &ForumRepository{store: store, log: log, ids: ids, clock: clock}
}

var _ contract.IForumRepository = (*ForumRepository)(nil)

func (r *ForumRepository) threads(ctx context.Context) []entity.ForumThread {
	threads, _ := recordstore.Read[[]entity.ForumThread](ctx, r.store, r.log, forumThreadsKey)
	return threads
}

func (r *ForumRepository) comments(ctx context.Context) []entity.ForumComment {
	comments, _ := recordstore.Read[[]entity.ForumComment](ctx, r.store, r.log, forumCommentsKey)
	return comments
}

func sortThreads(threads []entity.ForumThread) {
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastActivityAt.After(threads[j].LastActivityAt)
	})
}

// ListThreads returns all threads ordered by lastActivityAt descending.
func (r *ForumRepository) ListThreads(ctx context.Context) []entity.ForumThread {
	r.mu.Lock()
	defer r.mu.Unlock()
	threads := r.threads(ctx)
	sortThreads(threads)
	return threads
}

// GetThread retrieves one thread by id.
func (r *ForumRepository) GetThread(ctx context.Context, threadID string) (*entity.ForumThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.threads(ctx) {
		if t.ID == threadID {
			return &t, nil
		}
	}
	return nil, entity.ErrThreadNotFound
}

// CreateThread starts a thread authored by author. The author's display
// fields are snapshotted onto the thread at write time.
func (r *ForumRepository) CreateThread(ctx context.Context, author *entity.User, title, content string) (*entity.ForumThread, error) {
	if author == nil {
		return nil, entity.ErrNotAuthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	thread := entity.ForumThread{
		ID:             r.ids.NewID("thr"),
		Title:          title,
		Content:        content,
		Author:         author.Snapshot(),
		CreatedAt:      now,
		LastActivityAt: now,
		CommentCount:   0,
	}
	threads := append(r.threads(ctx), thread)
	sortThreads(threads)
	if err := recordstore.Write(ctx, r.store, forumThreadsKey, threads); err != nil {
		return nil, fmt.Errorf("persisting threads: %w", err)
	}
	return &thread, nil
}

// ListComments returns a thread's comments ordered by createdAt ascending.
func (r *ForumRepository) ListComments(ctx context.Context, threadID string) []entity.ForumComment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.ForumComment, 0)
	for _, c := range r.comments(ctx) {
		if c.ThreadID == threadID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// AddComment appends a comment and, within the same call, bumps the parent
// thread's commentCount by exactly one and its lastActivityAt to the new
// comment's timestamp, re-sorting the thread list.
func (r *ForumRepository) AddComment(ctx context.Context, author *entity.User, threadID, content string) (*entity.ForumComment, error) {
	if author == nil {
		return nil, entity.ErrNotAuthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	threads := r.threads(ctx)
	idx := -1
	for i := range threads {
		if threads[i].ID == threadID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, entity.ErrThreadNotFound
	}

	now := r.clock.Now()
	comment := entity.ForumComment{
		ID:        r.ids.NewID("cmt"),
		ThreadID:  threadID,
		Content:   content,
		Author:    author.Snapshot(),
		CreatedAt: now,
	}
	if err := recordstore.Write(ctx, r.store, forumCommentsKey, append(r.comments(ctx), comment)); err != nil {
		return nil, fmt.Errorf("persisting comments: %w", err)
	}

	threads[idx].CommentCount++
	threads[idx].LastActivityAt = now
	sortThreads(threads)
	if err := recordstore.Write(ctx, r.store, forumThreadsKey, threads); err != nil {
		return nil, fmt.Errorf("persisting threads: %w", err)
	}
	return &comment, nil
}
