package repository

import (
	"context"
	"sort"
	"sync"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
)

// CommentStore is what the in-memory post store needs to nest and cascade
// comments.
type CommentStore interface {
	ListByPosts(ctx context.Context, postIDs ...string) (map[string][]comment.Comment, error)
	DeleteByPost(ctx context.Context, postID string) error
}

type memoryRepository struct {
	mu       sync.RWMutex
	posts    map[string]post.Post
	comments CommentStore
}

func NewMemoryRepository(comments CommentStore) post.Repository {
	return &memoryRepository{
		posts:    make(map[string]post.Post),
		comments: comments,
	}
}

func (r *memoryRepository) Create(ctx context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.Comments = nil
	r.posts[p.ID] = stored
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]post.Post, error) {
	r.mu.RLock()
	posts := make([]post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, p)
	}
	r.mu.RUnlock()

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	byPost, err := r.comments.ListByPosts(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Comments = nonNil(byPost[posts[i].ID])
	}
	return posts, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	r.mu.RLock()
	p, ok := r.posts[id]
	r.mu.RUnlock()
	if !ok {
		return nil, post.ErrPostNotFound
	}

	byPost, err := r.comments.ListByPosts(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Comments = nonNil(byPost[id])
	return &p, nil
}

func (r *memoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.posts[id]
	return ok, nil
}

func (r *memoryRepository) Update(ctx context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[p.ID]
	if !ok {
		return post.ErrPostNotFound
	}
	stored.Title = p.Title
	stored.Content = p.Content
	stored.UpdatedAt = p.UpdatedAt
	r.posts[p.ID] = stored
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	if err := r.comments.DeleteByPost(ctx, id); err != nil {
		return err
	}
	delete(r.posts, id)
	return nil
}

func (r *memoryRepository) InvalidateCache(ctx context.Context, id string) {}
