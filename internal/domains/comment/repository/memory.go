package repository

import (
	"context"
	"sort"
	"sync"

	"blog-backend/internal/domains/comment"
)

// MemoryRepository keeps comments in process. The in-memory post store uses
// ListByPosts and DeleteByPost to nest and cascade.
type MemoryRepository struct {
	mu       sync.RWMutex
	comments map[string]comment.Comment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{comments: make(map[string]comment.Comment)}
}

func (r *MemoryRepository) Create(ctx context.Context, c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.comments[c.ID] = *c
	return nil
}

func (r *MemoryRepository) FindByIDAndPost(ctx context.Context, id, postID string) (*comment.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.comments[id]
	if !ok || c.PostID != postID {
		return nil, comment.ErrCommentNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) Update(ctx context.Context, c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.comments[c.ID]
	if !ok {
		return comment.ErrCommentNotFound
	}
	stored.Content = c.Content
	stored.UpdatedAt = c.UpdatedAt
	r.comments[c.ID] = stored
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// ListByPosts groups the comments of the given posts, oldest first.
func (r *MemoryRepository) ListByPosts(ctx context.Context, postIDs ...string) (map[string][]comment.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = struct{}{}
	}

	out := make(map[string][]comment.Comment, len(postIDs))
	for _, c := range r.comments {
		if _, ok := wanted[c.PostID]; ok {
			out[c.PostID] = append(out[c.PostID], c)
		}
	}
	for id := range out {
		list := out[id]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].CreatedAt.Equal(list[j].CreatedAt) {
				return list[i].ID < list[j].ID
			}
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		})
	}
	return out, nil
}

func (r *MemoryRepository) DeleteByPost(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.comments {
		if c.PostID == postID {
			delete(r.comments, id)
		}
	}
	return nil
}
