package post

import (
	"context"
)

// Repository is the post store contract. Reads return posts with their
// comments nested oldest first.
type Repository interface {
	Create(ctx context.Context, p *Post) error

	// List returns every post, newest first.
	List(ctx context.Context) ([]Post, error)

	// FindByID returns ErrPostNotFound when absent.
	FindByID(ctx context.Context, id string) (*Post, error)

	Exists(ctx context.Context, id string) (bool, error)

	// Update persists title, content and updated_at.
	Update(ctx context.Context, p *Post) error

	// Delete removes the post and its comments.
	Delete(ctx context.Context, id string) error

	InvalidateCache(ctx context.Context, id string)
}
