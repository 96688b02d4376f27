package comment

import (
	"context"
)

// Repository is the comment store contract.
type Repository interface {
	Create(ctx context.Context, c *Comment) error

	// FindByIDAndPost looks a comment up scoped to its post, so a comment id
	// paired with the wrong post id is ErrCommentNotFound.
	FindByIDAndPost(ctx context.Context, id, postID string) (*Comment, error)

	Update(ctx context.Context, c *Comment) error

	// Delete returns ErrCommentNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}

// PostStore is the slice of the post store comments depend on.
type PostStore interface {
	Exists(ctx context.Context, postID string) (bool, error)

	// InvalidateCache drops any cached copy of the post and the listing.
	InvalidateCache(ctx context.Context, postID string)
}
