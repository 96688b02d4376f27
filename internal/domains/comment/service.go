package comment

import (
	"context"

	"blog-backend/internal/shared/middleware"
)

type Service interface {
	Add(ctx context.Context, postID string, actor middleware.Identity, req CreateCommentRequest) (*CommentResponse, error)
	Update(ctx context.Context, postID, commentID string, actor middleware.Identity, req UpdateCommentRequest) (*CommentResponse, error)
	Delete(ctx context.Context, postID, commentID string, actor middleware.Identity) error
}
