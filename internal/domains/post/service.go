package post

import (
	"context"

	"blog-backend/internal/shared/middleware"
)

type Service interface {
	Create(ctx context.Context, actor middleware.Identity, req CreatePostRequest) (*PostResponse, error)
	List(ctx context.Context) ([]PostResponse, error)
	Get(ctx context.Context, id string) (*PostResponse, error)
	Update(ctx context.Context, id string, actor middleware.Identity, req UpdatePostRequest) (*PostResponse, error)
	Delete(ctx context.Context, id string, actor middleware.Identity) error
}
