package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/guard"
	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/logger"
)

type postService struct {
	repo post.Repository
	now  func() time.Time
}

func NewPostService(repo post.Repository) post.Service {
	return &postService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *postService) Create(ctx context.Context, actor middleware.Identity, req post.CreatePostRequest) (*post.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, guard.BadRequest(messages.PostRequiredFields)
	}

	now := s.now()
	p := &post.Post{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Content:        req.Content,
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.FromContext(ctx).Info().Str("post_id", p.ID).Str("author_id", p.AuthorID).Msg("Post created")

	res := p.ToResponse()
	return &res, nil
}

func (s *postService) List(ctx context.Context) ([]post.PostResponse, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	out := make([]post.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].ToResponse())
	}
	return out, nil
}

func (s *postService) Get(ctx context.Context, id string) (*post.PostResponse, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	res := p.ToResponse()
	return &res, nil
}

// Update checks existence, then ownership, then the payload, and only then
// writes.
func (s *postService) Update(ctx context.Context, id string, actor middleware.Identity, req post.UpdatePostRequest) (*post.PostResponse, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := guard.EnsureOwner(p.AuthorID, actor.ID, messages.PostForbiddenAuthor); err != nil {
		return nil, err
	}

	entries := req.Entries()
	if err := guard.NotNull(messages.PostNullField, entries...); err != nil {
		return nil, err
	}
	updates := guard.PickDefined(entries...)
	if len(updates) == 0 {
		return nil, guard.BadRequest(messages.PostNothingToUpdate)
	}

	if v, ok := updates["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := updates["content"]; ok {
		p.Content = v.(string)
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, guard.NotFound(messages.PostNotFound)
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	res := p.ToResponse()
	return &res, nil
}

func (s *postService) Delete(ctx context.Context, id string, actor middleware.Identity) error {
	p, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err := guard.EnsureOwner(p.AuthorID, actor.ID, messages.PostForbiddenAuthor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return guard.NotFound(messages.PostNotFound)
		}
		return fmt.Errorf("delete post: %w", err)
	}

	logger.FromContext(ctx).Info().Str("post_id", p.ID).Msg("Post deleted")
	return nil
}

func (s *postService) load(ctx context.Context, id string) (*post.Post, error) {
	if err := guard.RequireFields(guard.Required("id", id)); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, guard.NotFound(messages.PostNotFound)
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return p, nil
}
