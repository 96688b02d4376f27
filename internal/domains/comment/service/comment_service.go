package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/guard"
	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/logger"
)

type commentService struct {
	repo  comment.Repository
	posts comment.PostStore
	now   func() time.Time
}

func NewCommentService(repo comment.Repository, posts comment.PostStore) comment.Service {
	return &commentService{
		repo:  repo,
		posts: posts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *commentService) Add(ctx context.Context, postID string, actor middleware.Identity, req comment.CreateCommentRequest) (*comment.CommentResponse, error) {
	if err := guard.RequireFields(guard.Required("postId", postID)); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, guard.BadRequest(messages.CommentRequiredFields)
	}

	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if err := guard.Assert(exists, http.StatusNotFound, messages.CommentPostNotFound); err != nil {
		return nil, err
	}

	now := s.now()
	c := &comment.Comment{
		ID:             uuid.NewString(),
		PostID:         postID,
		Content:        req.Content,
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.posts.InvalidateCache(ctx, postID)

	logger.FromContext(ctx).Debug().Str("post_id", postID).Str("comment_id", c.ID).Msg("Comment added")

	res := c.ToResponse()
	return &res, nil
}

func (s *commentService) Update(ctx context.Context, postID, commentID string, actor middleware.Identity, req comment.UpdateCommentRequest) (*comment.CommentResponse, error) {
	c, err := s.load(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	if err := guard.EnsureOwner(c.AuthorID, actor.ID, messages.CommentForbiddenAuthor); err != nil {
		return nil, err
	}

	entries := req.Entries()
	if err := guard.NotNull(messages.CommentNullField, entries...); err != nil {
		return nil, err
	}
	updates := guard.PickDefined(entries...)
	if len(updates) == 0 {
		return nil, guard.BadRequest(messages.CommentNothingToUpdate)
	}

	if v, ok := updates["content"]; ok {
		c.Content = v.(string)
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			return nil, guard.NotFound(messages.CommentNotFound)
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	s.posts.InvalidateCache(ctx, postID)

	res := c.ToResponse()
	return &res, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID string, actor middleware.Identity) error {
	c, err := s.load(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if err := guard.EnsureOwner(c.AuthorID, actor.ID, messages.CommentForbiddenAuthor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, c.ID); err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			return guard.NotFound(messages.CommentNotFound)
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	s.posts.InvalidateCache(ctx, postID)

	return nil
}

// load resolves a comment within its post; unknown ids of either kind are 404.
func (s *commentService) load(ctx context.Context, postID, commentID string) (*comment.Comment, error) {
	if err := guard.RequireFields(
		guard.Required("postId", postID),
		guard.Required("commentId", commentID),
	); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByIDAndPost(ctx, commentID, postID)
	if err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			return nil, guard.NotFound(messages.CommentNotFound)
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return c, nil
}
