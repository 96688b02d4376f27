package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/guard"
	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/middleware"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) FindByIDAndPost(ctx context.Context, id, postID string) (*comment.Comment, error) {
	args := m.Called(ctx, id, postID)
	c, _ := args.Get(0).(*comment.Comment)
	return c, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPosts struct {
	mock.Mock
}

func (m *mockPosts) Exists(ctx context.Context, postID string) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPosts) InvalidateCache(ctx context.Context, postID string) {
	m.Called(ctx, postID)
}

var (
	alice = middleware.Identity{ID: "u1", Username: "alice"}
	bob   = middleware.Identity{ID: "u2", Username: "bob"}
)

func storedComment() *comment.Comment {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &comment.Comment{
		ID:             "c1",
		PostID:         "p1",
		Content:        "first",
		AuthorID:       alice.ID,
		AuthorUsername: alice.Username,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
}

func assertGuard(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var gerr *guard.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, status, gerr.Status)
	assert.Equal(t, msg, gerr.Message)
}

func decodeUpdate(t *testing.T, body string) comment.UpdateCommentRequest {
	t.Helper()
	var req comment.UpdateCommentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &mockRepository{}
		posts := &mockPosts{}
		posts.On("Exists", ctx, "p1").Return(true, nil)
		posts.On("InvalidateCache", ctx, "p1").Return()
		repo.On("Create", ctx, mock.MatchedBy(func(c *comment.Comment) bool {
			return c.PostID == "p1" && c.AuthorID == "u2" && c.AuthorUsername == "bob"
		})).Return(nil)

		res, err := NewCommentService(repo, posts).Add(ctx, "p1", bob, comment.CreateCommentRequest{Content: "hi"})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "hi", res.Content)
		repo.AssertExpectations(t)
		posts.AssertExpectations(t)
	})

	t.Run("missing content", func(t *testing.T) {
		repo := &mockRepository{}
		posts := &mockPosts{}

		_, err := NewCommentService(repo, posts).Add(ctx, "p1", bob, comment.CreateCommentRequest{})

		assertGuard(t, err, http.StatusBadRequest, messages.CommentRequiredFields)
		posts.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("unknown post creates nothing", func(t *testing.T) {
		repo := &mockRepository{}
		posts := &mockPosts{}
		posts.On("Exists", ctx, "nope").Return(false, nil)

		_, err := NewCommentService(repo, posts).Add(ctx, "nope", bob, comment.CreateCommentRequest{Content: "hi"})

		assertGuard(t, err, http.StatusNotFound, messages.CommentPostNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty post id", func(t *testing.T) {
		_, err := NewCommentService(&mockRepository{}, &mockPosts{}).Add(ctx, "", bob, comment.CreateCommentRequest{Content: "hi"})
		assertGuard(t, err, http.StatusBadRequest, messages.MissingField+"postId")
	})

	t.Run("lookup failure", func(t *testing.T) {
		posts := &mockPosts{}
		posts.On("Exists", ctx, "p1").Return(false, errors.New("db down"))

		_, err := NewCommentService(&mockRepository{}, posts).Add(ctx, "p1", bob, comment.CreateCommentRequest{Content: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("author updates", func(t *testing.T) {
		repo := &mockRepository{}
		posts := &mockPosts{}
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(storedComment(), nil)
		repo.On("Update", ctx, mock.MatchedBy(func(c *comment.Comment) bool { return c.Content == "edited" })).Return(nil)
		posts.On("InvalidateCache", ctx, "p1").Return()

		res, err := NewCommentService(repo, posts).Update(ctx, "p1", "c1", alice, decodeUpdate(t, `{"content":"edited"}`))

		require.NoError(t, err)
		assert.Equal(t, "edited", res.Content)
		assert.Equal(t, "u1", res.AuthorID)
		posts.AssertExpectations(t)
	})

	t.Run("comment of another post", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByIDAndPost", ctx, "c1", "p2").Return(nil, comment.ErrCommentNotFound)

		_, err := NewCommentService(repo, &mockPosts{}).Update(ctx, "p2", "c1", alice, decodeUpdate(t, `{"content":"x"}`))
		assertGuard(t, err, http.StatusNotFound, messages.CommentNotFound)
	})

	t.Run("non author", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(storedComment(), nil)

		_, err := NewCommentService(repo, &mockPosts{}).Update(ctx, "p1", "c1", bob, decodeUpdate(t, `{"content":"x"}`))

		assertGuard(t, err, http.StatusForbidden, messages.CommentForbiddenAuthor)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty update set", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(storedComment(), nil)

		_, err := NewCommentService(repo, &mockPosts{}).Update(ctx, "p1", "c1", alice, decodeUpdate(t, `{"postId":"p9"}`))

		assertGuard(t, err, http.StatusBadRequest, messages.CommentNothingToUpdate)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("explicit null", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(storedComment(), nil)

		_, err := NewCommentService(repo, &mockPosts{}).Update(ctx, "p1", "c1", alice, decodeUpdate(t, `{"content":null}`))
		assertGuard(t, err, http.StatusBadRequest, messages.CommentNullField)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes then second delete is not found", func(t *testing.T) {
		repo := &mockRepository{}
		posts := &mockPosts{}
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(storedComment(), nil).Once()
		repo.On("Delete", ctx, "c1").Return(nil).Once()
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(nil, comment.ErrCommentNotFound)
		posts.On("InvalidateCache", ctx, "p1").Return()

		svc := NewCommentService(repo, posts)
		require.NoError(t, svc.Delete(ctx, "p1", "c1", alice))

		err := svc.Delete(ctx, "p1", "c1", alice)
		assertGuard(t, err, http.StatusNotFound, messages.CommentNotFound)
	})

	t.Run("non author", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("FindByIDAndPost", ctx, "c1", "p1").Return(storedComment(), nil)

		err := NewCommentService(repo, &mockPosts{}).Delete(ctx, "p1", "c1", bob)

		assertGuard(t, err, http.StatusForbidden, messages.CommentForbiddenAuthor)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
