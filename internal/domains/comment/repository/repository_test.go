package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/testutil"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newComment(id, postID string, offset time.Duration) *comment.Comment {
	return &comment.Comment{
		ID:             id,
		PostID:         postID,
		Content:        "comment " + id,
		AuthorID:       "u1",
		AuthorUsername: "alice",
		CreatedAt:      base.Add(offset),
		UpdatedAt:      base.Add(offset),
	}
}

// runRepositoryContract expects posts p1 and p2 to exist.
func runRepositoryContract(t *testing.T, repo comment.Repository) {
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newComment("c1", "p1", 0)))
	require.NoError(t, repo.Create(ctx, newComment("c2", "p2", 0)))

	t.Run("scoped lookup", func(t *testing.T) {
		c, err := repo.FindByIDAndPost(ctx, "c1", "p1")
		require.NoError(t, err)
		assert.Equal(t, "comment c1", c.Content)
		assert.Equal(t, "u1", c.AuthorID)

		_, err = repo.FindByIDAndPost(ctx, "c1", "p2")
		assert.ErrorIs(t, err, comment.ErrCommentNotFound)

		_, err = repo.FindByIDAndPost(ctx, "missing", "p1")
		assert.ErrorIs(t, err, comment.ErrCommentNotFound)
	})

	t.Run("update content only", func(t *testing.T) {
		c, err := repo.FindByIDAndPost(ctx, "c1", "p1")
		require.NoError(t, err)

		c.Content = "edited"
		c.UpdatedAt = base.Add(time.Hour)
		require.NoError(t, repo.Update(ctx, c))

		got, err := repo.FindByIDAndPost(ctx, "c1", "p1")
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
		assert.Equal(t, "p1", got.PostID)
		assert.True(t, got.UpdatedAt.Equal(base.Add(time.Hour)))

		assert.ErrorIs(t, repo.Update(ctx, newComment("missing", "p1", 0)), comment.ErrCommentNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "c2"))
		assert.ErrorIs(t, repo.Delete(ctx, "c2"), comment.ErrCommentNotFound)
	})
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	runRepositoryContract(t, repo)

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newComment("c3", "p1", 2*time.Minute)))
	require.NoError(t, repo.Create(ctx, newComment("c0", "p1", -time.Minute)))

	byPost, err := repo.ListByPosts(ctx, "p1", "p2")
	require.NoError(t, err)
	require.Len(t, byPost["p1"], 3)
	assert.Equal(t, "c0", byPost["p1"][0].ID)
	assert.Equal(t, "c1", byPost["p1"][1].ID)
	assert.Equal(t, "c3", byPost["p1"][2].ID)
	assert.Empty(t, byPost["p2"])

	require.NoError(t, repo.DeleteByPost(ctx, "p1"))
	byPost, err = repo.ListByPosts(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, byPost["p1"])
}

func TestPostgresRepository(t *testing.T) {
	db := testutil.StartPostgres(t)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2"} {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO posts (id, title, content, author_id, author_username) VALUES ($1, 't', 'c', 'u1', 'alice')`, id)
		require.NoError(t, err)
	}

	runRepositoryContract(t, NewPostgresRepository(db.Pool))
}
