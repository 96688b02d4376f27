package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, content, author_id, author_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.PostID,
		c.Content,
		c.AuthorID,
		c.AuthorUsername,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByIDAndPost(ctx context.Context, id, postID string) (*comment.Comment, error) {
	query := `
		SELECT id, post_id, content, author_id, author_username, created_at, updated_at
		FROM comments
		WHERE id = $1 AND post_id = $2
	`

	var c comment.Comment
	err := r.pool.QueryRow(ctx, query, id, postID).Scan(
		&c.ID,
		&c.PostID,
		&c.Content,
		&c.AuthorID,
		&c.AuthorUsername,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("query comment: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *comment.Comment) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1`,
		c.ID, c.Content, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}
