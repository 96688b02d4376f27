package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
	"blog-backend/pkg/logger"
)

const listCacheKey = "posts:all"

func postCacheKey(id string) string {
	return "post:" + id
}

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache // nil disables caching
	cacheTTL time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) post.Repository {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: ttl,
	}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, title, content, author_id, author_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Content,
		p.AuthorID,
		p.AuthorUsername,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	r.invalidate(ctx, listCacheKey)
	return nil
}

// List reads posts and comments in one snapshot so every comment belongs to
// a listed post.
func (r *postgresRepository) List(ctx context.Context) ([]post.Post, error) {
	var cached []post.Post
	if r.cacheGet(ctx, listCacheKey, &cached) {
		return cached, nil
	}

	posts, err := database.WithTransactionResult(ctx, r.pool, database.SnapshotRead, func(tx pgx.Tx) ([]post.Post, error) {
		rows, err := tx.Query(ctx, `
			SELECT id, title, content, author_id, author_username, created_at, updated_at
			FROM posts
			ORDER BY created_at DESC, id
		`)
		if err != nil {
			return nil, fmt.Errorf("query posts: %w", err)
		}
		posts, err := pgx.CollectRows(rows, scanPost)
		if err != nil {
			return nil, fmt.Errorf("scan posts: %w", err)
		}

		ids := make([]string, len(posts))
		for i := range posts {
			ids[i] = posts[i].ID
		}
		byPost, err := commentsFor(ctx, tx, ids)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			posts[i].Comments = nonNil(byPost[posts[i].ID])
		}
		return posts, nil
	})
	if err != nil {
		return nil, err
	}

	r.cacheSet(ctx, listCacheKey, posts)
	return posts, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var cached post.Post
	if r.cacheGet(ctx, postCacheKey(id), &cached) {
		return &cached, nil
	}

	p, err := database.WithTransactionResult(ctx, r.pool, database.SnapshotRead, func(tx pgx.Tx) (*post.Post, error) {
		rows, err := tx.Query(ctx, `
			SELECT id, title, content, author_id, author_username, created_at, updated_at
			FROM posts
			WHERE id = $1
		`, id)
		if err != nil {
			return nil, fmt.Errorf("query post: %w", err)
		}
		p, err := pgx.CollectExactlyOneRow(rows, scanPost)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, post.ErrPostNotFound
			}
			return nil, fmt.Errorf("scan post: %w", err)
		}

		byPost, err := commentsFor(ctx, tx, []string{id})
		if err != nil {
			return nil, err
		}
		p.Comments = nonNil(byPost[id])
		return &p, nil
	})
	if err != nil {
		return nil, err
	}

	r.cacheSet(ctx, postCacheKey(id), p)
	return p, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check post: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts SET title = $2, content = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Title, p.Content, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	r.InvalidateCache(ctx, p.ID)
	return nil
}

// Delete relies on ON DELETE CASCADE to remove the comments.
func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	r.InvalidateCache(ctx, id)
	return nil
}

func (r *postgresRepository) InvalidateCache(ctx context.Context, id string) {
	r.invalidate(ctx, postCacheKey(id), listCacheKey)
}

func scanPost(row pgx.CollectableRow) (post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func commentsFor(ctx context.Context, tx pgx.Tx, postIDs []string) (map[string][]comment.Comment, error) {
	out := make(map[string][]comment.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	rows, err := tx.Query(ctx, `
		SELECT id, post_id, content, author_id, author_username, created_at, updated_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY created_at ASC, id
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.Content,
			&c.AuthorID,
			&c.AuthorUsername,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out[c.PostID] = append(out[c.PostID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}

func nonNil(c []comment.Comment) []comment.Comment {
	if c == nil {
		return []comment.Comment{}
	}
	return c
}

// Cache failures are logged and never fail the request.

func (r *postgresRepository) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if r.cache == nil {
		return false
	}
	found, err := r.cache.Get(ctx, key, dest)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return false
	}
	return found
}

func (r *postgresRepository) cacheSet(ctx context.Context, key string, value interface{}) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, value, r.cacheTTL); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

func (r *postgresRepository) invalidate(ctx context.Context, keys ...string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}
