package post

import (
	"time"

	"blog-backend/internal/domains/comment"
	"blog-backend/pkg/markdown"
)

// Post is the article entity. Comments are loaded alongside on reads.
type Post struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Content        string            `json:"content"`
	AuthorID       string            `json:"authorId"`
	AuthorUsername string            `json:"authorUsername"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Comments       []comment.Comment `json:"comments"`
}

func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		ContentHTML:    markdown.ToSafeHTML(p.Content),
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Comments:       comment.ToResponses(p.Comments),
	}
}
