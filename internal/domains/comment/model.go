package comment

import (
	"time"

	"blog-backend/pkg/markdown"
)

// Comment belongs to exactly one post and is removed with it.
type Comment struct {
	ID             string    `json:"id"`
	PostID         string    `json:"postId"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:             c.ID,
		PostID:         c.PostID,
		Content:        c.Content,
		ContentHTML:    markdown.ToSafeHTML(c.Content),
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToResponses converts a slice, never returning nil so it encodes as [].
func ToResponses(comments []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, comments[i].ToResponse())
	}
	return out
}
