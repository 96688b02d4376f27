package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/guard"
)

// CreatePostRequest - POST /posts
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

// UpdatePostRequest - PUT /posts/:id
// Absent keys are left alone. There is no author field, so the author can
// never change.
type UpdatePostRequest struct {
	Title   guard.Optional[string] `json:"title"`
	Content guard.Optional[string] `json:"content"`
}

func (r UpdatePostRequest) Entries() []guard.Entry {
	return []guard.Entry{
		guard.Pick("title", r.Title),
		guard.Pick("content", r.Content),
	}
}

type PostResponse struct {
	ID             string                    `json:"id"`
	Title          string                    `json:"title"`
	Content        string                    `json:"content"`
	ContentHTML    string                    `json:"contentHtml"`
	AuthorID       string                    `json:"authorId"`
	AuthorUsername string                    `json:"authorUsername"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
	Comments       []comment.CommentResponse `json:"comments"`
}
