package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/guard"
)

// CreateCommentRequest - POST /posts/:postId/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

// UpdateCommentRequest - PUT /posts/:postId/comments/:commentId
// Only content is updatable; author and post are fixed at creation.
type UpdateCommentRequest struct {
	Content guard.Optional[string] `json:"content"`
}

func (r UpdateCommentRequest) Entries() []guard.Entry {
	return []guard.Entry{guard.Pick("content", r.Content)}
}

type CommentResponse struct {
	ID             string    `json:"id"`
	PostID         string    `json:"postId"`
	Content        string    `json:"content"`
	ContentHTML    string    `json:"contentHtml"`
	AuthorID       string    `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
