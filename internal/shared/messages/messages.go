// Package messages is the catalog of user facing error messages.
// Handlers and services never inline message text; they reference these constants.
package messages

// Authentication
const (
	AuthMissingToken   = "missing token"
	AuthInvalidFormat  = "invalid token format (Bearer <token>)"
	AuthInvalidScheme  = "invalid token format (scheme must be Bearer)"
	AuthInvalidToken   = "invalid or expired token"
	AuthRequiredFields = "username and password are required"
	AuthRegisterFields = "name, username and password are required"
	AuthBadCredentials = "invalid credentials"
	AuthUsernameTaken  = "username already in use"
	AuthPasswordLength = "password must be at most 72 bytes"
	AuthRegisterFailed = "failed to register user"
	AuthLoginFailed    = "failed to authenticate"
)

// Posts
const (
	PostNotFound        = "post not found"
	PostRequiredFields  = "title and content are required"
	PostForbiddenAuthor = "you are not the author of this post"
	PostNothingToUpdate = "nothing to update"
	PostNullField       = "post fields cannot be null"

	PostCreateFailed = "failed to create post"
	PostListFailed   = "failed to list posts"
	PostGetFailed    = "failed to fetch post"
	PostUpdateFailed = "failed to update post"
	PostDeleteFailed = "failed to delete post"
)

// Comments
const (
	CommentPostNotFound    = "post not found"
	CommentRequiredFields  = "content is required"
	CommentNotFound        = "comment not found"
	CommentForbiddenAuthor = "you are not the author of this comment"
	CommentNothingToUpdate = "nothing to update"
	CommentNullField       = "comment content cannot be null"

	CommentCreateFailed = "failed to add comment"
	CommentUpdateFailed = "failed to update comment"
	CommentDeleteFailed = "failed to delete comment"
)

// Generic
const (
	Internal           = "an internal error occurred"
	RouteNotFound      = "route not found"
	MethodNotAllowed   = "method not allowed"
	MissingField       = "missing required field: "
	InvalidRequestBody = "invalid request body"
)
