package handler

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Add handles POST /posts/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, messages.InvalidRequestBody)
		return
	}

	actor, _ := middleware.GetIdentity(c)
	res, err := h.service.Add(c.Request.Context(), c.Param("id"), actor, req)
	if err != nil {
		response.Error(c, err, messages.CommentCreateFailed)
		return
	}

	response.Created(c, res)
}

// Update handles PUT /posts/:id/comments/:commentId
func (h *CommentHandler) Update(c *gin.Context) {
	var req comment.UpdateCommentRequest
	bindErr := response.BindPatch(c, &req)

	actor, _ := middleware.GetIdentity(c)
	res, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Param("commentId"), actor, req)
	if err != nil {
		response.PatchError(c, err, bindErr, messages.CommentUpdateFailed)
		return
	}

	response.OK(c, res)
}

// Delete handles DELETE /posts/:id/comments/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	actor, _ := middleware.GetIdentity(c)
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.Param("commentId"), actor); err != nil {
		response.Error(c, err, messages.CommentDeleteFailed)
		return
	}

	response.NoContent(c)
}
