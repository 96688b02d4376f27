package handler

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, messages.InvalidRequestBody)
		return
	}

	actor, _ := middleware.GetIdentity(c)
	res, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err, messages.PostCreateFailed)
		return
	}

	response.Created(c, res)
}

// List handles GET /posts
func (h *PostHandler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err, messages.PostListFailed)
		return
	}

	response.OK(c, res)
}

// Get handles GET /posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	res, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, messages.PostGetFailed)
		return
	}

	response.OK(c, res)
}

// Update handles PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req post.UpdatePostRequest
	bindErr := response.BindPatch(c, &req)

	actor, _ := middleware.GetIdentity(c)
	res, err := h.service.Update(c.Request.Context(), c.Param("id"), actor, req)
	if err != nil {
		response.PatchError(c, err, bindErr, messages.PostUpdateFailed)
		return
	}

	response.OK(c, res)
}

// Delete handles DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	actor, _ := middleware.GetIdentity(c)
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		response.Error(c, err, messages.PostDeleteFailed)
		return
	}

	response.NoContent(c)
}
