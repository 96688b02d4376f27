package handler

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/response"
)

// UserHandler serves the public authentication endpoints.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, messages.InvalidRequestBody)
		return
	}

	userDTO, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, messages.AuthRegisterFailed)
		return
	}

	response.Created(c, userDTO)
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, messages.InvalidRequestBody)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, messages.AuthLoginFailed)
		return
	}

	response.OK(c, res)
}
