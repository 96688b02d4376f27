package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/guard"
	"blog-backend/internal/shared/messages"
	"blog-backend/pkg/logger"
)

// ErrorBody is the only error shape the API emits.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Success responses

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{Error: message})
}

func MethodNotAllowed(c *gin.Context, message string) {
	c.JSON(http.StatusMethodNotAllowed, ErrorBody{Error: message})
}

// Internal answers 500 with a fixed message and the underlying error text
// as details. Only the message text is exposed, never stack or values.
func Internal(c *gin.Context, err error, fallback string) {
	if fallback == "" {
		fallback = messages.Internal
	}
	body := ErrorBody{Error: fallback}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

var statusWriters = map[int]func(*gin.Context, string){
	http.StatusBadRequest:   BadRequest,
	http.StatusUnauthorized: Unauthorized,
	http.StatusForbidden:    Forbidden,
	http.StatusNotFound:     NotFound,
	http.StatusConflict:     Conflict,
}

// Error is the failure boundary of every handler. A *guard.Error is written
// with its own status; everything else becomes a 500 with fallback as the
// message.
func Error(c *gin.Context, err error, fallback string) {
	var ge *guard.Error
	if errors.As(err, &ge) {
		if write, ok := statusWriters[ge.Status]; ok {
			write(c, ge.Message)
			return
		}
	}

	log := logger.FromContext(c.Request.Context())
	log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
	Internal(c, err, fallback)
}
