package response

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/guard"
	"blog-backend/internal/shared/messages"
)

// BindPatch decodes a partial update body into dst. A missing body is an
// empty update. On a malformed body dst is reset to its zero value and the
// decode error is returned, so the caller can still resolve the target
// resource before reporting it.
func BindPatch[T any](c *gin.Context, dst *T) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}

	if err := c.ShouldBindJSON(dst); err != nil {
		var zero T
		*dst = zero
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// PatchError is Error for updates whose body went through BindPatch. Lookup
// and ownership failures are reported as they are; a payload failure after a
// bad body is reported as the bad body.
func PatchError(c *gin.Context, err, bindErr error, fallback string) {
	var ge *guard.Error
	if bindErr != nil && errors.As(err, &ge) && ge.Status == http.StatusBadRequest {
		BadRequest(c, messages.InvalidRequestBody)
		return
	}
	Error(c, err, fallback)
}
