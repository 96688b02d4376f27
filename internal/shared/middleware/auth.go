package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
)

// Identity is the authenticated caller of the current request.
type Identity struct {
	ID       string
	Username string
}

// TokenValidator verifies a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

const identityKey = "identity"

type identityCtxKey struct{}

// AuthMiddleware - verifies the bearer JWT and sets the caller Identity
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorization header must be present
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, messages.AuthMissingToken)
			c.Abort()
			return
		}

		// 2. Exactly "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			response.Unauthorized(c, messages.AuthInvalidFormat)
			c.Abort()
			return
		}
		if parts[0] != "Bearer" {
			response.Unauthorized(c, messages.AuthInvalidScheme)
			c.Abort()
			return
		}

		// 3. Signature, expiry and subject
		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, messages.AuthInvalidToken)
			c.Abort()
			return
		}

		// 4. Identity for downstream handlers
		identity := Identity{ID: claims.Subject, Username: claims.Username}
		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// GetIdentity returns the identity set by AuthMiddleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}
