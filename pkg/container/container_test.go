package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Environment: "test"},
		Storage:  config.StorageConfig{Driver: config.StorageMemory},
		JWT:      config.JWTConfig{Secret: "secret", Expiry: time.Hour},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestNewContainerWithMemoryDriver(t *testing.T) {
	c, err := NewContainer(memoryConfig())
	require.NoError(t, err)

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Cache)
	assert.NotNil(t, c.UserHandler)
	assert.NotNil(t, c.PostHandler)
	assert.NotNil(t, c.CommentHandler)

	services, ok := c.Health(context.Background())
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"database": "disabled", "mongo": "disabled", "redis": "disabled"}, services)

	assert.NotPanics(t, c.Cleanup)
}
