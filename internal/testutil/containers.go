// Package testutil starts throwaway backing services for integration tests.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/mongodb"
)

func start(t *testing.T, req testcontainers.ContainerRequest) (string, string) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start %s: %v", req.Image, err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, nat.Port(req.ExposedPorts[0]))
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	return host, port.Port()
}

// StartPostgres returns a migrated database.
func StartPostgres(t *testing.T) *database.PostgresDB {
	t.Helper()

	host, port := start(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "blog",
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_DB":       "blog_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	})

	p, _ := strconv.Atoi(port)
	db := database.NewPostgresDB(&database.DBConfig{
		Host:       host,
		Port:       p,
		Username:   "blog",
		Password:   "password",
		DBName:     "blog_test",
		SSLMode:    "disable",
		MaxConns:   5,
		MaxRetries: 5,
		RetryDelay: 500 * time.Millisecond,
	})
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("connect postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func StartMongo(t *testing.T) *mongodb.MongoDB {
	t.Helper()

	host, port := start(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})

	m, err := mongodb.Connect(context.Background(), fmt.Sprintf("mongodb://%s:%s", host, port), "authdb_test")
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = m.Close(context.Background()) })
	return m
}

func StartRedis(t *testing.T) *cache.RedisClient {
	t.Helper()

	host, port := start(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	})

	client := cache.NewRedisClient(host+":"+port, "", 0)
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
