package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/mongodb"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"blog-backend/internal/domains/comment"
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

const cachePrefix = "blog:"

// Container holds every dependency of the application.
// Build order matters: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Mongo      *mongodb.MongoDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo    user.Repository
	PostRepo    post.Repository
	CommentRepo comment.Repository

	// Services
	UserService    user.Service
	PostService    post.Service
	CommentService comment.Service

	// Handlers
	UserHandler    *userHandler.UserHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
}

// NewContainer builds the dependency graph for cfg. With the memory storage
// driver no external service is contacted.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		return NewInMemory(cfg), nil
	}

	logger.Info("Initializing DI container", map[string]interface{}{"env": cfg.App.Environment})
	c := &Container{Config: cfg}

	if err := c.initPostgres(); err != nil {
		c.Cleanup()
		return nil, err
	}
	if err := c.initMongo(); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initRedis()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	c.initServices()
	c.initHandlers()

	logger.Info("DI container initialized", map[string]interface{}{"user_store": c.Config.Storage.UserStore, "cache": c.Cache != nil})
	return c, nil
}

// NewInMemory wires the same services over process local stores.
func NewInMemory(cfg *config.Config) *Container {
	c := &Container{
		Config:     cfg,
		JWTManager: jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry),
	}

	comments := commentRepo.NewMemoryRepository()
	c.UserRepo = userRepo.NewMemoryRepository()
	c.CommentRepo = comments
	c.PostRepo = postRepo.NewMemoryRepository(comments)

	c.initServices()
	c.initHandlers()

	logger.Info("DI container initialized", map[string]interface{}{"storage": config.StorageMemory})
	return c
}

func (c *Container) initPostgres() error {
	dbConfig, err := c.Config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	logger.Info("PostgreSQL connected", map[string]interface{}{"database": dbConfig.DBName})
	return nil
}

func (c *Container) initMongo() error {
	if c.Config.Storage.UserStore != config.UserStoreMongo {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	m, err := mongodb.Connect(ctx, c.Config.Mongo.URI, c.Config.Mongo.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	c.Mongo = m

	logger.Info("MongoDB connected", map[string]interface{}{"database": c.Config.Mongo.Database})
	return nil
}

// initRedis leaves c.Cache nil when Redis is not configured or unreachable.
// The cache is optional, so a connection failure is only a warning.
func (c *Container) initRedis() {
	cfg := c.Config.Redis
	if cfg.Host == "" {
		logger.Info("Redis not configured, post cache disabled", nil)
		return
	}

	client := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{"host": cfg.Host, "error": err.Error()})
		_ = client.Close()
		return
	}

	c.Redis = client
	c.Cache = infraCache.NewRedisCache(client, cachePrefix)
	logger.Info("Redis connected", map[string]interface{}{"host": cfg.Host})
}

func (c *Container) initRepositories() error {
	pool := c.DB.Pool

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		repo, err := userRepo.NewMongoRepository(ctx, c.Mongo.DB)
		if err != nil {
			return err
		}
		c.UserRepo = repo
	} else {
		c.UserRepo = userRepo.NewPostgresRepository(pool)
	}

	c.PostRepo = postRepo.NewPostgresRepository(pool, c.Cache, c.Config.Redis.TTL)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	return nil
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Config.Security.BcryptCost)
	c.PostService = postService.NewPostService(c.PostRepo)
	// post repositories double as the comment domain's PostStore
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Health reports the state of every configured backing service as
// "healthy", "unhealthy" or "disabled". ok is false only when a required
// store is down; the cache never makes the service unhealthy.
func (c *Container) Health(ctx context.Context) (services map[string]string, ok bool) {
	services = map[string]string{
		"database": "disabled",
		"mongo":    "disabled",
		"redis":    "disabled",
	}
	ok = true

	if c.DB != nil {
		services["database"] = "healthy"
		if err := c.DB.HealthCheck(ctx); err != nil {
			services["database"] = "unhealthy"
			ok = false
		}
	}

	if c.Mongo != nil {
		services["mongo"] = "healthy"
		if err := c.Mongo.HealthCheck(ctx); err != nil {
			services["mongo"] = "unhealthy"
			ok = false
		}
	}

	if c.Cache != nil {
		services["redis"] = "healthy"
		if err := c.Cache.Ping(ctx); err != nil {
			services["redis"] = "unhealthy"
		}
	}

	return services, ok
}

// Cleanup releases every connection the container opened. Safe to call on a
// partially built container.
func (c *Container) Cleanup() {
	logger.Info("Cleaning up container resources", nil)

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("Failed to close PostgreSQL", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			logger.Warn("Failed to close MongoDB", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("Failed to close Redis", map[string]interface{}{"error": err.Error()})
		}
	}

	logger.Info("Container cleanup completed", nil)
}
