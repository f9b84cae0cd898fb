// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	_ "gothampost/docs" // swagger docs
	"gothampost/internal/auth"
	"gothampost/internal/cache"
	"gothampost/internal/config"
	"gothampost/internal/database"
	"gothampost/internal/middleware"
	"gothampost/internal/models"
	"gothampost/internal/observability"
	"gothampost/internal/repository"
	"gothampost/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	issuer          *auth.TokenIssuer
	userRepo        repository.UserRepository
	postRepo        repository.PostRepository
	commentRepo     repository.CommentRepository
	likeRepo        repository.LikeRepository
	categoryRepo    repository.CategoryRepository
	authService     *service.AuthService
	userService     *service.UserService
	postService     *service.PostService
	commentService  *service.CommentService
	likeService     *service.LikeService
	categoryService *service.CategoryService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	// The signing key is validated here so a misconfigured deployment fails
	// at startup instead of on the first login.
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, auth.DefaultTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Initialize Prometheus metrics
	prom := fiberprometheus.New("gothampost-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		issuer:         issuer,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		likeRepo:       likeRepo,
		categoryRepo:   categoryRepo,
	}
	server.authService = service.NewAuthService(userRepo, issuer)
	server.userService = service.NewUserService(userRepo, postRepo)
	server.postService = service.NewPostService(postRepo, categoryRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo)
	server.likeService = service.NewLikeService(likeRepo, postRepo)
	server.categoryService = service.NewCategoryService(categoryRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID, User ID, and Role
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on
	// error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	authRoutes.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	authRoutes.Post("/logout", s.AuthRequired(), s.Logout)

	// Public read routes. Every read in the API is public; only writes
	// require authentication.
	publicPosts := api.Group("/posts")
	publicPosts.Get("/", s.GetPosts)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	publicPosts.Get("/:id/comments", s.GetPostComments)
	publicPosts.Get("/:id/likes", s.GetPostLikes)
	publicPosts.Get("/:id", s.GetPost)

	publicCategories := api.Group("/categories")
	publicCategories.Get("/", s.GetCategories)
	publicCategories.Get("/:id/posts", s.GetCategoryPosts)
	publicCategories.Get("/:id", s.GetCategory)

	publicComments := api.Group("/comments")
	publicComments.Get("/", s.GetComments)
	publicComments.Get("/:id", s.GetComment)

	publicLikes := api.Group("/likes")
	publicLikes.Get("/", s.GetLikes)
	publicLikes.Get("/:id", s.GetLike)

	publicUsers := api.Group("/users")
	publicUsers.Get("/", s.GetUsers)
	// /me carries its own auth guard and is registered before /:id so the
	// literal segment wins; the user reads below stay public.
	publicUsers.Get("/me", s.AuthRequired(), s.GetMyProfile)
	publicUsers.Put("/me", s.AuthRequired(), s.UpdateMyProfile)
	publicUsers.Get("/:id/posts", s.GetUserPosts)
	publicUsers.Get("/:id", s.GetUser)

	// Protected routes. The group-level guard applies only to routes
	// registered through it, so every public read above must stay above.
	protected := api.Group("", s.AuthRequired())

	// User writes
	users := protected.Group("/users")
	users.Put("/:id/role", s.AdminRequired(), s.ChangeUserRole)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.AdminRequired(), s.DeleteUser)

	// Protected post routes
	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/like", s.LikePost)
	posts.Delete("/:id/like", s.UnlikePost)
	posts.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.AdminRequired(), s.DeletePost)

	// Protected comment routes
	comments := protected.Group("/comments")
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	// Protected like routes
	likes := protected.Group("/likes")
	likes.Delete("/:id", s.DeleteLike)

	// Category management, admin only
	categories := protected.Group("/categories", s.AdminRequired())
	categories.Post("/", s.CreateCategory)
	categories.Put("/:id", s.UpdateCategory)
	categories.Delete("/:id", s.DeleteCategory)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API degrades gracefully without Redis; report but stay ready.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It validates the bearer
// token, rejects revoked tokens, and stores the authenticated identity in
// locals. The role always comes from the token claim, never from the request.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			observability.AuthFailures.WithLabelValues("missing_token").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		identity, err := s.issuer.ValidateToken(tokenString)
		if err != nil {
			observability.AuthFailures.WithLabelValues("invalid_token").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// Check JTI for revocation
		if cache.IsTokenBlacklisted(c.Context(), identity.JTI) {
			observability.AuthFailures.WithLabelValues("revoked_token").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Token has been revoked"))
		}

		// Store identity in context
		c.Locals("userID", identity.UserID)
		c.Locals("role", string(identity.Role))
		c.Locals("jti", identity.JTI)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, identity.UserID)
		ctx = context.WithValue(ctx, middleware.RoleKey, string(identity.Role))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin callers with 403.
// Must be placed after AuthRequired so the role is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if models.UserRole(role) != models.RoleAdmin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

// Start builds the Fiber app, wires middleware and routes, and listens until
// Shutdown is called.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Gotham Post API",
		BodyLimit: 10 * 1024 * 1024, // 10MB limit
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close database connection
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
