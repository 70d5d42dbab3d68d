// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, compression,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/jujurly/go-feedback-backend/internal/config"
	"github.com/jujurly/go-feedback-backend/internal/domain"
	"github.com/jujurly/go-feedback-backend/internal/enrich"
	"github.com/jujurly/go-feedback-backend/internal/http/handlers"
	"github.com/jujurly/go-feedback-backend/internal/http/middleware"
	"github.com/jujurly/go-feedback-backend/internal/repo"
	"github.com/jujurly/go-feedback-backend/internal/services"
)

// userRepoShim adapts the repository free functions to the services.UserRepo
// interface. This keeps services decoupled from the concrete repo package
// while reusing the existing functions.
type userRepoShim struct{}

func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, username, email, passwordHash, linkID string) (*domain.User, error) {
	return repo.CreateUser(ctx, db, username, email, passwordHash, linkID)
}

func (userRepoShim) CreateLinkOnlyUser(ctx context.Context, db *gorm.DB, linkID string) (*domain.User, error) {
	return repo.CreateLinkOnlyUser(ctx, db, linkID)
}

func (userRepoShim) FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.FindUserByUsername(ctx, db, username)
}

func (userRepoShim) FindUserByLinkID(ctx context.Context, db *gorm.DB, linkID string) (*domain.User, error) {
	return repo.FindUserByLinkID(ctx, db, linkID)
}

func (userRepoShim) FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	return repo.FindUserByEmail(ctx, db, email)
}

func (userRepoShim) FindUserByUsernameOrEmail(ctx context.Context, db *gorm.DB, identifier string) (*domain.User, error) {
	return repo.FindUserByUsernameOrEmail(ctx, db, identifier)
}

func (userRepoShim) LinkIDExists(ctx context.Context, db *gorm.DB, linkID string) (bool, error) {
	return repo.LinkIDExists(ctx, db, linkID)
}

// feedbackRepoShim adapts the repository free functions to the
// services.FeedbackRepo interface.
type feedbackRepoShim struct{}

func (feedbackRepoShim) CreateFeedback(ctx context.Context, db *gorm.DB, fb *domain.Feedback) (*domain.Feedback, error) {
	return repo.CreateFeedback(ctx, db, fb)
}

func (feedbackRepoShim) ListFeedbackForUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Feedback, error) {
	return repo.ListFeedbackForUser(ctx, db, userID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// compression, CORS and security headers, health and metrics endpoints, and
// then mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. Gzip compression for listing payloads
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, summarizer enrich.Summarizer, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) Response compression (listings with many items benefit most)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps
		// tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist.
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, isAllowed := allowed[origin]; isAllowed {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in; never exposed unless configured)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/summarizer
	userSvc := services.NewUserService(db, userRepoShim{})
	fbSvc := services.NewFeedbackService(db, feedbackRepoShim{}, summarizer)
	h := handlers.New(userSvc, fbSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Users
		api.GET("/user/lookup/:identifier", h.LookupUser)
		api.GET("/userlookup/:identifier", h.LookupUser) // legacy alias
		api.POST("/users", h.QuickCreateUser)

		// Feedback
		api.POST("/feedback/:identifier", h.SubmitFeedback)
		api.GET("/users/:identifier/feedbacks", h.ListFeedbacks)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
