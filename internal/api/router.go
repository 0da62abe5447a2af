package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphrag/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Graph       GraphService
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 1 << 20 // 1 MB
	rateLimit   = 100     // requests per second per IP
	rateBurst   = 200     // token bucket burst size
)

func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.Secure())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       1 * time.Hour,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	stats := deps.Graph.Stats(context.Background())
	health := NewHealthHandler(deps.Version, stats.Entities)
	graph := NewGraphHandler(deps.Graph, deps.Log)

	api.GET("/health", health.Liveness)
	api.GET("/stats", graph.Stats)

	api.GET("/entities", graph.Entities)
	api.GET("/entities/:name/edges", graph.Edges)

	api.Use(middleware.RequireJSON())
	api.GET("/graph/subgraph/:start", graph.Subgraph)
	api.POST("/graph/subgraph/batch", graph.Batch)
	api.POST("/graph/context", graph.Context)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
// Background middleware state lives until ctx is cancelled.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	// Match on the escaped path so entity names containing "/" stay one segment.
	r.UseRawPath = true
	r.UnescapePathValues = true

	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)
	r.NoRoute(noRoute)

	return r
}
