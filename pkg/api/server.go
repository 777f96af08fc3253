// Package api is the HTTP surface: read-only event feeds, the editorial
// action endpoint, the CMS draft endpoint, the SSE push stream and the
// health/metrics probes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/radarpautas/radar/pkg/actions"
	"github.com/radarpautas/radar/pkg/cms"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/stream"
)

// Server carries the handler dependencies.
type Server struct {
	db          *database.Client
	cfg         *config.AppConfig
	actions     *actions.Service
	drafts      *cms.Builder
	connector   *cms.Connector
	broadcaster *stream.Broadcaster
	queues      *queue.Queues

	httpServer *http.Server
}

// NewServer wires the HTTP surface.
func NewServer(
	db *database.Client,
	cfg *config.AppConfig,
	actionSvc *actions.Service,
	drafts *cms.Builder,
	connector *cms.Connector,
	broadcaster *stream.Broadcaster,
	queues *queue.Queues,
) *Server {
	return &Server{
		db:          db,
		cfg:         cfg,
		actions:     actionSvc,
		drafts:      drafts,
		connector:   connector,
		broadcaster: broadcaster,
		queues:      queues,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = s.cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	r.Use(cors.New(corsCfg))

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/events", s.listEvents)
		apiGroup.GET("/plantao", s.listEvents)
		apiGroup.GET("/oceano-azul", s.listOceanoAzul)
		apiGroup.GET("/events/:id", s.eventDetail)
		apiGroup.GET("/events/:id/state-history", s.stateHistory)
		apiGroup.GET("/events/:id/merge-audit", s.mergeAudit)
		apiGroup.GET("/events/:id/feedback", s.feedbackHistory)
		apiGroup.GET("/dashboard/stats", s.dashboardStats)
	}

	r.POST("/cms/draft/:id", s.createDraft)
	r.POST("/feedback/:id/action", s.applyAction)
	r.GET("/events/stream", s.streamEvents)

	return r
}

// Start begins serving in the background.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.HTTPPort,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// health reports process and database liveness. A saturated pool degrades
// the report without failing the probe.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pool, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": pool,
			"error":    err.Error(),
		})
		return
	}
	status := "healthy"
	if pool.Status == database.PoolDegraded {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "database": pool})
}
