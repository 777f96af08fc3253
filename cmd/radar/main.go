// Radar de Pautas server — schedules source fetches, runs the pipeline
// worker pools and serves the newsroom HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/radarpautas/radar/pkg/actions"
	"github.com/radarpautas/radar/pkg/alerts"
	"github.com/radarpautas/radar/pkg/api"
	"github.com/radarpautas/radar/pkg/bootstrap"
	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/cleanup"
	"github.com/radarpautas/radar/pkg/cms"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/extract"
	"github.com/radarpautas/radar/pkg/fetch"
	"github.com/radarpautas/radar/pkg/merge"
	"github.com/radarpautas/radar/pkg/organize"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/scheduler"
	"github.com/radarpautas/radar/pkg/scoring"
	"github.com/radarpautas/radar/pkg/state"
	"github.com/radarpautas/radar/pkg/stream"
	"github.com/radarpautas/radar/pkg/version"
	"github.com/radarpautas/radar/pkg/yield"
)

// workerPool is the lifecycle shape shared by every typed pool.
type workerPool interface {
	Start(ctx context.Context)
	Stop()
}

func main() {
	// Load .env when present; production deployments inject the environment.
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file, using process environment")
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting Radar de Pautas",
		"version", version.Full(),
		"env", cfg.Env,
		"http_port", cfg.HTTPPort)

	// 2. Database (runs schema migration on connect)
	db, err := database.NewClient(ctx, database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Shared counter cache (degrades to in-memory when Redis is down)
	counters, err := cache.New(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to initialize cache", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := counters.Close(); err != nil {
			slog.Error("Error closing cache", "error", err)
		}
	}()

	// 4. Catalog bootstrap (idempotent, only when a catalog file is given)
	if cfg.CatalogPath != "" {
		seeded, err := bootstrap.Run(ctx, db, cfg.CatalogPath)
		if err != nil {
			slog.Error("Catalog bootstrap failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Catalog bootstrap complete", "path", cfg.CatalogPath, "seeded", seeded)
	}

	// 5. Queues and pipeline services
	queues := queue.NewQueues(cfg.Queue.QueueCapacity)

	limiter := fetch.NewLimiter(counters)
	fetchSvc := fetch.NewService(db, queues, limiter)
	extractSvc := extract.NewService(queues)
	yieldMonitor := yield.NewMonitor(counters)
	organizeSvc := organize.NewService(db, queues, yieldMonitor)
	scoringSvc := scoring.NewService(db, queues)
	alertSvc := alerts.NewService(db, cfg)

	connector := cms.NewConnector(os.Getenv("CMS_API_URL"))
	drafter := cms.NewDrafter(db, connector)
	slog.Info("Pipeline services initialized")

	// 6. Worker pools, one per typed queue
	qc := cfg.Queue
	pools := []workerPool{
		queue.NewPool("fetch_fast", queues.FetchFast, qc.FetchFastWorkers, qc.TaskTimeout, fetchSvc.Handle),
		queue.NewPool("fetch_render", queues.FetchRender, qc.FetchRenderWorkers, qc.TaskTimeout, fetchSvc.Handle),
		queue.NewPool("fetch_deep", queues.FetchDeep, qc.FetchDeepWorkers, qc.TaskTimeout, fetchSvc.Handle),
		queue.NewPool("extract_fast", queues.ExtractFast, qc.ExtractFastWorkers, qc.TaskTimeout, extractSvc.Handle),
		queue.NewPool("extract_deep", queues.ExtractDeep, qc.ExtractDeepWorkers, qc.TaskTimeout, extractSvc.Handle),
		queue.NewPool("organize", queues.Organize, qc.OrganizeWorkers, qc.TaskTimeout, organizeSvc.Handle),
		queue.NewPool("score", queues.Score, qc.ScoreWorkers, qc.TaskTimeout, scoringSvc.Handle),
		queue.NewPool("alerts", queues.Alerts, qc.AlertWorkers, qc.TaskTimeout, alertSvc.Handle),
		queue.NewPool("draft", queues.Draft, qc.DraftWorkers, qc.TaskTimeout, drafter.Handle),
	}
	for _, p := range pools {
		p.Start(ctx)
	}

	// 7. Background loops: dispatcher, state sweeps, anchor folding,
	// SSE broadcaster, queue-depth gauges
	dispatcher := scheduler.New(db, queues, cfg)
	dispatcher.Start(ctx)

	maintainer := state.NewMaintainer(db, cfg)
	maintainer.Start(ctx)

	canonicalizer := merge.NewCanonicalizer(db, queues, cfg)
	canonicalizer.Start(ctx)

	broadcaster := stream.NewBroadcaster(db)
	broadcaster.Start(ctx)

	probe := queue.NewDepthProbe(queues)
	probe.Start(ctx)

	retention := cleanup.NewService(db, cleanup.DefaultConfig())
	retention.Start(ctx)
	slog.Info("Background loops started")

	// 8. HTTP server
	actionSvc := actions.NewService(db, queues, cfg)
	drafts := cms.NewBuilder(db)
	server := api.NewServer(db, cfg, actionSvc, drafts, connector, broadcaster, queues)
	if err := server.Start(); err != nil {
		slog.Error("Failed to start HTTP server", "error", err)
		os.Exit(1)
	}
	slog.Info("Radar started successfully", "addr", ":"+cfg.HTTPPort)

	// 9. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 10. Graceful shutdown: stop producers first, then drain workers within
	// the shutdown budget, then close the HTTP surface.
	dispatcher.Stop()
	canonicalizer.Stop()
	maintainer.Stop()
	probe.Stop()
	retention.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, qc.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for _, p := range pools {
			p.Stop()
		}
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight tasks")
	}

	broadcaster.Stop()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
