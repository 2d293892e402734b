package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mpetrov/bookshelf/internal/audit"
	"github.com/mpetrov/bookshelf/internal/backup"
	"github.com/mpetrov/bookshelf/internal/config"
	http_controllers "github.com/mpetrov/bookshelf/internal/http"
	"github.com/mpetrov/bookshelf/internal/store"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown. Wait for SIGINT/SIGTERM, then give in-flight
	// requests the configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	fileStore := store.New(cfg.Data.BooksPath, cfg.Data.ReadingPath)
	session := store.Open(fileStore)

	log.Printf("Loaded %d books and %d logged days", session.Books.Size(), session.Reading.Len())

	// Create auditor for saving mutation receipts
	var auditor http_controllers.MutationAuditor
	if cfg.Audit.Enabled {
		auditor = audit.NewAuditor(cfg.Audit.Dir)
		log.Printf("Audit receipts enabled at %s", cfg.Audit.Dir)
	}

	// Start periodic data file snapshots if enabled
	var backupScheduler *backup.Scheduler
	if cfg.Backup.Enabled {
		backupScheduler = backup.NewScheduler(cfg.Backup.Dir, cfg.Backup.Schedule,
			cfg.Data.BooksPath, cfg.Data.ReadingPath)
		if err := backupScheduler.Start(); err != nil {
			log.Fatalf("Failed to start backup scheduler: %v", err)
		}
		if next := backupScheduler.GetNextRunTime(); next != nil {
			log.Printf("Next backup scheduled at %s", next.Format(time.RFC3339))
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Session: session,
		Auditor: auditor,
		Version: version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if backupScheduler != nil {
			backupScheduler.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
