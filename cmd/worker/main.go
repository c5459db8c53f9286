// The worker consumes notification jobs from the dispatch queue and fans
// them out to wishlist entries. It runs independently of the API server and
// may be scaled separately.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"libcatalog/internal/application/notification"
	"libcatalog/internal/infrastructure/config"
	"libcatalog/internal/infrastructure/persistence/mysql"
	"libcatalog/internal/infrastructure/queue"
	"libcatalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log.Options())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := mysql.NewDB(cfg)
	if err != nil {
		lg.Fatal("connect database", zap.Error(err))
	}

	wishlistRepo := mysql.NewWishlistRepository(db)
	notifyUseCase := notification.NewNotifyWishlistUseCase(wishlistRepo, lg)
	handler := queue.NewNotificationHandler(notifyUseCase, lg)

	if cfg.Queue.MetricsPort > 0 {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Queue.MetricsPort)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			lg.Info("worker metrics listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, mux); err != nil {
				lg.Error("metrics listener failed", zap.Error(err))
			}
		}()
	}

	srv := queue.NewServer(cfg, lg)
	lg.Info("notification worker starting",
		zap.String("queue", cfg.Queue.Name),
		zap.Int("concurrency", cfg.Queue.Concurrency))

	// Run blocks until SIGINT/SIGTERM and drains in-flight jobs.
	if err := srv.Run(queue.NewMux(handler)); err != nil {
		lg.Fatal("worker stopped", zap.Error(err))
	}
}
