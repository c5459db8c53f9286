// @title           Library Catalog API
// @version         1.0
// @description     CRUD API for a library book catalog with wishlist availability notifications.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "libcatalog/docs"
)

func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("initialize: %v", err)
	}
	defer cleanup()
	defer func() { _ = app.Logger.Sync() }()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		app.Logger.Info("catalog API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	app.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("shutdown failed", zap.Error(err))
	}
}
