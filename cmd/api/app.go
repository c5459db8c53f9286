package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"libcatalog/internal/domain/book"
	"libcatalog/internal/infrastructure/config"
	"libcatalog/internal/infrastructure/queue"
	"libcatalog/internal/interface/http/handler"
	"libcatalog/internal/interface/http/middleware"
	"libcatalog/pkg/logger"
	"libcatalog/pkg/validator"
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Options())
}

// provideDispatcher constructs the queue client once for the process
// lifetime and exposes it behind the service's dispatch port.
func provideDispatcher(cfg *config.Config, lg *zap.Logger) (book.Dispatcher, func()) {
	client := queue.NewClient(cfg, lg)
	return client, func() { _ = client.Close() }
}

// App bundles what main needs from the injector.
type App struct {
	Engine *gin.Engine
	Config *config.Config
	Logger *zap.Logger
}

func newApp(engine *gin.Engine, cfg *config.Config, logger *zap.Logger) *App {
	return &App{Engine: engine, Config: cfg, Logger: logger}
}

// provideRouter builds the gin engine and registers every route.
func provideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	bookHandler *handler.BookHandler,
	healthHandler *handler.HealthHandler,
) (*gin.Engine, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validator.Register(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS(cfg.CORS), middleware.Metrics())

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	books := r.Group("/books")
	{
		books.POST("", bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}

	return r, nil
}
