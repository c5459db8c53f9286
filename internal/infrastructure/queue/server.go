package queue

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"libcatalog/internal/infrastructure/config"
	"libcatalog/pkg/metrics"
)

// NewServer builds the queue consumer. Retry delay doubles on every attempt
// starting from the configured base; each failed attempt is logged with the
// job id and payload, and exhaustion is logged as a permanent failure.
func NewServer(cfg *config.Config, logger *zap.Logger) *asynq.Server {
	base := cfg.Queue.RetryBaseDelay
	if base <= 0 {
		base = 5 * time.Second
	}

	return asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: cfg.Queue.Concurrency,
		Queues:      map[string]int{cfg.Queue.Name: 1},
		RetryDelayFunc: func(n int, e error, t *asynq.Task) time.Duration {
			return base * time.Duration(1<<n)
		},
		ErrorHandler: errorHandler(logger),
		Logger:       newZapAdapter(logger),
		LogLevel:     asynq.InfoLevel,
	})
}

// NewMux routes task types to their handlers.
func NewMux(h *NotificationHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookAvailable, h.HandleBookAvailable)
	return mux
}

func errorHandler(logger *zap.Logger) asynq.ErrorHandlerFunc {
	return func(ctx context.Context, task *asynq.Task, err error) {
		metrics.JobsProcessedTotal.WithLabelValues("failed").Inc()

		jobID, _ := asynq.GetTaskID(ctx)
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		fields := []zap.Field{
			zap.String("jobId", jobID),
			zap.String("type", task.Type()),
			zap.ByteString("payload", task.Payload()),
			zap.Int("attempt", retried+1),
			zap.Int("maxAttempts", maxRetry+1),
			zap.Error(err),
		}
		if retried >= maxRetry {
			logger.Error("notification job permanently failed", fields...)
			return
		}
		logger.Error("notification job attempt failed", fields...)
	}
}

// zapAdapter bridges asynq's Logger interface onto zap, so dispatch-layer
// connectivity errors land in the same structured sink.
type zapAdapter struct {
	sugar *zap.SugaredLogger
}

func newZapAdapter(logger *zap.Logger) *zapAdapter {
	return &zapAdapter{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (a *zapAdapter) Debug(args ...interface{}) { a.sugar.Debug(args...) }
func (a *zapAdapter) Info(args ...interface{})  { a.sugar.Info(args...) }
func (a *zapAdapter) Warn(args ...interface{})  { a.sugar.Warn(args...) }
func (a *zapAdapter) Error(args ...interface{}) { a.sugar.Error(args...) }
func (a *zapAdapter) Fatal(args ...interface{}) { a.sugar.Fatal(args...) }
