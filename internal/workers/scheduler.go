// internal/workers/scheduler.go
package workers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/meta4-erp/internal/pkg/config"
)

// Registrar is the part of asynq.Scheduler used to register periodic tasks
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// NewScheduler creates the periodic task scheduler
func NewScheduler(cfg config.AsynqConfig, logger *slog.Logger) *asynq.Scheduler {
	return asynq.NewScheduler(RedisOpt(cfg), &asynq.SchedulerOpts{
		Logger:   newAsynqLogger(logger),
		Location: time.UTC,
	})
}

// RegisterRefresh schedules a full collection refresh every interval. Runs
// that overlap a pending one are dropped.
func RegisterRefresh(s Registrar, interval time.Duration, queue string, maxRetry int, logger *slog.Logger) (string, error) {
	if interval < time.Second {
		return "", fmt.Errorf("refresh interval too short: %s", interval)
	}

	task, err := NewRefreshTask("")
	if err != nil {
		return "", err
	}

	spec := "@every " + interval.String()
	id, err := s.Register(spec, task,
		asynq.Queue(queue),
		asynq.MaxRetry(maxRetry),
		asynq.Unique(interval),
		asynq.Timeout(interval))
	if err != nil {
		return "", fmt.Errorf("failed to register refresh task: %w", err)
	}

	logger.Info("collection refresh scheduled",
		slog.String("entry_id", id),
		slog.String("spec", spec),
		slog.String("queue", queue))
	return id, nil
}
