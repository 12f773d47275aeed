package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"slasty/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New создает Worker и запускает задачи. Сначала все задачи выполняются
// синхронно ("прогрев"): ошибка или паника на этом этапе возвращается
// немедленно и Worker не создается. Дальше задачи крутятся в фоне
// до отмены контекста.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	if len(tasks) == 0 {
		return &Worker{
			log:   log,
			tasks: tasks,
		}, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for i := 0; i < len(tasks); i++ {
		task := tasks[i]
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	for i := 0; i < len(tasks); i++ {
		task := tasks[i]
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
