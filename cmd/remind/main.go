// Command remind sends due quiz reminders once and exits. It is meant for
// deployments that disable the in-process scheduler and trigger reminders
// from an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizly-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/quizly-backend/internal/adapter/postgres/result"
	"github.com/heartmarshall/quizly-backend/internal/app"
	"github.com/heartmarshall/quizly-backend/internal/config"
	"github.com/heartmarshall/quizly-backend/internal/metrics"
	notificationsvc "github.com/heartmarshall/quizly-backend/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.JobTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notificationsvc.NewService(logger, notification.New(pool), result.New(pool), metrics.New())

	sent, err := svc.SendQuizReminders(ctx)
	if err != nil {
		logger.Error("send quiz reminders failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("quiz reminders sent", slog.Int("sent", sent))
}
