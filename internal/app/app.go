package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	actionrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/action"
	companyrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/company"
	memberrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/member"
	notificationrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/notification"
	quizrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/quiz"
	resultrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/result"
	userrepo "github.com/heartmarshall/quizly-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/quizly-backend/internal/adapter/redis"
	"github.com/heartmarshall/quizly-backend/internal/auth"
	"github.com/heartmarshall/quizly-backend/internal/config"
	"github.com/heartmarshall/quizly-backend/internal/metrics"
	"github.com/heartmarshall/quizly-backend/internal/scheduler"
	actionsvc "github.com/heartmarshall/quizly-backend/internal/service/action"
	authsvc "github.com/heartmarshall/quizly-backend/internal/service/auth"
	companysvc "github.com/heartmarshall/quizly-backend/internal/service/company"
	notificationsvc "github.com/heartmarshall/quizly-backend/internal/service/notification"
	quizsvc "github.com/heartmarshall/quizly-backend/internal/service/quiz"
	resultsvc "github.com/heartmarshall/quizly-backend/internal/service/result"
	usersvc "github.com/heartmarshall/quizly-backend/internal/service/user"
	"github.com/heartmarshall/quizly-backend/internal/transport/middleware"
	"github.com/heartmarshall/quizly-backend/internal/transport/rest"
)

const reminderJobName = "quiz_reminders"

// Stack is the wired application: the HTTP handler plus the pieces the
// process lifecycle needs to reach.
type Stack struct {
	Handler       http.Handler
	Notifications *notificationsvc.Service
}

// Build wires repositories, services and the HTTP handler on top of open
// database and cache connections.
func Build(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, redisClient *goredis.Client) (*Stack, error) {
	details := redis.NewDetailStore(redisClient, cfg.Results.DetailTTL)

	// Repositories
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	companies := companyrepo.New(pool)
	members := memberrepo.New(pool)
	actions := actionrepo.New(pool)
	quizzes := quizrepo.New(pool)
	results := resultrepo.New(pool)
	notifications := notificationrepo.New(pool)

	m := metrics.New()

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, users, hasher, jwtManager)
	userService := usersvc.NewService(logger, users, cfg.Quiz.DefaultPageSize, cfg.Quiz.MaxPageSize)
	notificationService := notificationsvc.NewService(logger, notifications, results, m)
	companyService := companysvc.NewService(logger, companies, members, actions, quizzes, results, txm, cfg.Quiz)
	actionService := actionsvc.NewService(logger, companies, users, actions, members, results, details, notificationService, m, txm)
	quizService := quizsvc.NewService(logger, quizzes, companies, members, results, notificationService, txm, cfg.Quiz)
	resultService := resultsvc.NewService(logger, quizzes, companies, members, results, details, m)

	// HTTP
	handlers := rest.Handlers{
		Auth:         rest.NewAuthHandler(authService, logger),
		User:         rest.NewUserHandler(userService, logger),
		Company:      rest.NewCompanyHandler(companyService, logger),
		Action:       rest.NewActionHandler(actionService, logger),
		Quiz:         rest.NewQuizHandler(quizService, logger, cfg.Server.MaxUploadBytes),
		Result:       rest.NewResultHandler(resultService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Dependency{Name: "database", Pinger: pool},
			rest.Dependency{Name: "redis", Pinger: details},
		),
		Metrics: m.Handler(),
	}

	if cfg.RateLimit.Enabled {
		store, err := limiterredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
			Prefix:   cfg.RateLimit.Prefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("rate limit store: %w", err)
		}
		authLimiter := limiter.New(store, limiter.Rate{Period: time.Minute, Limit: cfg.RateLimit.AuthPerMinute})
		handlers.AuthRateLimit = middleware.RateLimit(authLimiter, logger)
	}

	stack := &Stack{Notifications: notificationService}

	// Metrics sits innermost so it sees the pattern the mux matched.
	stack.Handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService, logger),
		middleware.Metrics(m),
	)(rest.NewRouter(handlers))

	return stack, nil
}

// Run is the application entry point. It connects to storage, serves HTTP
// and runs background jobs until ctx is cancelled or a component fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Database
	pool, err := connectWithRetry(ctx, logger, "postgres", func(ctx context.Context) (*pgxpool.Pool, error) {
		return postgres.NewPool(ctx, cfg.Database)
	})
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected", slog.Int("max_conns", int(cfg.Database.MaxConns)))

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Redis
	redisClient, err := connectWithRetry(ctx, logger, "redis", func(ctx context.Context) (*goredis.Client, error) {
		return redis.NewClient(ctx, cfg.Redis, logger)
	})
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer redisClient.Close()

	stack, err := Build(cfg, logger, pool, redisClient)
	if err != nil {
		return err
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(logger, cfg.Scheduler.JobTimeout)
		err := sched.Add(ctx, reminderJobName, cfg.Scheduler.QuizReminderSpec, func(ctx context.Context) error {
			_, err := stack.Notifications.SendQuizReminders(ctx)
			return err
		})
		if err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      stack.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if sched != nil {
		g.Go(func() error { return sched.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("application stopped")
	return nil
}
