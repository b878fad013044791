package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/auth"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/config"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/handler"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/middleware"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/notification"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/payment"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/repository"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/router"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/scheduler"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"VrumiConnect",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	feeRate, err := decimal.NewFromString(a.cfg.Payment.FeeRate)
	if err != nil {
		return fmt.Errorf("parse fee rate: %w", err)
	}

	bookingRepo := repository.NewBookingRepo(a.db)
	availabilityRepo := repository.NewAvailabilityRepo(a.db)
	instructorRepo := repository.NewInstructorRepo(a.db)
	contactRepo := repository.NewContactRepo(a.db)

	provider, err := payment.NewOmiseProvider(a.cfg.Omise.PublicKey, a.cfg.Omise.SecretKey, a.log)
	if err != nil {
		return fmt.Errorf("init payment provider: %w", err)
	}

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, contactRepo, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	bookingService := service.NewBookingService(bookingRepo, availabilityRepo, provider, notifier, a.log)
	checkInService := service.NewCheckInService(bookingRepo, bookingService, a.log)
	paymentService := service.NewPaymentService(
		bookingRepo, instructorRepo, provider, bookingService,
		feeRate, a.cfg.Payment.Currency, a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	authManager := auth.NewManager(a.cfg.JWT.Secret, a.cfg.JWT.AccessTTL)

	h := handler.NewHandler(bookingService, checkInService, paymentService)
	wh := handler.NewWebhookHandler(provider, paymentService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		wh,
		middleware.RequireAuth(authManager),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
