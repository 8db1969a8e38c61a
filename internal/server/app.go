// Package server initializes and runs the storefront backend: it opens the
// database, applies migrations, wires the services and starts the HTTP API,
// shutting everything down on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/arshopsy/arshopsy/internal/feedback"
	"github.com/arshopsy/arshopsy/internal/logging"
	"github.com/arshopsy/arshopsy/internal/payments"
	"github.com/arshopsy/arshopsy/internal/server/assets"
	"github.com/arshopsy/arshopsy/internal/server/config"
	"github.com/arshopsy/arshopsy/internal/server/httpapi"
	"github.com/arshopsy/arshopsy/internal/server/repositories/repomanager"
	"github.com/arshopsy/arshopsy/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	checkoutService *services.CheckoutService
	feedbackService *services.FeedbackService
	assetService    *assets.Service
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	gateway := &payments.SimulatedGateway{
		Delay:       cfg.PaymentDelay,
		SuccessRate: cfg.PaymentSuccessRate,
	}
	sender := feedback.NewHTTPRelaySender(cfg.FeedbackRelay)

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		userService:     services.NewUserService(db, rm, cfg),
		checkoutService: services.NewCheckoutService(db, rm, gateway),
		feedbackService: services.NewFeedbackService(sender),
		assetService:    assets.NewService(cfg),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.checkoutService, app.feedbackService,
		app.assetService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "Error closing db", "error", err)
	}
}
