// Package httpapi exposes the storefront over a JSON HTTP API: account
// registration and sign-in, the item catalog with presigned model links,
// checkout and the feedback relay.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arshopsy/arshopsy/internal/logging"
	"github.com/arshopsy/arshopsy/internal/server/services"
)

// ModelURLProvider resolves a model asset key into a downloadable URL.
type ModelURLProvider interface {
	GetModelURL(ctx context.Context, key string) (string, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	checkout  *services.CheckoutService
	feedback  *services.FeedbackService
	assets    ModelURLProvider
	jwtSecret []byte
	srv       *http.Server
}

func NewServer(address string, l logging.Logger, us *services.UserService,
	cs *services.CheckoutService, fs *services.FeedbackService,
	assets ModelURLProvider, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		checkout:  cs,
		feedback:  fs,
		assets:    assets,
		jwtSecret: []byte(secretKey),
	}
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")
	api.GET("/ping", s.ping)
	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.GET("/catalog", s.listCatalog)
	api.GET("/catalog/:id", s.getItem)
	api.GET("/catalog/:id/model", s.getModelURL)
	api.POST("/feedback", s.submitFeedback)

	authed := api.Group("", s.requireAuth())
	authed.POST("/checkout", s.placeOrder)
	authed.GET("/orders", s.listOrders)

	return r
}

const shutdownTimeout = 5 * time.Second

func (s *Server) Run(ctx context.Context) error {

	s.srv = &http.Server{Addr: s.address, Handler: s.router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
