package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grocerylist/internal/logging"
	"grocerylist/internal/server/services"
)

type Server struct {
	address  string
	logger   logging.Logger
	handlers *Handlers
}

func NewServer(address string, l logging.Logger, as *services.AuthService, is *services.ItemService) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "rest_server"),
		handlers: NewHandlers(as, is, l),
	}
}

// Router builds the gin engine with the public auth routes and the
// token-guarded item routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/signup", s.handlers.Signup)
	r.POST("/login", s.handlers.Login)

	items := r.Group("/items", RequireAuth(s.handlers.auth))
	{
		items.GET("", s.handlers.ListItems)
		items.POST("", s.handlers.AddItem)
		items.PUT("/:id/toggle", s.handlers.ToggleItem)
		items.DELETE("/:id", s.handlers.DeleteItem)
	}

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
