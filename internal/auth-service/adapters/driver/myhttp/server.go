package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fleetops/internal/auth-service/adapters/driven/db"
	"fleetops/internal/auth-service/adapters/driver/myhttp/handle"
	"fleetops/internal/auth-service/adapters/driver/myhttp/middleware"
	"fleetops/internal/auth-service/core/service"
	"fleetops/internal/config"
	"fleetops/internal/mylogger"
)

const WaitTime = 10

type Server struct {
	mux   *http.ServeMux
	cfg   *config.Config
	srv   *http.Server
	mylog mylogger.Logger
	db    *db.DB
	ctx   context.Context
	mu    sync.Mutex
	wg    sync.WaitGroup
}

func NewServer(ctx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:   ctx,
		cfg:   cfg,
		mylog: mylog,
		mux:   http.NewServeMux(),
	}

	return s
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	// Initialize database connection
	db, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	mylog.Info("Successful database connection")

	// Configure routes and handlers
	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.AuthServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.AuthServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure sets up the HTTP handlers for registration, login and user management.
func (s *Server) Configure() {
	// Repositories
	authRepo := db.NewAuthRepo(s.db)
	usersRepo := db.NewUsersRepo(s.db)

	// services
	authService := service.NewAuthService(s.cfg, authRepo, s.mylog)
	usersService := service.NewUsersService(usersRepo, s.mylog)

	// handlers
	authHandler := handle.NewAuthHandler(authService, s.mylog)
	usersHandler := handle.NewUsersHandler(usersService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	// Register routes
	s.mux.Handle("POST /api/auth/register", authHandler.Register())
	s.mux.Handle("POST /api/auth/login", authHandler.Login())

	s.mux.Handle("GET /api/users", authMiddleware.Wrap(usersHandler.ListUsers()))
	s.mux.Handle("GET /api/users/{user_id}", authMiddleware.Wrap(usersHandler.GetUser()))
	s.mux.Handle("PUT /api/users/{user_id}", authMiddleware.Wrap(usersHandler.UpdateUser()))
	s.mux.Handle("DELETE /api/users/{user_id}", authMiddleware.Wrap(usersHandler.DeleteUser()))

	s.mux.HandleFunc("GET /healthz", s.healthz)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.IsAlive(); err != nil {
		handle.JsonError(w, http.StatusServiceUnavailable, fmt.Errorf("database is down"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
