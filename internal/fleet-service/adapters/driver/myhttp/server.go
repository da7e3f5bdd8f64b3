package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fleetops/internal/config"
	"fleetops/internal/fleet-service/adapters/driven/bm"
	"fleetops/internal/fleet-service/adapters/driven/db"
	"fleetops/internal/fleet-service/adapters/driver/myhttp/handle"
	"fleetops/internal/fleet-service/adapters/driver/myhttp/middleware"
	"fleetops/internal/fleet-service/adapters/driver/myhttp/ws"
	"fleetops/internal/fleet-service/core/ports"
	"fleetops/internal/fleet-service/core/services"
	"fleetops/internal/mylogger"
)

var ErrServerClosed = errors.New("Server closed")

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     ports.IFleetBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
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

	// Initialize RabbitMQ connection
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	// Configure routes and handlers
	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.FleetServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.FleetServicePort)

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

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
			return fmt.Errorf("broker close: %w", err)
		}
		s.mylog.Info("Message broker closed")
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

// Configure sets up the HTTP handlers for trips, trucks, expenses, reports and health checks.
func (s *Server) Configure() {
	// Repositories
	tripsRepo := db.NewTripsRepo(s.db)
	trucksRepo := db.NewTrucksRepo(s.db)
	expensesRepo := db.NewExpensesRepo(s.db)

	// websocket dashboard
	dispatcher := ws.NewDispatcher(s.mylog)

	// services
	tripsService := services.NewTripsService(s.mylog, tripsRepo, trucksRepo, expensesRepo, s.mb, dispatcher)
	trucksService := services.NewTrucksService(s.mylog, trucksRepo)
	expensesService := services.NewExpensesService(s.mylog, expensesRepo, tripsRepo)
	reportsService := services.NewReportsService(s.mylog, tripsRepo, trucksRepo, expensesRepo)

	// handlers
	tripsHandler := handle.NewTripsHandler(tripsService, s.mylog)
	trucksHandler := handle.NewTrucksHandler(trucksService, s.mylog)
	expensesHandler := handle.NewExpensesHandler(expensesService, s.mylog)
	reportsHandler := handle.NewReportsHandler(reportsService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	// Register routes
	s.mux.Handle("POST /api/trips", authMiddleware.Wrap(tripsHandler.CreateTrip()))
	s.mux.Handle("GET /api/trips", authMiddleware.Wrap(tripsHandler.ListTrips()))
	s.mux.Handle("GET /api/trips/{trip_id}", authMiddleware.Wrap(tripsHandler.GetTrip()))
	s.mux.Handle("PUT /api/trips/{trip_id}", authMiddleware.Wrap(tripsHandler.UpdateTrip()))
	s.mux.Handle("DELETE /api/trips/{trip_id}", authMiddleware.Wrap(tripsHandler.DeleteTrip()))

	s.mux.Handle("POST /api/trips/{trip_id}/expenses", authMiddleware.Wrap(expensesHandler.AddExpense()))
	s.mux.Handle("GET /api/trips/{trip_id}/expenses", authMiddleware.Wrap(expensesHandler.ListExpenses()))
	s.mux.Handle("DELETE /api/trips/expenses/{expense_id}", authMiddleware.Wrap(expensesHandler.DeleteExpense()))

	s.mux.Handle("POST /api/trucks", authMiddleware.Wrap(trucksHandler.CreateTruck()))
	s.mux.Handle("GET /api/trucks", authMiddleware.Wrap(trucksHandler.ListTrucks()))
	s.mux.Handle("GET /api/trucks/{truck_id}", authMiddleware.Wrap(trucksHandler.GetTruck()))
	s.mux.Handle("PUT /api/trucks/{truck_id}", authMiddleware.Wrap(trucksHandler.UpdateTruck()))
	s.mux.Handle("DELETE /api/trucks/{truck_id}", authMiddleware.Wrap(trucksHandler.DeleteTruck()))

	s.mux.Handle("GET /api/reports/summary", authMiddleware.Wrap(reportsHandler.Summary()))
	s.mux.Handle("GET /api/reports/monthly", authMiddleware.Wrap(reportsHandler.Monthly()))
	s.mux.Handle("GET /api/reports/export", authMiddleware.Wrap(reportsHandler.Export()))

	// websocket routes
	s.mux.Handle("/ws/dashboard", dispatcher.DashboardHandler())

	s.mux.HandleFunc("GET /healthz", s.healthz)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.IsAlive(); err != nil {
		handle.JsonError(w, http.StatusServiceUnavailable, fmt.Errorf("database is down"))
		return
	}
	if s.mb == nil || !s.mb.IsAlive() {
		handle.JsonError(w, http.StatusServiceUnavailable, fmt.Errorf("message broker is down"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
