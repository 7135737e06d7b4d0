package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/body-metrics-calculator/internal/config"
	"github.com/yusufkecer/body-metrics-calculator/internal/handler"
	"github.com/yusufkecer/body-metrics-calculator/internal/middleware"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
)

const shutdownTimeout = 10 * time.Second

func NewRouter(cfg *config.Config) *mux.Router {
	bmiHandler := handler.NewBMIHandler(service.NewBMIService())
	dashboardHandler := handler.NewDashboardHandler(service.NewDashboardService(cfg.DashboardSeed, cfg.DashboardDays))

	bmiRL := middleware.NewRateLimiter(cfg.BMIRateLimit, cfg.BMIRateWindow, cfg.TrustProxy)

	r := mux.NewRouter()

	// Global middleware: request id → access log → CORS → security headers → body cap
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBytes(1 << 20))

	r.HandleFunc("/api/v1/health", handler.Health).Methods(http.MethodGet, http.MethodOptions)
	r.Handle("/api/v1/health", handler.MethodNotAllowed(http.MethodGet, http.MethodOptions))

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	api.Handle("/bmi", bmiRL.Middleware(http.HandlerFunc(bmiHandler.Get))).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/bmi", bmiRL.Middleware(http.HandlerFunc(bmiHandler.Post))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/dashboard", dashboardHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/kpis", dashboardHandler.GetKPIs).Methods(http.MethodGet, http.MethodOptions)

	// Registered last and without a method matcher, so they only serve
	// requests no route above accepted.
	api.Handle("/bmi", handler.MethodNotAllowed(http.MethodGet, http.MethodPost, http.MethodOptions))
	api.Handle("/dashboard", handler.MethodNotAllowed(http.MethodGet, http.MethodOptions))
	api.Handle("/dashboard/kpis", handler.MethodNotAllowed(http.MethodGet, http.MethodOptions))

	return r
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
