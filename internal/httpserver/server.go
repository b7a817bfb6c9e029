package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bondcache/internal/client"
	"bondcache/internal/service"
)

// Server exposes the bond operations over local HTTP. It is the embedding
// surface the spreadsheet host talks to.
type Server struct {
	service *service.Service
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates the HTTP server around an operations service.
func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	return &Server{
		service: svc,
		logger:  logger,
	}
}

// Start starts the HTTP server on the given TCP address and blocks until
// the server stops.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.createRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting bond cache HTTP server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping bond cache HTTP server")
	return s.server.Shutdown(ctx)
}

// createRouter creates and configures the HTTP router.
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()

	// Core lookups
	router.HandleFunc("/bond/static", s.handleStatic).Methods("POST")
	router.HandleFunc("/bond/info", s.handleInfo).Methods("POST")
	router.HandleFunc("/bonds/list", s.handleList).Methods("POST")
	router.HandleFunc("/bonds/search", s.handleSearch).Methods("POST")
	router.HandleFunc("/bonds/count", s.handleCount).Methods("GET")

	// Analytics
	router.HandleFunc("/bond/years-to-maturity", s.handleYearsToMaturity).Methods("POST")
	router.HandleFunc("/bonds/maturity-range", s.handleMaturityRange).Methods("POST")
	router.HandleFunc("/bond/coupon-frequency", s.handleCouponFrequency).Methods("POST")
	router.HandleFunc("/bond/is-linker", s.handleIsLinker).Methods("POST")

	// Data management and enterprise
	router.HandleFunc("/refresh", s.handleRefresh).Methods("POST")
	router.HandleFunc("/lineage", s.handleLineage).Methods("POST")
	router.HandleFunc("/history", s.handleHistory).Methods("POST")
	router.HandleFunc("/corporate-actions", s.handleCorporateActions).Methods("POST")

	// Utilities
	router.HandleFunc("/status", s.handleStatus).Methods("GET")
	router.HandleFunc("/cache/clear", s.handleCacheClear).Methods("POST")
	router.HandleFunc("/cache/stats", s.handleCacheStats).Methods("GET")
	router.HandleFunc("/help", s.handleHelp).Methods("GET")
	router.HandleFunc("/isin/validate", s.handleValidateISIN).Methods("POST")

	// Health check
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

// parseRequest parses a JSON request body.
func (s *Server) parseRequest(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	defer func() { _ = r.Body.Close() }()

	return json.Unmarshal(body, v)
}

// writeResponse writes a JSON response.
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes an error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := OpResponse{
		Success: false,
		Error:   message,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("Failed to write error response", zap.Error(err))
	}
}

// writeServiceError maps service errors onto HTTP statuses: bad input is
// the caller's fault, missing data is 404, everything else is an upstream
// failure.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidISIN),
		errors.Is(err, service.ErrUnknownField),
		errors.Is(err, service.ErrUnknownCountry):
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrBondNotFound),
		errors.Is(err, service.ErrNoResults),
		errors.Is(err, client.ErrNotFound):
		s.writeErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, client.ErrAPIKeyRequired):
		s.writeErrorResponse(w, err.Error(), http.StatusForbidden)
	default:
		s.writeErrorResponse(w, err.Error(), http.StatusBadGateway)
	}
}
