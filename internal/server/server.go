package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/TaskQuest_Go/internal/catalog"
	"github.com/osse101/TaskQuest_Go/internal/database"
	_ "github.com/osse101/TaskQuest_Go/internal/docs" // registers the swagger spec
	"github.com/osse101/TaskQuest_Go/internal/handler"
	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/metrics"
	"github.com/osse101/TaskQuest_Go/internal/progress"
	"github.com/osse101/TaskQuest_Go/internal/sse"
	"github.com/osse101/TaskQuest_Go/internal/task"
)

// Options holds the HTTP-level settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	CatalogPath    string
}

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	progressService progress.Service
	taskService     task.Service
	board           leaderboard.Leaderboard
}

// NewServer creates a new Server instance. catalogCache may be nil; a nil streamHub
// leaves the progress stream unmounted.
func NewServer(opts Options, dbPool database.Pool, progressService progress.Service, taskService task.Service, board leaderboard.Leaderboard, catalogSeeder catalog.Seeder, catalogCache handler.CatalogInvalidator, streamHub *sse.Hub) *Server {
	r := chi.NewRouter()

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	progressHandler := handler.NewProgressHandler(progressService)
	taskHandler := handler.NewTaskHandler(taskService)
	leaderboardHandler := handler.NewLeaderboardHandler(board)
	adminHandler := handler.NewAdminHandler(progressService, catalogSeeder, catalogCache, opts.CatalogPath)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/progress", func(r chi.Router) {
			r.Get("/", progressHandler.HandleGetProgress())
			r.Post("/award", progressHandler.HandleAwardXP())
			r.Get("/achievements", progressHandler.HandleGetAchievements())
			r.Get("/activity", progressHandler.HandleGetActivity())
			if streamHub != nil {
				r.Get("/stream", sse.Handler(streamHub))
			}
		})

		r.Get("/leaderboard", leaderboardHandler.HandleGetLeaderboard())

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.HandleCreateTask())
			r.Get("/", taskHandler.HandleListTasks())
			r.Post("/{id}/complete", taskHandler.HandleCompleteTask())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/streak-freezes", adminHandler.HandleGrantStreakFreezes())
			r.Post("/catalog/reload", adminHandler.HandleReloadCatalog())
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		dbPool:          dbPool,
		progressService: progressService,
		taskService:     taskService,
		board:           board,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer's Flush
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"caller_id", r.Header.Get(handler.HeaderUserID),
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
