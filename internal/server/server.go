// Package server exposes the course record, the grading engine and the
// assistant over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/logging"
)

// Config holds the HTTP settings.
type Config struct {
	Addr            string
	ChatRateLimit   int
	ChatRateWindow  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server serves the /api routes.
type Server struct {
	cfg       Config
	courses   *courses.Service
	assistant *assistant.Assistant
	chatLimit *RateLimiter
	logger    log.Logger
}

// New returns a server over svc and chat. chat may be nil, in which case
// /api/chat answers 503.
func New(cfg Config, svc *courses.Service, chat *assistant.Assistant, logger log.Logger) *Server {
	return &Server{
		cfg:       cfg,
		courses:   svc,
		assistant: chat,
		chatLimit: NewRateLimiter(cfg.ChatRateLimit, cfg.ChatRateWindow),
		logger:    logging.Component(logger, "server"),
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		level.Info(s.logger).Log("msg", "listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	level.Info(s.logger).Log("msg", "shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	api := router.Group("/api")
	{
		api.GET("/ping", s.ping)
		api.GET("/summary", s.summary)
		api.POST("/classify", s.classify)
		api.POST("/aggregate", s.aggregate)
		api.POST("/chat", s.rateLimit(s.chatLimit), s.chat)

		cs := api.Group("/courses")
		{
			cs.GET("", s.listCourses)
			cs.POST("", s.createCourse)
			cs.GET("/:id", s.getCourse)
			cs.PUT("/:id", s.updateCourse)
			cs.DELETE("/:id", s.deleteCourse)
		}

		api.GET("/profile", s.getProfile)
		api.PUT("/profile", s.saveProfile)
	}
	return router
}
