// Package server exposes the learning platform as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/studium/internal/config"
	"github.com/abhisek/studium/internal/gateway"
	"github.com/abhisek/studium/internal/logger"
	"github.com/abhisek/studium/internal/progress"
	"github.com/abhisek/studium/internal/sessions"
	"github.com/abhisek/studium/internal/store"
)

// Repos bundles the repositories the handlers read and write.
type Repos struct {
	Courses     store.CourseRepo
	Subjects    store.SubjectRepo
	Chapters    store.ChapterRepo
	Enrollments store.EnrollmentRepo
	Progress    store.ProgressRepo
	Quizzes     store.QuizRepo
	Bookmarks   store.BookmarkRepo
	AIRequests  store.AIRequestRepo
}

// Server holds the wired services behind the HTTP API.
type Server struct {
	cfg   config.Config
	log   *logger.Logger
	repos Repos
	ai    *gateway.Service
	learn *progress.Service
	track *sessions.Service
}

// New wires a Server. A nil logger falls back to a no-op logger.
func New(cfg config.Config, repos Repos, ai *gateway.Service, learn *progress.Service, track *sessions.Service, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		cfg:   cfg,
		log:   log,
		repos: repos,
		ai:    ai,
		learn: learn,
		track: track,
	}
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) ginMode() string {
	switch s.cfg.Mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
