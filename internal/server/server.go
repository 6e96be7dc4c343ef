// Package server exposes practice sessions over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathlab/internal/answer"
	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/session"
	"github.com/abhisek/mathlab/internal/stats"
	"github.com/abhisek/mathlab/internal/store"
)

// HistoryRecorder stores attempts. *store.Store implements it.
type HistoryRecorder interface {
	AppendAttempt(ctx context.Context, a store.Attempt) error
}

const (
	DefaultMaxSessions = 1000
	DefaultSessionTTL  = 2 * time.Hour
)

// Deps are the collaborators shared by every session. Registry is required.
type Deps struct {
	Registry *generator.Registry
	Checker  *answer.Checker
	History  HistoryRecorder
	Tutor    *explain.Tutor
	Logger   *logger.Logger

	// MaxSessions caps live sessions. The least recently used one is
	// evicted to make room.
	MaxSessions int
	// SessionTTL expires sessions idle for longer.
	SessionTTL time.Duration
}

// Server holds one in-memory session per id. Stats of HTTP sessions live
// in memory; only attempts reach the history store.
type Server struct {
	deps   Deps
	log    *logger.Logger
	engine *gin.Engine

	now      func() time.Time
	mu       sync.Mutex
	sessions map[string]*guarded
}

type guarded struct {
	mu sync.Mutex
	s  *session.Session

	lastUsed time.Time // guarded by Server.mu
}

// New builds the router.
func New(deps Deps) *Server {
	if deps.Checker == nil {
		deps.Checker = answer.Default()
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.MaxSessions <= 0 {
		deps.MaxSessions = DefaultMaxSessions
	}
	if deps.SessionTTL <= 0 {
		deps.SessionTTL = DefaultSessionTTL
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &Server{
		deps:     deps,
		log:      deps.Logger.With("component", "server"),
		engine:   gin.New(),
		now:      time.Now,
		sessions: make(map[string]*guarded),
	}
	srv.engine.Use(gin.Recovery(), requestLogger(srv.log))
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := s.engine.Group("/api")
	{
		api.GET("/grades", s.listGrades)
		api.GET("/grades/:grade/topics", s.listTopics)

		api.POST("/sessions", s.createSession)
		sess := api.Group("/sessions/:id")
		{
			sess.POST("/problems", s.nextProblem)
			sess.POST("/answers", s.submitAnswer)
			sess.GET("/stats", s.sessionStats)
			sess.POST("/reset", s.resetSession)
			sess.GET("/explain", s.explainProblem)
		}
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- httpSrv.ListenAndServe()
	}()
	go s.expireLoop(ctx)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func (s *Server) newSession(grade int, topic string) *session.Session {
	sess := session.New(grade, topic, session.Options{
		Registry: s.deps.Registry,
		Checker:  s.deps.Checker,
		Recorder: historyOnly{s.deps.History},
		Logger:   s.log,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	for len(s.sessions) >= s.deps.MaxSessions {
		s.evictOldestLocked()
	}
	s.sessions[sess.ID] = &guarded{s: sess, lastUsed: now}
	return sess
}

// withSession runs fn holding the session's lock, or replies 404.
func (s *Server) withSession(c *gin.Context, fn func(*session.Session)) {
	s.mu.Lock()
	g, ok := s.sessions[c.Param("id")]
	if ok {
		g.lastUsed = s.now()
	}
	s.mu.Unlock()
	if !ok {
		respondError(c, http.StatusNotFound, "session_not_found", errors.New("unknown session"))
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.s)
}

// sweep drops sessions idle for longer than SessionTTL and returns how
// many it removed.
func (s *Server) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Server) sweepLocked(now time.Time) int {
	n := 0
	for id, g := range s.sessions {
		if now.Sub(g.lastUsed) > s.deps.SessionTTL {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Server) evictOldestLocked() {
	var oldest string
	var at time.Time
	for id, g := range s.sessions {
		if oldest == "" || g.lastUsed.Before(at) {
			oldest, at = id, g.lastUsed
		}
	}
	if oldest != "" {
		delete(s.sessions, oldest)
		s.log.Debug("session evicted", "session", oldest)
	}
}

func (s *Server) expireLoop(ctx context.Context) {
	t := time.NewTicker(max(s.deps.SessionTTL/4, time.Second))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.sweep(); n > 0 {
				s.log.Info("expired idle sessions", "count", n)
			}
		}
	}
}

// historyOnly adapts a HistoryRecorder to session.Recorder.
type historyOnly struct {
	h HistoryRecorder
}

func (historyOnly) SaveStats(context.Context, stats.State) error { return nil }

func (r historyOnly) AppendAttempt(ctx context.Context, a store.Attempt) error {
	if r.h == nil {
		return nil
	}
	return r.h.AppendAttempt(ctx, a)
}
