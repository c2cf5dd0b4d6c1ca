// Package api serves the engine over a local JSON API with a websocket event
// stream, for front ends that render the pet.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"petquest/internal/coach"
	"petquest/internal/engine"
)

type Config struct {
	Addr   string
	Engine *engine.Engine
	Coach  *coach.Coach
	Logger *slog.Logger
}

type Server struct {
	engine     *engine.Engine
	coach      *coach.Coach
	log        *slog.Logger
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := cfg.Coach
	if c == nil {
		c = coach.New(nil, log, 0)
	}
	s := &Server{
		engine: cfg.Engine,
		coach:  c,
		log:    log,
		hub:    NewHub(log),
	}
	s.setupRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRouter() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/state", s.handleGetState)
		r.Get("/catalog", s.handleGetCatalog)
		r.Get("/export", s.handleExport)

		r.Post("/tasks", s.handleAddTask)
		r.Post("/tasks/{taskID}/complete", s.handleCompleteTask)
		r.Delete("/tasks/{taskID}", s.handleDeleteTask)
		r.Post("/undo", s.handleUndo)

		r.Post("/shop/{kind}/{itemID}", s.handleBuy)
		r.Put("/equip/{kind}", s.handleEquip)

		r.Get("/categories", s.handleGetCategories)
		r.Post("/categories", s.handleAddCategory)
		r.Delete("/categories/{categoryID}", s.handleDeleteCategory)

		r.Get("/friends", s.handleGetFriends)
		r.Post("/friends", s.handleAddFriend)
		r.Get("/leaderboard", s.handleLeaderboard)

		r.Get("/quote", s.handleQuote)
		r.Post("/suggestions", s.handleSuggestions)
	})
	r.Get("/ws", s.hub.ServeWS)

	s.router = r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run starts the hub, relays engine events to websocket clients and serves
// HTTP until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.startBackground(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("api listening", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) startBackground(ctx context.Context) {
	events, unsubscribe := s.engine.Subscribe(64)
	go s.hub.Run(ctx)
	go s.relayEvents(ctx, events, unsubscribe)
}

func (s *Server) relayEvents(ctx context.Context, events <-chan engine.Event, unsubscribe func()) {
	defer unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.hub.Broadcast(WebSocketMessage{Type: string(ev.Kind), Data: ev, Timestamp: ev.At})
		}
	}
}

// --- Response helpers ---

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warn("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
