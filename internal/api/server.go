// Package api exposes the read side of the pipeline over HTTP: the
// enriched-article feed and the aggregate analytics the dashboard renders.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"InsuranceNewsAgent/internal/ports"
)

const defaultListLimit = 100

// Server serves persisted enriched articles to the dashboard consumer.
type Server struct {
	addr       string
	repository ports.ArticleRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewServer wires the repository behind the HTTP surface.
func NewServer(addr string, repository ports.ArticleRepository, logger *slog.Logger) *Server {
	return &Server{
		addr:       addr,
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// Router assembles the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/articles", s.handleArticles)
	r.Get("/api/analytics", s.handleAnalytics)

	return r
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleArticles lists enriched articles, optionally narrowed by a
// trailing time window in hours and by category.
func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	if s.repository == nil {
		http.Error(w, "persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	filter := ports.ListFilter{
		Since:    s.sinceParam(r),
		Category: r.URL.Query().Get("category"),
		Limit:    defaultListLimit,
	}

	articles, err := s.repository.ListEnriched(r.Context(), filter)
	if err != nil {
		s.logger.Error("list enriched articles", "error", err)
		http.Error(w, "could not retrieve articles", http.StatusInternalServerError)
		return
	}

	s.respondJSON(w, map[string]any{"articles": articles, "count": len(articles)})
}

// handleAnalytics returns the category and sentiment distributions for the
// selected window.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if s.repository == nil {
		http.Error(w, "persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	filter := ports.ListFilter{Since: s.sinceParam(r)}

	categories, err := s.repository.CountByField(r.Context(), "category", filter)
	if err != nil {
		s.logger.Error("count by category", "error", err)
		http.Error(w, "could not retrieve analytics", http.StatusInternalServerError)
		return
	}

	sentiments, err := s.repository.CountByField(r.Context(), "sentiment", filter)
	if err != nil {
		s.logger.Error("count by sentiment", "error", err)
		http.Error(w, "could not retrieve analytics", http.StatusInternalServerError)
		return
	}

	s.respondJSON(w, map[string]any{
		"categories": categories,
		"sentiments": sentiments,
	})
}

// sinceParam converts an `hours` query parameter into an inclusive date
// bound; absent or malformed values mean no bound. Dates are stored at
// day granularity, so the window is widened to the containing day.
func (s *Server) sinceParam(r *http.Request) string {
	raw := r.URL.Query().Get("hours")
	if raw == "" {
		return ""
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return ""
	}
	return s.now().Add(-time.Duration(hours) * time.Hour).Format("2006-01-02")
}

func (s *Server) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
