// Package server exposes built chart documents over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/ademuri/chart-tools/internal/pipeline"
)

type Server struct {
	docs   *pipeline.Documents
	logger *slog.Logger
}

func New(docs *pipeline.Documents, logger *slog.Logger) *Server {
	return &Server{
		docs:   docs,
		logger: logger.With(slog.String("component", "server")),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/network", s.getNetwork)
		r.Get("/profiles", s.getProfiles)
		r.Get("/profiles/{country}/{artist}", s.getProfile)
	})
	return r
}

func (s *Server) getNetwork(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.docs.Network)
}

func (s *Server) getProfiles(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.docs.Profiles)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	artist, err := pathParam(r, "artist")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "invalid artist name"})
		return
	}

	profile, ok := s.docs.Profiles.Get(artist, country)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "no profile for " + artist + " in " + country})
		return
	}
	render.JSON(w, r, profile)
}

// pathParam returns a decoded route parameter. chi matches against the raw
// path only when the request carries one (e.g. an escaped "/"), and only
// then is the parameter still escaped.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)))
	})
}
