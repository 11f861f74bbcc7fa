/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/mikeb26/worldcup-teamviewer/present"
	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

type Options struct {
	AllowedOrigins []string
	// RateLimit is the sustained requests per second allowed across all
	// clients; zero disables limiting.
	RateLimit float64
	// Location is the zone times are rendered in; defaults to UTC.
	Location *time.Location
}

type Server struct {
	catalog *wcup.Catalog
	loc     *time.Location
}

// NewRouter returns the viewer's HTTP handler over an already loaded catalog.
func NewRouter(catalog *wcup.Catalog, opts Options) http.Handler {
	s := &Server{catalog: catalog, loc: opts.Location}
	if s.loc == nil {
		s.loc = time.UTC
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.RateLimit > 0 {
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit),
			burstFor(opts.RateLimit))))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)
	r.Get("/", s.index)
	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.listTeams)
		r.Get("/teams/{code}", s.getTeam)
		r.Get("/groups/{id}", s.getGroup)
		r.Get("/compare", s.compare)
	})

	return r
}

func burstFor(limit float64) int {
	if b := int(2 * limit); b > 1 {
		return b
	}
	return 1
}

// RateLimit rejects requests beyond the limiter's budget with 429.
func RateLimit(lim *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests),
					http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"teams":  s.catalog.Index().Len(),
	})
}

// resolveSelection turns a query value into a team code, accepting names as
// well as codes. Values that match nothing are returned unchanged so the
// page can report them as unknown.
func (s *Server) resolveSelection(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	if _, ok := s.catalog.Index().Lookup(q); ok {
		return q
	}
	if t, err := s.catalog.Index().FindTeam(q); err == nil {
		return t.Code
	}
	return q
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	sel := s.resolveSelection(r.URL.Query().Get("team"))
	page := present.NewPage(s.catalog.Index(), s.catalog.View(sel), s.loc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := present.RenderPage(w, page); err != nil {
		log.Printf("web.index: %v", err)
	}
}

type teamEntry struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Group string `json:"group"`
	Host  bool   `json:"host"`
	Flag  string `json:"flag,omitempty"`
}

func (s *Server) listTeams(w http.ResponseWriter, r *http.Request) {
	teams := s.catalog.Index().SortedByName()
	out := make([]teamEntry, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamEntry{
			Code:  t.Code,
			Name:  t.Name,
			Group: t.Group,
			Host:  t.Host,
			Flag:  present.FlagURL(t.Code),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type viewResponse struct {
	wcup.View
	State string `json:"state"`
}

// getTeam only accepts team codes (any case); names and near misses are
// left to the page and compare routes so that an unknown code is a 404.
func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))
	v := s.catalog.View(code)
	status := http.StatusOK
	if v.State() == wcup.StateUnknownTeam {
		status = http.StatusNotFound
	}
	writeJSON(w, status, viewResponse{View: v, State: v.State().String()})
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	members, ok := s.catalog.GroupTable(strings.ToUpper(id))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown group "+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"group":   strings.ToUpper(id),
		"members": members,
	})
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := s.resolveSelection(q.Get("a")), s.resolveSelection(q.Get("b"))
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, "both a and b are required")
		return
	}
	cmp := s.catalog.Compare(a, b)
	if cmp.A == nil || cmp.B == nil {
		writeJSON(w, http.StatusNotFound, cmp)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web.write: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
