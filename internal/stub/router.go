package stub

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Router returns the HTTP surface of the stub backend.
//
// Public routes: list books, get a book, list its reviews. Everything
// else requires a bearer token to be present; the token itself is never
// validated.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Use(s.withDelay)

	r.Route("/books", func(r chi.Router) {
		r.Get("/", s.listBooks)
		r.With(requireBearer).Post("/", s.createBook)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getBook)
			r.With(requireBearer).Put("/", s.updateBook)
			r.With(requireBearer).Delete("/", s.deleteBook)

			r.Get("/reviews", s.listReviews)
			r.With(requireBearer).Post("/reviews", s.createReview)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(requireBearer)

		r.Post("/recommendations", s.recommend)

		r.Route("/reading-lists", func(r chi.Router) {
			r.Get("/", s.listReadingLists)
			r.Post("/", s.createReadingList)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getReadingList)
				r.Put("/", s.updateReadingList)
				r.Delete("/", s.deleteReadingList)

				r.Post("/books", s.addListBook)
				r.Delete("/books/{bookID}", s.removeListBook)
			})
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.logger != nil {
			s.logger.Debug(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start).String(),
			)
		}
	})
}

func (s *Server) withDelay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		next.ServeHTTP(w, r)
	})
}

// requireBearer rejects requests without a bearer token. The stub only
// checks presence.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
