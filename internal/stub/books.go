package stub

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// GET /books
func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]models.Book, 0, len(s.bookOrder))
	for _, id := range s.bookOrder {
		out = append(out, s.books[id])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

// GET /books/{id}
func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	book, ok := s.books[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// POST /books
func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if book.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	now := time.Now().UTC()
	book.ID = uuid.NewString()
	book.CreatedAt = now
	book.UpdatedAt = now

	s.mu.Lock()
	s.books[book.ID] = book
	s.bookOrder = append(s.bookOrder, book.ID)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, book)
}

// PUT /books/{id}
func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.Book
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	s.mu.Lock()
	current, ok := s.books[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	in.ID = current.ID
	in.CreatedAt = current.CreatedAt
	in.UpdatedAt = time.Now().UTC()
	s.books[id] = in
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, in)
}

// DELETE /books/{id}
func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	if _, ok := s.books[id]; !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	delete(s.books, id)
	delete(s.reviews, id)
	for i, v := range s.bookOrder {
		if v == id {
			s.bookOrder = append(s.bookOrder[:i], s.bookOrder[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// GET /books/{id}/reviews
func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	_, ok := s.books[id]
	reviews := make([]models.Review, len(s.reviews[id]))
	copy(reviews, s.reviews[id])
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// POST /books/{id}/reviews
func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	review.ID = uuid.NewString()
	review.BookID = id
	review.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	if _, ok := s.books[id]; !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	s.reviews[id] = append(s.reviews[id], review)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, review)
}

type recommendRequest struct {
	Query string `json:"query"`
}

type recommendResponse struct {
	Recommendations string `json:"recommendations"`
}

// POST /recommendations
func (s *Server) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	s.mu.Lock()
	text := s.recommendation(req.Query)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, recommendResponse{Recommendations: text})
}
