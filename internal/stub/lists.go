package stub

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// GET /reading-lists
func (s *Server) listReadingLists(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]models.ReadingList, 0, len(s.listOrder))
	for _, id := range s.listOrder {
		out = append(out, s.lists[id])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

// GET /reading-lists/{id}
func (s *Server) getReadingList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	list, ok := s.lists[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "reading list not found")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// POST /reading-lists
func (s *Server) createReadingList(w http.ResponseWriter, r *http.Request) {
	var list models.ReadingList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if list.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	now := time.Now().UTC()
	list.ID = uuid.NewString()
	if list.BookIDs == nil {
		list.BookIDs = []string{}
	}
	list.CreatedAt = now
	list.UpdatedAt = now

	s.mu.Lock()
	s.lists[list.ID] = list
	s.listOrder = append(s.listOrder, list.ID)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, list)
}

// PUT /reading-lists/{id}
func (s *Server) updateReadingList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.ReadingList
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	s.mu.Lock()
	current, ok := s.lists[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "reading list not found")
		return
	}
	in.ID = current.ID
	in.CreatedAt = current.CreatedAt
	in.UpdatedAt = time.Now().UTC()
	if in.BookIDs == nil {
		in.BookIDs = current.BookIDs
	}
	s.lists[id] = in
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, in)
}

// DELETE /reading-lists/{id}
func (s *Server) deleteReadingList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	if _, ok := s.lists[id]; !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "reading list not found")
		return
	}
	delete(s.lists, id)
	for i, v := range s.listOrder {
		if v == id {
			s.listOrder = append(s.listOrder[:i], s.listOrder[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

type addListBookRequest struct {
	BookID string `json:"bookId"`
}

// POST /reading-lists/{id}/books
func (s *Server) addListBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req addListBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	s.mu.Lock()
	list, ok := s.lists[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "reading list not found")
		return
	}
	if _, ok := s.books[req.BookID]; !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	present := false
	for _, b := range list.BookIDs {
		if b == req.BookID {
			present = true
			break
		}
	}
	if !present {
		list.BookIDs = append(list.BookIDs, req.BookID)
		list.UpdatedAt = time.Now().UTC()
		s.lists[id] = list
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, list)
}

// DELETE /reading-lists/{id}/books/{bookID}
func (s *Server) removeListBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	bookID := chi.URLParam(r, "bookID")

	s.mu.Lock()
	list, ok := s.lists[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "reading list not found")
		return
	}
	kept := make([]string, 0, len(list.BookIDs))
	for _, b := range list.BookIDs {
		if b != bookID {
			kept = append(kept, b)
		}
	}
	list.BookIDs = kept
	list.UpdatedAt = time.Now().UTC()
	s.lists[id] = list
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, list)
}
