// Package stub implements an in-memory stand-in for the Bookshelf
// backend, meant for local development of the client. It speaks the
// same JSON shapes the client models define, checks only that a bearer
// token is present on protected routes, and keeps everything in memory.
// It is not the real backend: no persistence, no business rules.
package stub

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

// Options configures a stub server.
type Options struct {
	// Delay is slept before every response, imitating a slow backend.
	Delay  time.Duration
	Logger logging.Logger
}

// Server holds the in-memory catalog state. All access goes through mu;
// HTTP handlers run concurrently.
type Server struct {
	delay  time.Duration
	logger logging.Logger

	mu        sync.Mutex
	books     map[string]models.Book
	bookOrder []string
	reviews   map[string][]models.Review
	lists     map[string]models.ReadingList
	listOrder []string
}

// NewServer returns a stub server seeded with a small catalog.
func NewServer(opts Options) *Server {
	s := &Server{
		delay:   opts.Delay,
		logger:  opts.Logger,
		books:   make(map[string]models.Book),
		reviews: make(map[string][]models.Review),
		lists:   make(map[string]models.ReadingList),
	}
	for _, b := range seedBooks() {
		s.books[b.ID] = b
		s.bookOrder = append(s.bookOrder, b.ID)
	}
	for _, r := range seedReviews() {
		s.reviews[r.BookID] = append(s.reviews[r.BookID], r)
	}
	return s
}

func seedBooks() []models.Book {
	now := time.Now().UTC()
	mk := func(id, title, author, genre, description string) models.Book {
		return models.Book{
			ID:          id,
			Title:       title,
			Author:      author,
			Genre:       genre,
			Description: description,
			CoverURL:    fmt.Sprintf("https://covers.bookshelf.local/%s.jpg", id),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []models.Book{
		mk("b-0001", "Dune", "Frank Herbert", "science fiction",
			"A noble family takes stewardship of the desert planet Arrakis, the only source of the spice melange."),
		mk("b-0002", "Pride and Prejudice", "Jane Austen", "classic",
			"Elizabeth Bennet navigates manners, upbringing and marriage in early 19th-century England."),
		mk("b-0003", "The Hobbit", "J.R.R. Tolkien", "fantasy",
			"Bilbo Baggins is swept into a quest to reclaim the dwarven kingdom of Erebor."),
		mk("b-0004", "The Left Hand of Darkness", "Ursula K. Le Guin", "science fiction",
			"An envoy to the planet Gethen must bridge a culture without fixed gender."),
		mk("b-0005", "The Name of the Rose", "Umberto Eco", "mystery",
			"A Franciscan friar investigates a series of deaths in a medieval abbey."),
	}
}

func seedReviews() []models.Review {
	now := time.Now().UTC()
	return []models.Review{
		{ID: "r-0001", BookID: "b-0001", Author: "Ada", Rating: 5, Comment: "The spice must flow.", CreatedAt: now},
		{ID: "r-0002", BookID: "b-0001", Author: "Grace", Rating: 4, Comment: "Dense but rewarding.", CreatedAt: now},
		{ID: "r-0003", BookID: "b-0003", Author: "Alan", Rating: 5, Comment: "A comfortable read for any armchair adventurer.", CreatedAt: now},
	}
}

// recommendation builds the canned answer for a query. The caller holds mu.
func (s *Server) recommendation(query string) string {
	titles := make([]string, 0, 3)
	for _, id := range s.bookOrder {
		if len(titles) == 3 {
			break
		}
		b := s.books[id]
		titles = append(titles, fmt.Sprintf("%s by %s", b.Title, b.Author))
	}
	if len(titles) == 0 {
		return fmt.Sprintf("No recommendations for %q yet; the catalog is empty.", query)
	}
	return fmt.Sprintf("Based on %q you might enjoy: %s.", query, strings.Join(titles, "; "))
}
