package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// ListBooks returns the whole catalog. Public.
func (c *Client) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if _, err := c.do(ctx, http.MethodGet, "/books", nil, &books, false); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook returns one book, or (nil, nil) when the backend reports 404.
func (c *Client) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	status, err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &book, false)
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook adds a book to the catalog and returns it with the
// server-assigned fields filled in.
func (c *Client) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	var created models.Book
	if _, err := c.do(ctx, http.MethodPost, "/books", book, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook replaces the book identified by book.ID.
func (c *Client) UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	var updated models.Book
	path := "/books/" + url.PathEscape(book.ID)
	if _, err := c.do(ctx, http.MethodPut, path, book, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes a book from the catalog.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil, true)
	return err
}

// ListReviews returns the reviews of one book. Public.
func (c *Client) ListReviews(ctx context.Context, bookID string) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/books/%s/reviews", url.PathEscape(bookID))
	if _, err := c.do(ctx, http.MethodGet, path, nil, &reviews, false); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview posts a review for a book.
func (c *Client) CreateReview(ctx context.Context, bookID string, review *models.Review) (*models.Review, error) {
	var created models.Review
	path := fmt.Sprintf("/books/%s/reviews", url.PathEscape(bookID))
	if _, err := c.do(ctx, http.MethodPost, path, review, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

type recommendRequest struct {
	Query string `json:"query"`
}

type recommendResponse struct {
	Recommendations string `json:"recommendations"`
}

// Recommend asks the backend for reading suggestions matching the query.
func (c *Client) Recommend(ctx context.Context, query string) (string, error) {
	var resp recommendResponse
	req := recommendRequest{Query: query}
	if _, err := c.do(ctx, http.MethodPost, "/recommendations", req, &resp, true); err != nil {
		return "", err
	}
	return resp.Recommendations, nil
}
