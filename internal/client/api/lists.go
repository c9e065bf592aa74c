package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// All reading-list routes require a bearer token: lists belong to the
// signed-in user.

func (c *Client) ListReadingLists(ctx context.Context) ([]models.ReadingList, error) {
	var lists []models.ReadingList
	if _, err := c.do(ctx, http.MethodGet, "/reading-lists", nil, &lists, true); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) GetReadingList(ctx context.Context, id string) (*models.ReadingList, error) {
	var list models.ReadingList
	path := "/reading-lists/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &list, true); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CreateReadingList(ctx context.Context, list *models.ReadingList) (*models.ReadingList, error) {
	var created models.ReadingList
	if _, err := c.do(ctx, http.MethodPost, "/reading-lists", list, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateReadingList(ctx context.Context, list *models.ReadingList) (*models.ReadingList, error) {
	var updated models.ReadingList
	path := "/reading-lists/" + url.PathEscape(list.ID)
	if _, err := c.do(ctx, http.MethodPut, path, list, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteReadingList(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/reading-lists/"+url.PathEscape(id), nil, nil, true)
	return err
}

type addBookRequest struct {
	BookID string `json:"bookId"`
}

// AddBookToList appends a book to the list and returns the updated list.
func (c *Client) AddBookToList(ctx context.Context, listID, bookID string) (*models.ReadingList, error) {
	var updated models.ReadingList
	path := fmt.Sprintf("/reading-lists/%s/books", url.PathEscape(listID))
	req := addBookRequest{BookID: bookID}
	if _, err := c.do(ctx, http.MethodPost, path, req, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveBookFromList drops a book from the list and returns the updated
// list.
func (c *Client) RemoveBookFromList(ctx context.Context, listID, bookID string) (*models.ReadingList, error) {
	var updated models.ReadingList
	path := fmt.Sprintf("/reading-lists/%s/books/%s", url.PathEscape(listID), url.PathEscape(bookID))
	if _, err := c.do(ctx, http.MethodDelete, path, nil, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}
