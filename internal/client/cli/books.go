package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// Books prints one line per catalog book.
func (a *App) Books(ctx context.Context) error {
	books, err := a.api.ListBooks(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(books) == 0 {
		printlnFn("The catalog is empty")
		return nil
	}
	for _, b := range books {
		printlnFn(fmt.Sprintf("%s  %s by %s (%s)", b.ID, b.Title, b.Author, b.Genre))
	}
	return nil
}

// ShowBook displays a single book. A missing book is reported, not an error.
func (a *App) ShowBook(ctx context.Context, id string) error {
	book, err := a.api.GetBook(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if book == nil {
		printlnFn("Book not found:", id)
		return nil
	}

	printlnFn(book.Title)
	printlnFn("Author:", book.Author)
	printlnFn("Genre:", book.Genre)
	if book.Description != "" {
		printlnFn(book.Description)
	}
	if book.CoverURL != "" {
		printlnFn("Cover:", book.CoverURL)
	}
	return nil
}

// AddBook collects book fields and creates the book in the catalog.
func (a *App) AddBook(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title is required")
		return nil
	}
	author, err := getSimpleText(a.reader, "Enter author", os.Stdout)
	if err != nil {
		return err
	}
	genre, err := getSimpleText(a.reader, "Enter genre", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	cover, err := getSimpleText(a.reader, "Enter cover image URL", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateBook(ctx, &models.Book{
		Title:       title,
		Author:      author,
		Genre:       genre,
		Description: description,
		CoverURL:    cover,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Added book", created.ID)
	return nil
}

// EditBook updates a book field by field; an empty input keeps the
// current value.
func (a *App) EditBook(ctx context.Context, id string) error {
	book, err := a.api.GetBook(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if book == nil {
		printlnFn("Book not found:", id)
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", book.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		book.Title = title
	}
	author, err := getSimpleText(a.reader, fmt.Sprintf("Enter author [%s]", book.Author), os.Stdout)
	if err != nil {
		return err
	}
	if author != "" {
		book.Author = author
	}
	genre, err := getSimpleText(a.reader, fmt.Sprintf("Enter genre [%s]", book.Genre), os.Stdout)
	if err != nil {
		return err
	}
	if genre != "" {
		book.Genre = genre
	}
	description, err := getMultiline(a.reader, "Enter description (empty keeps the current one)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		book.Description = description
	}
	cover, err := getSimpleText(a.reader, fmt.Sprintf("Enter cover image URL [%s]", book.CoverURL), os.Stdout)
	if err != nil {
		return err
	}
	if cover != "" {
		book.CoverURL = cover
	}

	updated, err := a.api.UpdateBook(ctx, book)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Updated book", updated.ID)
	return nil
}

// DeleteBook removes a book from the catalog.
func (a *App) DeleteBook(ctx context.Context, id string) error {
	if err := a.api.DeleteBook(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted book", id)
	return nil
}

// Reviews prints the reviews of a book.
func (a *App) Reviews(ctx context.Context, bookID string) error {
	reviews, err := a.api.ListReviews(ctx, bookID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(reviews) == 0 {
		printlnFn("No reviews yet")
		return nil
	}
	for _, r := range reviews {
		printlnFn(fmt.Sprintf("%d/5  %s (%s)", r.Rating, r.Comment, r.Author))
	}
	return nil
}

// AddReview collects a rating and a comment and posts them as a review.
// The review author is the logged-in user.
func (a *App) AddReview(ctx context.Context, bookID string) error {
	ratingText, err := getSimpleText(a.reader, "Enter rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil || rating < 1 || rating > 5 {
		printlnFn("Rating must be a whole number between 1 and 5")
		return nil
	}
	comment, err := getMultiline(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}

	review := &models.Review{Rating: rating, Comment: comment}
	if u := a.session.User(); u != nil {
		review.Author = u.Name
	}

	created, err := a.api.CreateReview(ctx, bookID, review)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Added review", created.ID)
	return nil
}

// Recommend forwards a free-form query to the recommendations endpoint
// and prints the answer.
func (a *App) Recommend(ctx context.Context, query string) error {
	text, err := a.api.Recommend(ctx, query)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(text)
	return nil
}
