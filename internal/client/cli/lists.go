package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// Lists prints one line per reading list.
func (a *App) Lists(ctx context.Context) error {
	lists, err := a.api.ListReadingLists(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(lists) == 0 {
		printlnFn("No reading lists yet")
		return nil
	}
	for _, l := range lists {
		printlnFn(fmt.Sprintf("%s  %s (%d books)", l.ID, l.Name, len(l.BookIDs)))
	}
	return nil
}

// ShowList displays a reading list with the titles of its books. Books
// that have disappeared from the catalog are marked as unavailable.
func (a *App) ShowList(ctx context.Context, id string) error {
	list, err := a.api.GetReadingList(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(list.Name)
	if list.Description != "" {
		printlnFn(list.Description)
	}
	if len(list.BookIDs) == 0 {
		printlnFn("The list is empty")
		return nil
	}
	for _, bookID := range list.BookIDs {
		book, err := a.api.GetBook(ctx, bookID)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		if book == nil {
			printlnFn(fmt.Sprintf("  %s (no longer in the catalog)", bookID))
			continue
		}
		printlnFn(fmt.Sprintf("  %s  %s by %s", book.ID, book.Title, book.Author))
	}
	return nil
}

// NewList creates a reading list.
func (a *App) NewList(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter list name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("List name is required")
		return nil
	}
	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateReadingList(ctx, &models.ReadingList{Name: name, Description: description})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created reading list", created.ID)
	return nil
}

// EditList updates a reading list's name and description; an empty
// input keeps the current value.
func (a *App) EditList(ctx context.Context, id string) error {
	list, err := a.api.GetReadingList(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", list.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		list.Name = name
	}
	description, err := getSimpleText(a.reader, fmt.Sprintf("Enter description [%s]", list.Description), os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		list.Description = description
	}

	updated, err := a.api.UpdateReadingList(ctx, list)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Updated reading list", updated.ID)
	return nil
}

// DeleteList removes a reading list.
func (a *App) DeleteList(ctx context.Context, id string) error {
	if err := a.api.DeleteReadingList(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted reading list", id)
	return nil
}

// ListAdd adds a book to a reading list.
func (a *App) ListAdd(ctx context.Context, listID, bookID string) error {
	updated, err := a.api.AddBookToList(ctx, listID, bookID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Added %s to %s (%d books)", bookID, updated.Name, len(updated.BookIDs)))
	return nil
}

// ListRemove removes a book from a reading list.
func (a *App) ListRemove(ctx context.Context, listID, bookID string) error {
	updated, err := a.api.RemoveBookFromList(ctx, listID, bookID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Removed %s from %s (%d books)", bookID, updated.Name, len(updated.BookIDs)))
	return nil
}
