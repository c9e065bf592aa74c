package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Books(ctx context.Context) error
	ShowBook(ctx context.Context, id string) error
	AddBook(ctx context.Context) error
	EditBook(ctx context.Context, id string) error
	DeleteBook(ctx context.Context, id string) error
	Reviews(ctx context.Context, bookID string) error
	AddReview(ctx context.Context, bookID string) error
	Lists(ctx context.Context) error
	ShowList(ctx context.Context, id string) error
	NewList(ctx context.Context) error
	EditList(ctx context.Context, id string) error
	DeleteList(ctx context.Context, id string) error
	ListAdd(ctx context.Context, listID, bookID string) error
	ListRemove(ctx context.Context, listID, bookID string) error
	Recommend(ctx context.Context, query string) error
}

// runREPL starts a simple read-eval-print loop for the Bookshelf CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                    — show available commands
//	  - signup                  — create an account and verify the email
//	  - login                   — authenticate
//	  - books | book <id>       — browse the catalog
//	  - exit | quit             — leave the program
//
//	Logged in, additionally:
//	  - whoami                  — show the current user
//	  - addbook                 — add a book to the catalog
//	  - editbook <id>           — edit a book
//	  - delbook <id>            — delete a book
//	  - reviews <id>            — list reviews of a book
//	  - review <id>             — write a review
//	  - lists | list <id>       — browse reading lists
//	  - newlist                 — create a reading list
//	  - editlist <id>           — edit a reading list
//	  - dellist <id>            — delete a reading list
//	  - listadd <list> <book>   — add a book to a reading list
//	  - listrm <list> <book>    — remove a book from a reading list
//	  - recommend <query>       — ask for recommendations
//	  - logout                  — log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bookshelf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, books, book <id>, addbook, editbook <id>, delbook <id>, reviews <id>, review <id>, lists, list <id>, newlist, editlist <id>, dellist <id>, listadd <list> <book>, listrm <list> <book>, recommend <query>, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, books, book <id>, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "books":
			_ = a.Books(ctx)

		case "book":
			if len(args) == 0 {
				printlnFn("Usage: book <id>")
				continue
			}
			_ = a.ShowBook(ctx, args[0])

		case "addbook":
			_ = a.AddBook(ctx)

		case "editbook":
			if len(args) == 0 {
				printlnFn("Usage: editbook <id>")
				continue
			}
			_ = a.EditBook(ctx, args[0])

		case "delbook":
			if len(args) == 0 {
				printlnFn("Usage: delbook <id>")
				continue
			}
			_ = a.DeleteBook(ctx, args[0])

		case "reviews":
			if len(args) == 0 {
				printlnFn("Usage: reviews <book id>")
				continue
			}
			_ = a.Reviews(ctx, args[0])

		case "review":
			if len(args) == 0 {
				printlnFn("Usage: review <book id>")
				continue
			}
			_ = a.AddReview(ctx, args[0])

		case "lists":
			_ = a.Lists(ctx)

		case "list":
			if len(args) == 0 {
				printlnFn("Usage: list <id>")
				continue
			}
			_ = a.ShowList(ctx, args[0])

		case "newlist":
			_ = a.NewList(ctx)

		case "editlist":
			if len(args) == 0 {
				printlnFn("Usage: editlist <id>")
				continue
			}
			_ = a.EditList(ctx, args[0])

		case "dellist":
			if len(args) == 0 {
				printlnFn("Usage: dellist <id>")
				continue
			}
			_ = a.DeleteList(ctx, args[0])

		case "listadd":
			if len(args) < 2 {
				printlnFn("Usage: listadd <list id> <book id>")
				continue
			}
			_ = a.ListAdd(ctx, args[0], args[1])

		case "listrm":
			if len(args) < 2 {
				printlnFn("Usage: listrm <list id> <book id>")
				continue
			}
			_ = a.ListRemove(ctx, args[0], args[1])

		case "recommend":
			if len(args) == 0 {
				printlnFn("Usage: recommend <query>")
				continue
			}
			_ = a.Recommend(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
