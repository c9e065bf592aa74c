package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/client/api"
	"github.com/dmitrijs2005/bookshelf/internal/client/config"
	"github.com/dmitrijs2005/bookshelf/internal/client/identity"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/client/session"
	"github.com/dmitrijs2005/bookshelf/internal/client/store"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

// authService is the slice of the session manager the commands use.
type authService interface {
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context)
	Signup(ctx context.Context, email, password, name string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
	User() *models.User
	Authenticated() bool
}

// bookAPI is the slice of the API client the commands use.
type bookAPI interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListReviews(ctx context.Context, bookID string) ([]models.Review, error)
	CreateReview(ctx context.Context, bookID string, review *models.Review) (*models.Review, error)
	Recommend(ctx context.Context, query string) (string, error)
	ListReadingLists(ctx context.Context) ([]models.ReadingList, error)
	GetReadingList(ctx context.Context, id string) (*models.ReadingList, error)
	CreateReadingList(ctx context.Context, list *models.ReadingList) (*models.ReadingList, error)
	UpdateReadingList(ctx context.Context, list *models.ReadingList) (*models.ReadingList, error)
	DeleteReadingList(ctx context.Context, id string) error
	AddBookToList(ctx context.Context, listID, bookID string) (*models.ReadingList, error)
	RemoveBookFromList(ctx context.Context, listID, bookID string) (*models.ReadingList, error)
}

type App struct {
	config  *config.Config
	session authService
	api     bookAPI
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	db, err := store.Open(ctx, cfg.StorePath)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "error", err)
		return nil, err
	}

	provider, err := identity.NewCognitoProvider(ctx, db, identity.Options{
		Region:       cfg.CognitoRegion,
		ClientID:     cfg.CognitoClientID,
		ClientSecret: cfg.CognitoClientSecret,
		Endpoint:     cfg.CognitoEndpoint,
	}, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		session: session.NewManager(provider, logger),
		api:     api.New(cfg.APIBaseURL, cfg.RequestTimeout, provider, logger),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a previous session if one is stored, then blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Bootstrap(ctx)

	printlnFn("Welcome to Bookshelf (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the session store.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}
