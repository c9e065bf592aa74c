package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

// ---- fake token source ----

type fakeTokens struct {
	token string
	err   error
	calls int
}

func (f *fakeTokens) AccessToken(ctx context.Context) (string, error) {
	f.calls++
	return f.token, f.err
}

func testClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	if tokens == nil {
		tokens = &fakeTokens{token: "tok"}
	}
	return New(srv.URL, 5*time.Second, tokens, logging.New("error", io.Discard))
}

/*************
 * Request dressing
 *************/

func TestDo_SetsHeaders(t *testing.T) {
	var gotUA, gotReqID, gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReqID = r.Header.Get("X-Request-Id")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Book{})
	}), nil)

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)

	assert.Contains(t, gotUA, "bookshelf/")
	assert.NotEmpty(t, gotReqID)
	assert.Empty(t, gotAuth, "public route must not carry a bearer token")
}

func TestDo_FreshRequestIDPerCall(t *testing.T) {
	var ids []string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-Id"))
		_ = json.NewEncoder(w).Encode([]models.Book{})
	}), nil)

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)
	_, err = c.ListBooks(context.Background())
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestDo_AttachesBearerOnAuthedRoutes(t *testing.T) {
	var gotAuth string
	ft := &fakeTokens{token: "tok-123"}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.ReadingList{})
	}), ft)

	_, err := c.ListReadingLists(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, 1, ft.calls)
}

func TestDo_TokenSourceErrorPropagates(t *testing.T) {
	tokenErr := errors.New("no active session")
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request must not reach the server without a token")
	}), &fakeTokens{err: tokenErr})

	_, err := c.ListReadingLists(context.Background())
	require.ErrorIs(t, err, tokenErr)
}

/*************
 * Status handling
 *************/

func TestDo_NonOKStatusIsRequestFailed(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kaput", http.StatusInternalServerError)
	}), nil)

	_, err := c.ListBooks(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)
	require.Contains(t, err.Error(), "status 500")
}

func TestDo_TransportErrorIsRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, time.Second, &fakeTokens{}, logging.New("error", io.Discard))
	_, err := c.ListBooks(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestGetBook_NotFoundIsAbsentNotError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), nil)

	book, err := c.GetBook(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, book)
}

func TestGetReadingList_NotFoundStaysAnError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), nil)

	_, err := c.GetReadingList(context.Background(), "nope")
	require.ErrorIs(t, err, ErrRequestFailed)
}

/*************
 * Round trips
 *************/

func TestGetBook_DecodesBook(t *testing.T) {
	want := models.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert", Genre: "sci-fi"}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/b1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(want)
	}), nil)

	got, err := c.GetBook(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, &want, got)
}

func TestCreateBook_SendsBodyAndDecodesCreated(t *testing.T) {
	var received models.Book
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/books", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		received.ID = "b-new"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}), nil)

	created, err := c.CreateBook(context.Background(), &models.Book{Title: "Dune"})
	require.NoError(t, err)
	require.Equal(t, "b-new", created.ID)
	require.Equal(t, "Dune", received.Title)
}

func TestUpdateBook_PutsToBookPath(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/books/b1", r.URL.Path)
		var b models.Book
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		_ = json.NewEncoder(w).Encode(b)
	}), nil)

	updated, err := c.UpdateBook(context.Background(), &models.Book{ID: "b1", Title: "Dune II"})
	require.NoError(t, err)
	require.Equal(t, "Dune II", updated.Title)
}

func TestDeleteBook_NoContent(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/books/b1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}), nil)

	require.NoError(t, c.DeleteBook(context.Background(), "b1"))
}

func TestListReviews_PublicRoundTrip(t *testing.T) {
	want := []models.Review{{ID: "r1", BookID: "b1", Rating: 5, Comment: "great"}}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/b1/reviews", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(want)
	}), nil)

	got, err := c.ListReviews(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCreateReview_PostsToBookReviews(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/books/b1/reviews", r.URL.Path)
		var rv models.Review
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rv))
		rv.ID = "r-new"
		_ = json.NewEncoder(w).Encode(rv)
	}), nil)

	created, err := c.CreateReview(context.Background(), "b1", &models.Review{Rating: 4, Comment: "solid"})
	require.NoError(t, err)
	require.Equal(t, "r-new", created.ID)
	require.Equal(t, 4, created.Rating)
}

func TestRecommend_RoundTrip(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations", r.URL.Path)

		var req recommendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "space opera", req.Query)

		_ = json.NewEncoder(w).Encode(recommendResponse{Recommendations: "try Dune"})
	}), nil)

	got, err := c.Recommend(context.Background(), "space opera")
	require.NoError(t, err)
	require.Equal(t, "try Dune", got)
}

func TestReadingLists_AddRemoveRoundTrip(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/reading-lists/l1/books":
			var req addBookRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(models.ReadingList{ID: "l1", BookIDs: []string{req.BookID}})
		case r.Method == http.MethodDelete && r.URL.Path == "/reading-lists/l1/books/b1":
			_ = json.NewEncoder(w).Encode(models.ReadingList{ID: "l1", BookIDs: []string{}})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}), nil)

	ctx := context.Background()

	added, err := c.AddBookToList(ctx, "l1", "b1")
	require.NoError(t, err)
	require.Equal(t, []string{"b1"}, added.BookIDs)

	removed, err := c.RemoveBookFromList(ctx, "l1", "b1")
	require.NoError(t, err)
	require.Empty(t, removed.BookIDs)
}

func TestBaseURL_TrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]models.Book{})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL+"/", time.Second, &fakeTokens{}, logging.New("error", io.Discard))
	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/books", gotPath)
}
