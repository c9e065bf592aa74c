package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(s string) error { f.calls = append(f.calls, s); return nil }

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	return f.record("signup")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) Books(ctx context.Context) error  { return f.record("books") }
func (f *fakeExec) ShowBook(ctx context.Context, id string) error {
	return f.record("book " + id)
}
func (f *fakeExec) AddBook(ctx context.Context) error { return f.record("addbook") }
func (f *fakeExec) EditBook(ctx context.Context, id string) error {
	return f.record("editbook " + id)
}
func (f *fakeExec) DeleteBook(ctx context.Context, id string) error {
	return f.record("delbook " + id)
}
func (f *fakeExec) Reviews(ctx context.Context, bookID string) error {
	return f.record("reviews " + bookID)
}
func (f *fakeExec) AddReview(ctx context.Context, bookID string) error {
	return f.record("review " + bookID)
}
func (f *fakeExec) Lists(ctx context.Context) error { return f.record("lists") }
func (f *fakeExec) ShowList(ctx context.Context, id string) error {
	return f.record("list " + id)
}
func (f *fakeExec) NewList(ctx context.Context) error { return f.record("newlist") }
func (f *fakeExec) EditList(ctx context.Context, id string) error {
	return f.record("editlist " + id)
}
func (f *fakeExec) DeleteList(ctx context.Context, id string) error {
	return f.record("dellist " + id)
}
func (f *fakeExec) ListAdd(ctx context.Context, listID, bookID string) error {
	return f.record("listadd " + listID + " " + bookID)
}
func (f *fakeExec) ListRemove(ctx context.Context, listID, bookID string) error {
	return f.record("listrm " + listID + " " + bookID)
}
func (f *fakeExec) Recommend(ctx context.Context, query string) error {
	return f.record("recommend " + query)
}

func TestRunREPL_DispatchesCommandsWithArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"books",
		"book 42",
		"reviews 42",
		"recommend cozy sci-fi",
		"listadd l1 b2",
		"",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"login", "books", "book 42", "reviews 42", "recommend cozy sci-fi", "listadd l1 b2", "logout"}
	require.Equal(t, want, exec.calls)
}

func TestRunREPL_UsageLinesSkipDispatch(t *testing.T) {
	out := capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"book",
		"editbook",
		"listadd l1",
		"recommend",
		"quit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	require.Empty(t, exec.calls)
	outputContains(t, out, "Usage: book <id>")
	outputContains(t, out, "Usage: listadd <list id> <book id>")
	outputContains(t, out, "Bye!")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	out := capturePrintln(t)

	input := strings.NewReader("help\nlogin\nhelp\nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	joined := strings.Join(*out, "\n")
	require.Contains(t, joined, "signup, login")
	require.Contains(t, joined, "whoami")
}
