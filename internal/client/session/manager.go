// Package session owns the client's published authentication state: the
// current user, the authenticated flag and the loading flag. A single
// Manager is constructed at startup and shared; it is the only writer of
// that state, everything else reads it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/client/identity"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

type Manager struct {
	provider identity.Provider
	logger   logging.Logger

	mu            sync.Mutex
	user          *models.User
	authenticated bool
	loading       bool
}

// NewManager binds the manager to an identity provider. Loading starts
// true and drops after the first Bootstrap completes.
func NewManager(provider identity.Provider, logger logging.Logger) *Manager {
	return &Manager{provider: provider, logger: logger, loading: true}
}

// Bootstrap runs the startup session check: fetch the session, identify
// the account, publish the resulting user. Any failure publishes an
// absent user; Bootstrap itself never fails.
func (m *Manager) Bootstrap(ctx context.Context) {
	defer m.setLoading(false)
	m.check(ctx)
}

// check re-derives the published user from the provider.
func (m *Manager) check(ctx context.Context) {
	sess, err := m.provider.FetchSession(ctx)
	if err != nil {
		m.logger.Debug(ctx, "session check: no session", "error", err)
		m.publish(nil)
		return
	}

	pu, err := m.provider.CurrentUser(ctx)
	if err != nil {
		m.logger.Debug(ctx, "session check: current user lookup failed", "error", err)
		m.publish(nil)
		return
	}

	name := ""
	if claims, err := sess.Claims(); err == nil {
		name = claims.Name
	}
	if name == "" {
		name = pu.Username
	}

	m.publish(&models.User{
		ID:        pu.ID,
		Email:     pu.Username,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	})
}

// Login signs in and, when a session was established, re-runs the session
// check so the published state reflects it.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	signedIn, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		m.logger.Warn(ctx, "sign-in failed", "email", common.MaskEmail(email), "error", err)
		return err
	}
	if signedIn {
		m.check(ctx)
	}
	return nil
}

// Signup registers a new account pending e-mail confirmation.
func (m *Manager) Signup(ctx context.Context, email, password, name string) error {
	return m.provider.SignUp(ctx, email, password, name)
}

// VerifyCode confirms a pending account with the e-mailed code.
func (m *Manager) VerifyCode(ctx context.Context, email, code string) error {
	return m.provider.ConfirmSignUp(ctx, email, code)
}

// ResendCode requests a fresh confirmation code.
func (m *Manager) ResendCode(ctx context.Context, email string) error {
	return m.provider.ResendCode(ctx, email)
}

// Logout signs out and clears the published state. A sign-out failure is
// logged, never returned: the local state is dropped regardless.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.provider.SignOut(ctx); err != nil {
		m.logger.Warn(ctx, "sign-out failed", "error", err)
	}
	m.publish(nil)
}

// User returns the published user, nil when signed out. Callers must not
// mutate the returned value.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Authenticated reports whether a user is published.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Loading reports whether the first session check is still in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) publish(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	m.authenticated = u != nil
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
}
