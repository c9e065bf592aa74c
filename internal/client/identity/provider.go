package identity

import "context"

// ProviderUser is the minimal account identity the provider reports for
// the signed-in user.
type ProviderUser struct {
	// ID is the provider's stable identifier (the "sub" attribute).
	ID string
	// Username is the sign-in name, an email address for this pool.
	Username string
}

// Provider is the contract the rest of the client consumes.
//
// Contract:
//   - SignUp: create an account pending e-mail confirmation.
//   - ConfirmSignUp: confirm the account with the e-mailed code.
//   - ResendCode: request a fresh confirmation code.
//   - SignIn: authenticate; the flag reports whether a session was
//     established (false without error means an unmet provider challenge).
//   - SignOut: revoke tokens best-effort and drop the local session.
//   - FetchSession: return the current session, refreshing an expired
//     access token at most once; ErrNoSession when nothing usable remains.
//   - CurrentUser: identify the signed-in account.
type Provider interface {
	SignUp(ctx context.Context, email, password, name string) error
	ConfirmSignUp(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
	SignIn(ctx context.Context, email, password string) (bool, error)
	SignOut(ctx context.Context) error
	FetchSession(ctx context.Context) (*Session, error)
	CurrentUser(ctx context.Context) (*ProviderUser, error)
}
