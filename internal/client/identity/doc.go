// Package identity wraps the external identity provider behind a stable
// local contract.
//
// # Overview
//
// The package provides:
//  1. A provider-agnostic contract (see the Provider interface) covering
//     the account lifecycle the client needs: SignUp/ConfirmSignUp/
//     ResendCode, SignIn/SignOut, FetchSession and CurrentUser.
//  2. A concrete Cognito user pool implementation (see CognitoProvider)
//     that talks to the cognito-idp API, computes the SECRET_HASH for
//     confidential app clients, persists tokens in the local session
//     store, and refreshes an expired access token at most once per
//     FetchSession call.
//  3. A Session value carrying the three tokens plus expiry, with an
//     unverified ID-token claims parse for display data.
//
// # Error Handling
//
// Provider failures are exposed as sentinel errors that callers can match
// with errors.Is: ErrUserExists, ErrUserNotConfirmed, ErrCodeMismatch,
// ErrCodeExpired, ErrNotAuthorized, ErrLimitExceeded, ErrUserNotFound,
// ErrNoSession. Anything else is wrapped and left opaque.
//
// Concurrency & Contexts
//
// All operations accept context.Context and must honor
// cancellation/timeouts. A CognitoProvider is safe for use from a single
// goroutine at a time, which is how the client drives it.
package identity
