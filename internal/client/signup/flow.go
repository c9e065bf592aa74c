// Package signup implements the two-step sign-up and verification flow.
//
// A Flow starts on the sign-up form, moves to the verification form once
// the account is registered (or turns out to already exist unconfirmed),
// and finishes when the verification code is accepted. Completing the
// flow does not establish a session; the user logs in afterwards.
package signup

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookshelf/internal/client/identity"
	"github.com/dmitrijs2005/bookshelf/internal/client/validate"
)

// Step selects which form is active.
type Step int

const (
	StepSignUp Step = iota
	StepVerification
)

// Kind classifies a resend status message.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

// Status is the outcome of the most recent resend attempt.
type Status struct {
	Message string
	Kind    Kind
}

// Draft holds the form fields the user is editing.
type Draft struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Code            string
}

// AuthService is the slice of the session manager the flow needs.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
}

const (
	msgUserExists   = "an account with this email already exists; please verify your email"
	msgInvalidCode  = "invalid verification code"
	msgCodeSent     = "new code sent"
	msgResendFailed = "could not resend the code, please wait a few minutes and try again"
)

// Flow drives a single registration attempt. Construct one per signup
// command; it always starts at StepSignUp. Flow is not safe for
// concurrent use; the caller runs one operation to completion at a time.
type Flow struct {
	auth   AuthService
	notify func(error)

	// Draft is filled in by the caller before each Submit call.
	Draft Draft

	step   Step
	errors validate.Errors
	status *Status
	done   bool
}

// NewFlow returns a flow at StepSignUp. Errors that the flow does not
// handle itself are passed to notify.
func NewFlow(auth AuthService, notify func(error)) *Flow {
	if notify == nil {
		notify = func(error) {}
	}
	return &Flow{auth: auth, notify: notify, errors: validate.Errors{}}
}

// Step reports which form is active.
func (f *Flow) Step() Step { return f.step }

// Errors returns the current field errors keyed by field name.
func (f *Flow) Errors() validate.Errors { return f.errors }

// ResendStatus returns the outcome of the last resend attempt, or nil
// when no attempt has resolved since the last sign-up or resend started.
func (f *Flow) ResendStatus() *Status { return f.status }

// Done reports whether verification succeeded and the flow is over.
func (f *Flow) Done() bool { return f.done }

// SubmitSignUp validates the draft and registers the account. On a
// violation the field errors are set and nothing is sent. When the
// account already exists unconfirmed, the flow advances to verification
// anyway and requests a fresh code once; a failure of that resend is
// swallowed and the user can resend manually.
func (f *Flow) SubmitSignUp(ctx context.Context) {
	f.status = nil
	f.errors = validate.CheckSignUp(f.Draft.Name, f.Draft.Email, f.Draft.Password, f.Draft.ConfirmPassword)
	if len(f.errors) > 0 {
		return
	}

	err := f.auth.Signup(ctx, f.Draft.Email, f.Draft.Password, f.Draft.Name)
	switch {
	case err == nil:
		f.step = StepVerification
	case errors.Is(err, identity.ErrUserExists):
		f.errors["email"] = msgUserExists
		f.step = StepVerification
		if resendErr := f.auth.ResendCode(ctx, f.Draft.Email); resendErr == nil {
			f.status = &Status{Message: msgCodeSent, Kind: KindSuccess}
		}
	default:
		f.notify(err)
	}
}

// SubmitVerification confirms the account with the entered code. On
// success the flow is done and the draft can be discarded; no session
// is established.
func (f *Flow) SubmitVerification(ctx context.Context) {
	if errs := validate.CheckCode(f.Draft.Code); len(errs) > 0 {
		f.errors["code"] = errs["code"]
		return
	}

	if err := f.auth.VerifyCode(ctx, f.Draft.Email, f.Draft.Code); err != nil {
		f.notify(err)
		f.errors["code"] = msgInvalidCode
		return
	}
	f.errors = validate.Errors{}
	f.done = true
}

// Resend requests a new verification code for the draft email. The
// previous status is cleared first; every failure renders the same
// message no matter the cause.
func (f *Flow) Resend(ctx context.Context) {
	f.status = nil
	if err := f.auth.ResendCode(ctx, f.Draft.Email); err != nil {
		f.status = &Status{Message: msgResendFailed, Kind: KindError}
		return
	}
	f.status = &Status{Message: msgCodeSent, Kind: KindSuccess}
}
