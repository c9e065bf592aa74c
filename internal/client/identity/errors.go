package identity

import "errors"

var (
	ErrUserExists       = errors.New("account already exists")
	ErrUserNotConfirmed = errors.New("account is not confirmed")
	ErrCodeMismatch     = errors.New("invalid verification code")
	ErrCodeExpired      = errors.New("verification code expired")
	ErrNotAuthorized    = errors.New("incorrect email or password")
	ErrLimitExceeded    = errors.New("attempt limit exceeded, try again later")
	ErrUserNotFound     = errors.New("account not found")
	ErrNoSession        = errors.New("no active session")
)
