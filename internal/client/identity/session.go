package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the token material of a signed-in account.
type Session struct {
	AccessToken  string
	IDToken      string
	RefreshToken string

	// ExpiresAt is when the access token stops being accepted.
	ExpiresAt time.Time

	// Username is the sign-in name the session was established with.
	Username string
}

// Valid reports whether the access token is still usable.
func (s *Session) Valid() bool {
	return s.AccessToken != "" && time.Now().Before(s.ExpiresAt)
}

// Claims is the subset of ID-token claims the client displays.
type Claims struct {
	Sub   string
	Email string
	Name  string
}

// Claims decodes the ID token payload without signature verification.
// The values are display-only.
func (s *Session) Claims() (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.IDToken, mc); err != nil {
		return nil, fmt.Errorf("failed to parse id token: %w", err)
	}

	get := func(key string) string {
		v, _ := mc[key].(string)
		return v
	}

	return &Claims{
		Sub:   get("sub"),
		Email: get("email"),
		Name:  get("name"),
	}, nil
}
