// Package cryptox contains small cryptographic helpers used by the
// client.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash computes the SECRET_HASH parameter Cognito expects from
// app clients configured with a client secret:
// Base64(HMAC-SHA256(secret, username+clientID)).
func SecretHash(secret, username, clientID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
