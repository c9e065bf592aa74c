// Package common contains small helpers shared across the client layers.
package common

import "strings"

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as passwords from memory
// after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// MaskEmail obscures the local part of an email address for log output,
// keeping the first character and the full domain: "alice@example.org"
// becomes "a***@example.org". Strings without '@' are masked entirely.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
