package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodPassword = "Abcdef1!"

func TestCheckSignUp_Valid(t *testing.T) {
	errs := CheckSignUp("Alice", "alice@example.org", goodPassword, goodPassword)
	assert.Empty(t, errs)
}

func TestCheckSignUp_SingleRuleViolations(t *testing.T) {
	tests := []struct {
		name     string
		inName   string
		email    string
		password string
		confirm  string
		wantKey  string
		wantMsg  string
	}{
		{name: "empty name", inName: "", email: "a@b.co", password: goodPassword, confirm: goodPassword,
			wantKey: "name", wantMsg: "Name is required"},
		{name: "empty email", inName: "A", email: "", password: goodPassword, confirm: goodPassword,
			wantKey: "email", wantMsg: "Email is required"},
		{name: "malformed email", inName: "A", email: "not-an-email", password: goodPassword, confirm: goodPassword,
			wantKey: "email", wantMsg: "Enter a valid email address"},
		{name: "short password", inName: "A", email: "a@b.co", password: "Ab1!", confirm: "Ab1!",
			wantKey: "password", wantMsg: "Password must be at least 8 characters"},
		{name: "no lowercase", inName: "A", email: "a@b.co", password: "ABCDEF1!", confirm: "ABCDEF1!",
			wantKey: "password", wantMsg: "Password must contain a lowercase letter"},
		{name: "no uppercase", inName: "A", email: "a@b.co", password: "abcdef1!", confirm: "abcdef1!",
			wantKey: "password", wantMsg: "Password must contain an uppercase letter"},
		{name: "no digit", inName: "A", email: "a@b.co", password: "Abcdefg!", confirm: "Abcdefg!",
			wantKey: "password", wantMsg: "Password must contain a number"},
		{name: "no special", inName: "A", email: "a@b.co", password: "Abcdefg1", confirm: "Abcdefg1",
			wantKey: "password", wantMsg: "Password must contain a special character"},
		{name: "empty confirm", inName: "A", email: "a@b.co", password: goodPassword, confirm: "",
			wantKey: "confirmPassword", wantMsg: "Confirm password is required"},
		{name: "mismatched confirm", inName: "A", email: "a@b.co", password: goodPassword, confirm: "Abcdef2!",
			wantKey: "confirmPassword", wantMsg: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckSignUp(tt.inName, tt.email, tt.password, tt.confirm)
			require.Len(t, errs, 1, "exactly one field must fail")
			assert.Equal(t, tt.wantMsg, errs[tt.wantKey])
		})
	}
}

func TestCheckSignUp_ReportsFirstRulePerField(t *testing.T) {
	// Empty password violates several rules; only "required" is reported.
	errs := CheckSignUp("A", "a@b.co", "", "")
	assert.Equal(t, "Password is required", errs["password"])
	assert.Equal(t, "Confirm password is required", errs["confirmPassword"])
}

func TestCheckSignUp_AllFieldsEmpty(t *testing.T) {
	errs := CheckSignUp("", "", "", "")
	require.Len(t, errs, 4)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
	assert.Equal(t, "Confirm password is required", errs["confirmPassword"])
}

func TestCheckCode(t *testing.T) {
	assert.Empty(t, CheckCode("123456"))

	errs := CheckCode("")
	require.Len(t, errs, 1)
	assert.Equal(t, "Verification code is required", errs["code"])
}
