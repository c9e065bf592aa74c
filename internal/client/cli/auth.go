package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/client/signup"
	"github.com/dmitrijs2005/bookshelf/internal/client/validate"
	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// signupFields fixes the render order of field errors.
var signupFields = []string{"name", "email", "password", "confirmPassword", "code"}

func printFieldErrors(errs validate.Errors) {
	for _, field := range signupFields {
		if msg, ok := errs[field]; ok {
			printlnFn(fmt.Sprintf("  %s: %s", field, msg))
		}
	}
}

func printResendStatus(st *signup.Status) {
	if st == nil {
		return
	}
	if st.Kind == signup.KindError {
		printlnFn("Error:", st.Message)
		return
	}
	printlnFn(st.Message)
}

// Signup walks the interactive registration wizard: the sign-up form
// first, then the verification form until the account is confirmed or
// the user cancels. Completing the wizard does not log the user in.
//
// The password byte slices are securely wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	flow := signup.NewFlow(a.session, func(err error) {
		printlnFn("Error:", err.Error())
	})

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	flow.Draft.Name = name
	flow.Draft.Email = email
	flow.Draft.Password = string(password)
	flow.Draft.ConfirmPassword = string(confirm)

	flow.SubmitSignUp(ctx)
	printFieldErrors(flow.Errors())
	printResendStatus(flow.ResendStatus())
	if flow.Step() != signup.StepVerification {
		return nil
	}

	printlnFn("A verification code was sent to", flow.Draft.Email)
	for !flow.Done() {
		code, err := getSimpleText(a.reader, "Enter verification code (/resend for a new one, /cancel to abort)", os.Stdout)
		if err != nil {
			return err
		}
		switch code {
		case "/cancel":
			return nil
		case "/resend":
			flow.Resend(ctx)
			printResendStatus(flow.ResendStatus())
			continue
		}
		flow.Draft.Code = code
		flow.SubmitVerification(ctx)
		if !flow.Done() {
			printFieldErrors(flow.Errors())
		}
	}

	printlnFn("Account confirmed. Use 'login' to sign in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the restored user is shown in the prompt. A sign-in that
// the provider answers with an additional challenge is reported as
// unsupported; the session stays logged out.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return nil
	}
	if !a.session.Authenticated() {
		printlnFn("Sign-in needs an additional verification step that this client does not support.")
		return nil
	}

	printlnFn("Logged in as", a.session.User().Email)
	return nil
}

// Logout ends the session. Local state is cleared even when the
// provider cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.Name, u.Email, u.Role))
	return nil
}
