// Package validate provides local, synchronous checks for the sign-up and
// verification forms. An empty result map means the input is valid; otherwise
// the map carries one human-readable message per failing field.
//
// Field keys: name, email, password, confirmPassword, code.
package validate

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field key to its first validation failure message.
type Errors map[string]string

type signUpInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,haslower,hasupper,hasdigit,hasspecial"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type codeInput struct {
	Code string `json:"code" validate:"required"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so keys match the form fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "haslower", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsLower)
	})
	mustRegister(v, "hasupper", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsUpper)
	})
	mustRegister(v, "hasdigit", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
	})
	mustRegister(v, "hasspecial", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// CheckSignUp validates the sign-up draft. Only the first failing rule per
// field is reported, matching the order the rules are declared in.
func CheckSignUp(name, email, password, confirmPassword string) Errors {
	in := signUpInput{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}
	return collect(v.Struct(in))
}

// CheckCode validates the verification code input.
func CheckCode(code string) Errors {
	return collect(v.Struct(codeInput{Code: code}))
}

func collect(err error) Errors {
	if err == nil {
		return Errors{}
	}

	out := Errors{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError can only happen on a non-struct input,
		// which the exported helpers never pass.
		panic(err)
	}
	for _, fe := range ve {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = fieldError(fe)
	}
	return out
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label(fe.Field()) + " is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Password must be at least %s characters", fe.Param())
	case "haslower":
		return "Password must contain a lowercase letter"
	case "hasupper":
		return "Password must contain an uppercase letter"
	case "hasdigit":
		return "Password must contain a number"
	case "hasspecial":
		return "Password must contain a special character"
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s failed validation (%s)", label(fe.Field()), fe.Tag())
	}
}

func label(field string) string {
	switch field {
	case "name":
		return "Name"
	case "email":
		return "Email"
	case "password":
		return "Password"
	case "confirmPassword":
		return "Confirm password"
	case "code":
		return "Verification code"
	default:
		return field
	}
}
