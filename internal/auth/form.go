package auth

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
)

type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

func (m Mode) String() string {
	if m == ModeSignup {
		return "Sign Up"
	}
	return "Login"
}

type Field string

const (
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

const MinPasswordLength = 6

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form is the credential form state: a login/signup toggle, the three
// fields, one error slot and a busy flag.
type Form struct {
	Mode     Mode
	Username string
	Email    string
	Password string
	Err      string
}

func NewForm() *Form {
	return &Form{Mode: ModeLogin}
}

// Toggle switches mode and resets every field and the error.
func (f *Form) Toggle() {
	if f.Mode == ModeLogin {
		f.Mode = ModeSignup
	} else {
		f.Mode = ModeLogin
	}
	f.Username, f.Email, f.Password, f.Err = "", "", "", ""
}

// Set edits one field; any edit clears the error.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldUsername:
		f.Username = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	}
	f.Err = ""
}

// Payload returns the request for the current mode: login sends exactly
// email and password, signup adds username.
func (f *Form) Payload() (any, error) {
	var payload any
	if f.Mode == ModeLogin {
		payload = LoginRequest{Email: f.Email, Password: f.Password}
	} else {
		payload = SignupRequest{Username: f.Username, Email: f.Email, Password: f.Password}
	}
	if err := validate.Struct(payload); err != nil {
		return nil, apperr.Validation(validationMessage(err))
	}
	return payload, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the form fields."
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Username":
		return "Username is required."
	case "Email":
		if fe.Tag() == "email" {
			return "Please enter a valid email address."
		}
		return "Email is required."
	case "Password":
		if fe.Tag() == "min" {
			return fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength)
		}
		return "Password is required."
	}
	return "Please check the form fields."
}
