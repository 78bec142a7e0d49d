package validation

import (
	"net/mail"
	"strings"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
)

// LoginInput is the login request payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates credentials format. The actual password check happens
// against the stored hash, never here.
func Login(in LoginInput) (LoginInput, error) {
	fields := map[string]string{}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}

	if in.Password == "" {
		fields["password"] = "is required"
	} else if len(in.Password) < 6 {
		fields["password"] = "must be at least 6 characters"
	}

	if len(fields) > 0 {
		return LoginInput{}, apperr.Validation(fields)
	}
	return LoginInput{Email: email, Password: in.Password}, nil
}
