package service

import (
	"errors"
	"fmt"
)

// ErrUserAlreadyExists is returned on registration when the email is taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrInvalidCredentials is returned on any login failure. It deliberately does
// not say whether the email or the password was wrong, to avoid account
// enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError reports malformed input caught before reaching the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
