package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateEmail is returned by AdminRepository.Create when the email
// is already registered.
var ErrDuplicateEmail = errors.New("email already in use")

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required field: %s", field)
	}
	return nil
}
