package service

import (
	"strings"
	"unicode/utf8"

	"github.com/kojiauth/kojiauth-go/internal/apperr"
	"github.com/kojiauth/kojiauth-go/internal/model"
)

const (
	minPasswordLength = 6
	minNameLength     = 6
)

// validateSignUp applies the signup policy rules in order; the first
// failing rule wins and no further rules run. Lengths count characters,
// not bytes.
func validateSignUp(req model.SignUpRequest) error {
	if !strings.Contains(req.Email, "@") {
		return apperr.EmailFormat(req.Email)
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return apperr.WeakPassword()
	}
	if utf8.RuneCountInString(req.Name) < minNameLength {
		return apperr.WeakName()
	}
	return nil
}
