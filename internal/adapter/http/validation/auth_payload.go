package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// BuildRegisterCredentials trims the username and applies the registration
// rules. Length checks run against the trimmed username so surrounding
// whitespace cannot pad a name past the minimum.
func BuildRegisterCredentials(req dto.RegisterRequest, raw map[string]json.RawMessage) (string, string, error) {
	if !hasJSONField(raw, "username") || !hasJSONField(raw, "password") {
		return "", "", ErrMissingCredentials
	}

	username := strings.TrimSpace(req.Username)
	if len(username) < minUsernameLength {
		return "", "", ErrUsernameTooShort
	}
	if len(req.Password) < minPasswordLength {
		return "", "", ErrPasswordTooShort
	}

	return username, req.Password, nil
}

// RequireLoginCredentials only checks field presence; login must not hint at
// why a credential pair is wrong beyond the single invalid outcome.
func RequireLoginCredentials(req dto.LoginRequest, raw map[string]json.RawMessage) (string, string, error) {
	if !hasJSONField(raw, "username") || !hasJSONField(raw, "password") {
		return "", "", ErrMissingCredentials
	}

	return req.Username, req.Password, nil
}
