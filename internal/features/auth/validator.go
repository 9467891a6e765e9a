package auth

import (
	"errors"
	"strings"

	"github.com/debanjo31/uLearnApi/internal/pkg/validator"
)

// NormalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegister checks the registration payload beyond binding tags
func ValidateRegister(req *RegisterRequest) error {
	if !validator.IsValidEmail(NormalizeEmail(req.Email)) {
		return errors.New("a valid email address is required")
	}

	if !validator.IsStrongPassword(req.Password) {
		return errors.New("password must be at least 8 characters and contain upper case, lower case and a number")
	}

	if !validator.IsValidName(strings.TrimSpace(req.Name)) {
		return errors.New("name must be at least 2 characters and contain only letters")
	}

	return nil
}

// ValidateChangePassword checks the new password meets the same bar as
// registration
func ValidateChangePassword(req *ChangePasswordRequest) error {
	if !validator.IsStrongPassword(req.NewPassword) {
		return errors.New("new password must be at least 8 characters and contain upper case, lower case and a number")
	}

	if req.NewPassword == req.CurrentPassword {
		return errors.New("new password must differ from the current password")
	}

	return nil
}

// ValidateProfilePicture checks the optional profile picture URL
func ValidateProfilePicture(url string) error {
	if url == "" {
		return nil
	}
	if !validator.IsValidURL(url) {
		return errors.New("profile picture must be a valid URL")
	}
	return nil
}
