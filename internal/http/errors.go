package httpapi

import (
	"errors"
	"net/http"

	"github.com/amirSA5/tiny-home-guide/internal/storage"
)

// ErrInvalidCredentials indicates a failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAdminInviteRequired indicates an admin registration without a valid
// invite code while an admin already exists.
var ErrAdminInviteRequired = errors.New("admin invite code required")

// HTTPStatus maps service errors to response codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAdminInviteRequired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// userMessage picks the API-facing message for a service error.
func userMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrUserExists):
		return "User already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrAdminInviteRequired):
		return "Admin invite code required to create admin users"
	default:
		return "Unexpected server error"
	}
}
