package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/amirSA5/tiny-home-guide/internal/auth"
	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	Role            string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	AdminInviteCode string `json:"adminInviteCode,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  domain.PublicUser `json:"user"`
	Token string            `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid registration payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	// The first admin can self-register; after that a valid invite code is
	// required to mint more.
	if role == domain.RoleAdmin {
		hasAdmin, err := s.Store.AnyAdminExists()
		if err != nil {
			s.Log.Error("register: check admins", "err", err)
			writeError(w, http.StatusInternalServerError, "Could not register user")
			return
		}
		inviteOK := s.AdminInviteCode != "" && req.AdminInviteCode == s.AdminInviteCode
		if hasAdmin && !inviteOK {
			writeError(w, HTTPStatus(ErrAdminInviteRequired), userMessage(ErrAdminInviteRequired))
			return
		}
	}

	hash, err := auth.HashPassword(req.Password, s.BcryptCost)
	if err != nil {
		s.Log.Error("register: hash password", "err", err)
		writeError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	user, err := s.Store.CreateUser(req.Email, hash, role)
	if err != nil {
		writeError(w, HTTPStatus(err), userMessage(err))
		return
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		s.Log.Error("register: issue token", "err", err)
		writeError(w, http.StatusInternalServerError, "Could not register user")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user.Public(), Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login payload")
		return
	}

	user, ok, err := s.Store.GetUserByEmail(req.Email)
	if err != nil {
		s.Log.Error("login: lookup user", "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	if !ok || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, HTTPStatus(ErrInvalidCredentials), userMessage(ErrInvalidCredentials))
		return
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		s.Log.Error("login: issue token", "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user.Public(), Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.PublicUser{"user": user.Public()})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Store.ListUsers()
	if err != nil {
		s.Log.Error("admin: list users", "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	writeJSON(w, http.StatusOK, map[string][]domain.PublicUser{"users": out})
}

// authRequired validates the Bearer token and stashes its claims in the
// request context.
func (s *Server) authRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeError(w, http.StatusUnauthorized, "Missing or invalid token")
			return
		}

		claims, err := s.Tokens.Verify(parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) adminRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if claims.Role != domain.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFrom(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// currentUser resolves the authenticated user from the token claims.
// A token whose user no longer exists is treated as unauthorized.
func (s *Server) currentUser(r *http.Request) (domain.User, bool) {
	claims, ok := claimsFrom(r)
	if !ok {
		return domain.User{}, false
	}
	user, ok, err := s.Store.GetUserByID(claims.Subject)
	if err != nil {
		s.Log.Error("resolve current user", "err", err)
		return domain.User{}, false
	}
	return user, ok
}
