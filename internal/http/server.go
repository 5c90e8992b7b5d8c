// Package httpapi exposes the planning core and account plumbing over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/amirSA5/tiny-home-guide/internal/auth"
	"github.com/amirSA5/tiny-home-guide/internal/domain"
	"github.com/amirSA5/tiny-home-guide/internal/recommend"
)

// Store is the persistence surface the server depends on. *storage.SQLiteStore
// satisfies it; tests may substitute an in-memory fake.
type Store interface {
	CreateUser(email, passwordHash, role string) (domain.User, error)
	GetUserByEmail(email string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)
	ListUsers() ([]domain.User, error)
	AnyAdminExists() (bool, error)

	GetFavorites(clientID string) ([]domain.Favorite, error)
	SetFavorites(clientID string, favorites []domain.Favorite) error
	CountFavoriteClients() (int, error)

	GetPreferences(userID string) (domain.Preferences, bool, error)
	UpsertPreferences(p domain.Preferences) (domain.Preferences, error)
}

type Server struct {
	Engine *recommend.Engine
	Store  Store
	Tokens *auth.TokenService
	Log    *slog.Logger

	// BcryptCost is used when hashing passwords at registration.
	BcryptCost int
	// AdminInviteCode gates creation of additional admin accounts.
	AdminInviteCode string

	validate *validator.Validate
	started  time.Time
}

func NewServer(engine *recommend.Engine, store Store, tokens *auth.TokenService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		Engine:     engine,
		Store:      store,
		Tokens:     tokens,
		Log:        log,
		BcryptCost: 10,
		validate:   validator.New(),
		started:    time.Now(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/api/recommendations", s.handleRecommendations)
	r.Get("/api/favorites/{clientID}", s.handleGetFavorites)
	r.Put("/api/favorites/{clientID}", s.handlePutFavorites)

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authRequired)
		r.Get("/auth/me", s.handleMe)
		r.Get("/api/preferences", s.handleGetPreferences)
		r.Put("/api/preferences", s.handlePutPreferences)
		r.With(s.adminRequired).Get("/admin/users", s.handleListUsers)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	clients, err := s.Store.CountFavoriteClients()
	if err != nil {
		s.Log.Error("health: count favorite clients", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":               true,
		"uptimeSeconds":    int(time.Since(s.started).Seconds()),
		"favoritesClients": clients,
	})
}

// handleRecommendations validates + normalizes the submitted profile, then
// runs the filter/score/assemble pipeline. Validation failures come back as
// 400 with field-level details; empty result sets are a normal 200.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var raw domain.SpaceProfile
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeProfileError(w, []recommend.FieldError{{Field: "body", Message: "malformed JSON"}})
		return
	}

	profile, err := recommend.Normalize(raw)
	if err != nil {
		var verr *recommend.ValidationError
		if errors.As(err, &verr) {
			writeProfileError(w, verr.Fields)
			return
		}
		writeProfileError(w, nil)
		return
	}

	writeJSON(w, http.StatusOK, s.Engine.Build(profile))
}

func writeProfileError(w http.ResponseWriter, details []recommend.FieldError) {
	payload := map[string]any{"error": "Invalid space profile"}
	if len(details) > 0 {
		payload["details"] = details
	}
	writeJSON(w, http.StatusBadRequest, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
