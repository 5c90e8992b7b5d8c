package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

type favoritesRequest struct {
	Favorites []domain.Favorite `json:"favorites" validate:"max=200,dive"`
}

func (s *Server) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "Missing clientId")
		return
	}

	favorites, err := s.Store.GetFavorites(clientID)
	if err != nil {
		s.Log.Error("get favorites", "client_id", clientID, "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Favorite{"favorites": favorites})
}

// handlePutFavorites replaces the client's favorites wholesale; an empty
// list clears them.
func (s *Server) handlePutFavorites(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "Missing clientId")
		return
	}

	var req favoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid favorites payload")
		return
	}
	if req.Favorites == nil {
		writeError(w, http.StatusBadRequest, "Invalid favorites payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid favorites payload")
		return
	}

	if err := s.Store.SetFavorites(clientID, req.Favorites); err != nil {
		s.Log.Error("set favorites", "client_id", clientID, "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Favorite{"favorites": req.Favorites})
}

type preferencesRequest struct {
	UserType  string `json:"userType" validate:"required,oneof=planning already_living just_curious"`
	SpaceType string `json:"spaceType" validate:"required,oneof=tiny_house cabin van studio"`
	Occupants string `json:"occupants" validate:"required,oneof=solo couple family"`
	HasPets   bool   `json:"hasPets"`
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prefs, found, err := s.Store.GetPreferences(claims.Subject)
	if err != nil {
		s.Log.Error("get preferences", "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{"preferences": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Preferences{"preferences": prefs})
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid preferences payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid preferences payload")
		return
	}

	prefs, err := s.Store.UpsertPreferences(domain.Preferences{
		UserID:    claims.Subject,
		UserType:  req.UserType,
		SpaceType: req.SpaceType,
		Occupants: req.Occupants,
		HasPets:   req.HasPets,
	})
	if err != nil {
		s.Log.Error("upsert preferences", "err", err)
		writeError(w, http.StatusInternalServerError, "Unexpected server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Preferences{"preferences": prefs})
}
