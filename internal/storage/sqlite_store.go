package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

// ErrUserExists is returned when registering an already-taken email.
var ErrUserExists = errors.New("user already exists")

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTables = `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  role TEXT NOT NULL DEFAULT 'user',
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS favorites (
  client_id TEXT PRIMARY KEY,
  favorites_json TEXT NOT NULL DEFAULT '[]',
  updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
  user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  user_type TEXT NOT NULL,
  space_type TEXT NOT NULL,
  occupants TEXT NOT NULL,
  has_pets INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(createTables); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);`); err != nil {
		return err
	}
	return nil
}

// ---- Users ----

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *SQLiteStore) CreateUser(email, passwordHash, role string) (domain.User, error) {
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Role, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *SQLiteStore) GetUserByEmail(email string) (domain.User, bool, error) {
	return s.getUser(`SELECT id, email, role, password_hash, created_at FROM users WHERE email = ?`, normalizeEmail(email))
}

func (s *SQLiteStore) GetUserByID(id string) (domain.User, bool, error) {
	return s.getUser(`SELECT id, email, role, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (s *SQLiteStore) getUser(query, arg string) (domain.User, bool, error) {
	var u domain.User
	err := s.db.QueryRow(query, arg).Scan(&u.ID, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	return u, true, nil
}

func (s *SQLiteStore) ListUsers() ([]domain.User, error) {
	rows, err := s.db.Query(`SELECT id, email, role, password_hash, created_at FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AnyAdminExists() (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = ?`, domain.RoleAdmin).Scan(&n)
	return n > 0, err
}

// ---- Favorites ----

// GetFavorites returns the saved favorites for a client, or an empty list
// for unknown clients.
func (s *SQLiteStore) GetFavorites(clientID string) ([]domain.Favorite, error) {
	var raw string
	err := s.db.QueryRow(`SELECT favorites_json FROM favorites WHERE client_id = ?`, clientID).Scan(&raw)
	if err == sql.ErrNoRows {
		return []domain.Favorite{}, nil
	}
	if err != nil {
		return nil, err
	}

	favorites := []domain.Favorite{}
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// SetFavorites replaces the client's favorites wholesale.
func (s *SQLiteStore) SetFavorites(clientID string, favorites []domain.Favorite) error {
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	raw, err := json.Marshal(favorites)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO favorites (client_id, favorites_json, updated_at) VALUES (?, ?, ?)
ON CONFLICT(client_id) DO UPDATE SET favorites_json = excluded.favorites_json, updated_at = excluded.updated_at
`, clientID, string(raw), time.Now().UTC())
	return err
}

func (s *SQLiteStore) CountFavoriteClients() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM favorites`).Scan(&n)
	return n, err
}

// ---- Preferences ----

func (s *SQLiteStore) GetPreferences(userID string) (domain.Preferences, bool, error) {
	var p domain.Preferences
	var hasPets int
	err := s.db.QueryRow(`
SELECT user_id, user_type, space_type, occupants, has_pets, created_at, updated_at
FROM preferences WHERE user_id = ?
`, userID).Scan(&p.UserID, &p.UserType, &p.SpaceType, &p.Occupants, &hasPets, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.Preferences{}, false, nil
	}
	if err != nil {
		return domain.Preferences{}, false, err
	}
	p.HasPets = hasPets != 0
	return p, true, nil
}

func (s *SQLiteStore) UpsertPreferences(p domain.Preferences) (domain.Preferences, error) {
	now := time.Now().UTC()
	hasPets := 0
	if p.HasPets {
		hasPets = 1
	}
	_, err := s.db.Exec(`
INSERT INTO preferences (user_id, user_type, space_type, occupants, has_pets, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  user_type = excluded.user_type,
  space_type = excluded.space_type,
  occupants = excluded.occupants,
  has_pets = excluded.has_pets,
  updated_at = excluded.updated_at
`, p.UserID, p.UserType, p.SpaceType, p.Occupants, hasPets, now, now)
	if err != nil {
		return domain.Preferences{}, err
	}

	stored, ok, err := s.GetPreferences(p.UserID)
	if err != nil {
		return domain.Preferences{}, err
	}
	if !ok {
		return domain.Preferences{}, sql.ErrNoRows
	}
	return stored, nil
}
