package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.EnsureSchema())
	return store
}

func TestCreateUser_NormalizesEmailAndRejectsDuplicates(t *testing.T) {
	store := newTestStore(t)

	u, err := store.CreateUser("  Casey@Example.COM ", "hash1", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "casey@example.com", u.Email)
	assert.NotEmpty(t, u.ID)

	_, err = store.CreateUser("casey@example.com", "hash2", domain.RoleUser)
	assert.ErrorIs(t, err, ErrUserExists)

	// normalization applies before the uniqueness check
	_, err = store.CreateUser("CASEY@example.com", "hash3", domain.RoleUser)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestGetUser(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser("robin@example.com", "hash", domain.RoleAdmin)
	require.NoError(t, err)

	byEmail, found, err := store.GetUserByEmail("Robin@Example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, domain.RoleAdmin, byEmail.Role)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, found, err := store.GetUserByID(created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.Email, byID.Email)

	_, found, err = store.GetUserByID("no-such-id")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAnyAdminExists(t *testing.T) {
	store := newTestStore(t)

	hasAdmin, err := store.AnyAdminExists()
	require.NoError(t, err)
	assert.False(t, hasAdmin)

	_, err = store.CreateUser("user@example.com", "hash", domain.RoleUser)
	require.NoError(t, err)

	hasAdmin, err = store.AnyAdminExists()
	require.NoError(t, err)
	assert.False(t, hasAdmin)

	_, err = store.CreateUser("admin@example.com", "hash", domain.RoleAdmin)
	require.NoError(t, err)

	hasAdmin, err = store.AnyAdminExists()
	require.NoError(t, err)
	assert.True(t, hasAdmin)
}

func TestListUsers(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateUser("a@example.com", "hash", domain.RoleUser)
	require.NoError(t, err)
	_, err = store.CreateUser("b@example.com", "hash", domain.RoleAdmin)
	require.NoError(t, err)

	users, err := store.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestFavorites_Roundtrip(t *testing.T) {
	store := newTestStore(t)

	// unknown client reads as an empty list, not an error
	got, err := store.GetFavorites("client-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Favorite{}, got)

	favs := []domain.Favorite{
		{Type: "layout", ID: "loft-bed-stairs-desk"},
		{Type: "furniture", ID: "wall-mounted-desk"},
	}
	require.NoError(t, store.SetFavorites("client-1", favs))

	got, err = store.GetFavorites("client-1")
	require.NoError(t, err)
	assert.Equal(t, favs, got)

	// wholesale replace, then clear
	require.NoError(t, store.SetFavorites("client-1", favs[:1]))
	got, err = store.GetFavorites("client-1")
	require.NoError(t, err)
	assert.Equal(t, favs[:1], got)

	require.NoError(t, store.SetFavorites("client-1", nil))
	got, err = store.GetFavorites("client-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Favorite{}, got)
}

func TestCountFavoriteClients(t *testing.T) {
	store := newTestStore(t)

	n, err := store.CountFavoriteClients()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.SetFavorites("client-1", []domain.Favorite{{Type: "layout", ID: "x"}}))
	require.NoError(t, store.SetFavorites("client-2", nil))
	require.NoError(t, store.SetFavorites("client-1", nil)) // same client, still one row

	n, err = store.CountFavoriteClients()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPreferences_Upsert(t *testing.T) {
	store := newTestStore(t)

	u, err := store.CreateUser("prefs@example.com", "hash", domain.RoleUser)
	require.NoError(t, err)

	_, found, err := store.GetPreferences(u.ID)
	require.NoError(t, err)
	assert.False(t, found)

	first, err := store.UpsertPreferences(domain.Preferences{
		UserID:    u.ID,
		UserType:  "planning",
		SpaceType: domain.TypeTinyHouse,
		Occupants: domain.OccupantsCouple,
		HasPets:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "planning", first.UserType)
	assert.True(t, first.HasPets)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := store.UpsertPreferences(domain.Preferences{
		UserID:    u.ID,
		UserType:  "already_living",
		SpaceType: domain.TypeVan,
		Occupants: domain.OccupantsSolo,
	})
	require.NoError(t, err)
	assert.Equal(t, "already_living", second.UserType)
	assert.Equal(t, domain.TypeVan, second.SpaceType)
	assert.False(t, second.HasPets)

	stored, found, err := store.GetPreferences(u.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, second, stored)
}
