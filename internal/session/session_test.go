package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/database"
	"zenvy-storefront/internal/models"
)

func TestSessionCredentialRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	sess, err := Open(store, "s1")
	require.NoError(t, err)
	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.User())

	user := &models.User{ID: "u1", Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, sess.SetCredentials("tok-abc", user))

	// A reopened session sees the persisted record
	reopened, err := Open(store, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", reopened.Token())
	require.NotNil(t, reopened.User())
	assert.Equal(t, "Asha", reopened.User().Name)

	require.NoError(t, sess.Clear())
	cleared, err := Open(store, "s1")
	require.NoError(t, err)
	assert.Empty(t, cleared.Token())
	assert.Nil(t, cleared.User())
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	db, err := database.Initialize(dbPath)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	store := NewSQLiteStore(db)
	user := &models.User{ID: "u2", Name: "Ben", Role: "admin"}
	require.NoError(t, store.Put("s2", Record{Token: "tok-xyz", User: user, UpdatedAt: time.Now()}))

	rec, found, err := store.Get("s2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tok-xyz", rec.Token)
	require.NotNil(t, rec.User)
	assert.Equal(t, "admin", rec.User.Role)

	// Upsert replaces, not duplicates
	require.NoError(t, store.Put("s2", Record{Token: "tok-new", UpdatedAt: time.Now()}))
	rec, found, err = store.Get("s2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tok-new", rec.Token)
	assert.Nil(t, rec.User)

	require.NoError(t, store.Delete("s2"))
	_, found, err = store.Get("s2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManagerIssueAndResolve(t *testing.T) {
	manager := NewManager(NewMemoryStore(), "test-secret", time.Hour)

	sid, cookie, err := manager.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sid)
	assert.NotEmpty(t, cookie)

	resolved, err := manager.Resolve(cookie)
	require.NoError(t, err)
	assert.Equal(t, sid, resolved)
}

func TestManagerRejectsTamperedCookie(t *testing.T) {
	manager := NewManager(NewMemoryStore(), "test-secret", time.Hour)

	_, cookie, err := manager.Issue()
	require.NoError(t, err)

	tampered := cookie[:len(cookie)-2] + "xx"
	_, err = manager.Resolve(tampered)
	assert.Error(t, err)

	_, err = manager.Resolve("not-a-jwt")
	assert.Error(t, err)
}

func TestManagerRejectsForeignSecret(t *testing.T) {
	issuer := NewManager(NewMemoryStore(), "secret-one", time.Hour)
	verifier := NewManager(NewMemoryStore(), "secret-two", time.Hour)

	_, cookie, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Resolve(cookie)
	assert.Error(t, err)
}
