package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

func TestAdminLoginRequiresPasskeyBeforeNetwork(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, _, _ := newTestAuth(f)

	_, err := auth.Login(context.Background(), backend.LoginRequest{
		Email:    "admin@example.com",
		Password: "pw",
		UserType: "admin",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Admin passkey is required", vErr.Message)
	assert.Equal(t, 0, f.TotalHits(), "rejection must happen before any network call")
	assert.Equal(t, "Admin passkey is required", auth.State().Err)
}

func TestRegisterPasswordMismatchBeforeNetwork(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, _, _ := newTestAuth(f)

	_, err := auth.Register(context.Background(), backend.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	}, "secret2")
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Passwords do not match", vErr.Message)
	assert.Equal(t, 0, f.TotalHits())
}

func TestLoginPersistsCredentials(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-login",
			"user":  testUser(),
		})
	})
	auth, sess, _ := newTestAuth(f)

	user, err := auth.Login(context.Background(), backend.LoginRequest{
		Email:    "asha@example.com",
		Password: "pw",
		UserType: "normal",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "tok-login", sess.Token())
	require.NotNil(t, sess.User())
	assert.Equal(t, "Asha", sess.User().Name)
}

func TestLoginFailureRetainsMessage(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})
	auth, _, _ := newTestAuth(f)

	_, err := auth.Login(context.Background(), backend.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
		UserType: "normal",
	})
	require.Error(t, err)
	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, "Invalid credentials", auth.State().Err)

	auth.ClearError()
	assert.Empty(t, auth.State().Err)
}

func TestBootstrapWithoutTokenStaysLoggedOut(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, _, _ := newTestAuth(f)

	auth.Bootstrap(context.Background())
	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, 0, f.TotalHits(), "an empty token must not trigger a profile fetch")
}

func TestBootstrapAppliesSnapshotThenRefetches(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	fresh := testUser()
	fresh.Name = "Asha Updated"
	f.Handle("/users/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"user": fresh})
	})
	auth, sess, _ := newTestAuth(f)
	require.NoError(t, sess.SetCredentials("tok-stored", testUser()))

	auth.Bootstrap(context.Background())
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "Asha Updated", auth.CurrentUser().Name)
	assert.Equal(t, 1, f.Hits("GET /users/me"))
}

func TestBootstrapLogsOutOnAuthFailure(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
	})
	auth, sess, _ := newTestAuth(f)
	require.NoError(t, sess.SetCredentials("tok-stale", testUser()))

	auth.Bootstrap(context.Background())
	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, sess.Token(), "a stale token must be cleared")
}

func TestLogoutClearsWithoutNetwork(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, sess, _ := newTestAuth(f)
	auth.Establish("tok-x", testUser())
	require.True(t, auth.IsAuthenticated())

	auth.Logout()
	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, sess.Token())
	assert.Nil(t, auth.CurrentUser())
	assert.Equal(t, 0, f.TotalHits())
}

func TestOnAuthChangeFiresOnlyOnTransitions(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, _, _ := newTestAuth(f)

	var flips []bool
	auth.OnAuthChange(func(authenticated bool) {
		flips = append(flips, authenticated)
	})

	auth.Establish("tok-1", testUser())
	auth.ApplyUser(&models.User{ID: "u1", Name: "Renamed"}) // same auth state
	auth.Logout()
	auth.Logout() // already logged out

	assert.Equal(t, []bool{true, false}, flips)
}
