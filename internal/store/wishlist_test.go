package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/models"
)

func serveWishlist(items []models.WishlistItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": items})
	}
}

func TestWishlistRequiresLogin(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, _, client := newTestAuth(f)
	wishlist := NewWishlist(client, auth)

	var vErr *ValidationError
	err := wishlist.Add(context.Background(), "p1")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please login to use wishlist", vErr.Message)

	err = wishlist.Remove(context.Background(), "p1")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please login to use wishlist", vErr.Message)

	assert.Equal(t, 0, f.TotalHits())
}

func TestWishlistMembership(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/wishlist", serveWishlist([]models.WishlistItem{
		{ID: "p1", Name: "Desk Lamp", Price: 899},
		{ID: "p2", Name: "Notebook", Price: 199},
	}))
	auth, _, client := newTestAuth(f)
	wishlist := NewWishlist(client, auth)
	auth.Establish("tok", testUser())

	assert.True(t, wishlist.IsInWishlist("p1"))
	assert.True(t, wishlist.IsInWishlist("p2"))
	assert.False(t, wishlist.IsInWishlist("p3"))
	assert.Len(t, wishlist.Items(), 2)
}

func TestWishlistHoldsServerList(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/wishlist", serveWishlist(nil))
	f.Handle("/wishlist/p9", serveWishlist([]models.WishlistItem{{ID: "p9", Name: "Monitor Arm"}}))
	auth, _, client := newTestAuth(f)
	wishlist := NewWishlist(client, auth)
	auth.Establish("tok", testUser())
	require.False(t, wishlist.IsInWishlist("p9"))

	require.NoError(t, wishlist.Add(context.Background(), "p9"))
	assert.True(t, wishlist.IsInWishlist("p9"))
}

func TestLogoutClearsWishlist(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/wishlist", serveWishlist([]models.WishlistItem{{ID: "p1"}}))
	auth, _, client := newTestAuth(f)
	wishlist := NewWishlist(client, auth)
	auth.Establish("tok", testUser())
	require.True(t, wishlist.IsInWishlist("p1"))

	auth.Logout()
	assert.False(t, wishlist.IsInWishlist("p1"))
	assert.Empty(t, wishlist.Items())
}
