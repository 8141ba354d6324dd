package store

import (
	"context"
	"log"
	"sync"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// WishlistState is the wishlist container's reducer state
type WishlistState struct {
	Items     []models.WishlistItem
	IsLoading bool
	Err       string
}

type wishlistAction struct {
	typ   cartActionType
	items []models.WishlistItem
	err   string
}

func reduceWishlist(state WishlistState, action wishlistAction) WishlistState {
	switch action.typ {
	case cartLoadStart:
		state.IsLoading = true
		state.Err = ""
	case cartLoadSuccess:
		state.IsLoading = false
		state.Items = action.items
		state.Err = ""
	case cartLoadFailure:
		state.IsLoading = false
		state.Err = action.err
	case cartClearError:
		state.Err = ""
	}
	return state
}

// Wishlist holds the user's saved products with the same contract as the
// cart: auth-gated mutators, server-authoritative replace on mutation,
// auto-refresh on authentication transitions.
type Wishlist struct {
	client *backend.Client
	auth   *Auth

	mu    sync.RWMutex
	state WishlistState
}

// NewWishlist creates the wishlist container and subscribes it to
// authentication transitions.
func NewWishlist(client *backend.Client, auth *Auth) *Wishlist {
	w := &Wishlist{client: client, auth: auth}
	auth.OnAuthChange(func(authenticated bool) {
		if authenticated {
			if err := w.Refresh(context.Background()); err != nil {
				log.Printf("Failed to load wishlist after login: %v", err)
			}
		} else {
			w.dispatch(wishlistAction{typ: cartLoadSuccess, items: nil})
		}
	})
	return w
}

func (w *Wishlist) dispatch(action wishlistAction) {
	w.mu.Lock()
	w.state = reduceWishlist(w.state, action)
	w.mu.Unlock()
}

// State returns a copy of the current wishlist state
func (w *Wishlist) State() WishlistState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Items returns the held list
func (w *Wishlist) Items() []models.WishlistItem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.Items
}

// Refresh refetches the wishlist, or resets it when unauthenticated
func (w *Wishlist) Refresh(ctx context.Context) error {
	if !w.auth.IsAuthenticated() {
		w.dispatch(wishlistAction{typ: cartLoadSuccess, items: nil})
		return nil
	}

	w.dispatch(wishlistAction{typ: cartLoadStart})
	items, err := w.client.Wishlist(ctx)
	if err != nil {
		w.dispatch(wishlistAction{typ: cartLoadFailure, err: err.Error()})
		return err
	}
	w.dispatch(wishlistAction{typ: cartLoadSuccess, items: items})
	return nil
}

// Add saves a product to the wishlist
func (w *Wishlist) Add(ctx context.Context, productID string) error {
	if !w.auth.IsAuthenticated() {
		return &ValidationError{Message: "Please login to use wishlist"}
	}

	items, err := w.client.AddToWishlist(ctx, productID)
	if err != nil {
		return err
	}
	w.dispatch(wishlistAction{typ: cartLoadSuccess, items: items})
	return nil
}

// Remove drops a product from the wishlist
func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	if !w.auth.IsAuthenticated() {
		return &ValidationError{Message: "Please login to use wishlist"}
	}

	items, err := w.client.RemoveFromWishlist(ctx, productID)
	if err != nil {
		return err
	}
	w.dispatch(wishlistAction{typ: cartLoadSuccess, items: items})
	return nil
}

// IsInWishlist reports whether a product is on the held list. A linear
// scan is fine at expected list sizes.
func (w *Wishlist) IsInWishlist(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, item := range w.state.Items {
		if item.ID == productID {
			return true
		}
	}
	return false
}
