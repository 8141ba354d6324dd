package store

import (
	"context"
	"log"
	"sync"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// CartState is the cart container's reducer state
type CartState struct {
	Cart      *models.Cart
	IsLoading bool
	Err       string
}

type cartActionType int

const (
	cartLoadStart cartActionType = iota
	cartLoadSuccess
	cartLoadFailure
	cartClearError
)

type cartAction struct {
	typ  cartActionType
	cart *models.Cart
	err  string
}

func reduceCart(state CartState, action cartAction) CartState {
	switch action.typ {
	case cartLoadStart:
		state.IsLoading = true
		state.Err = ""
	case cartLoadSuccess:
		state.IsLoading = false
		state.Cart = action.cart
		state.Err = ""
	case cartLoadFailure:
		state.IsLoading = false
		state.Err = action.err
	case cartClearError:
		state.Err = ""
	}
	return state
}

// Cart holds the authenticated user's cart. Every mutation replaces the
// whole held cart with the server's authoritative response; totals are
// never computed locally.
type Cart struct {
	client *backend.Client
	auth   *Auth

	mu    sync.RWMutex
	state CartState
}

// NewCart creates the cart container and subscribes it to authentication
// transitions: login triggers a refresh, logout resets to a nil cart
// without a network call.
func NewCart(client *backend.Client, auth *Auth) *Cart {
	c := &Cart{client: client, auth: auth}
	auth.OnAuthChange(func(authenticated bool) {
		if authenticated {
			if err := c.Refresh(context.Background()); err != nil {
				log.Printf("Failed to load cart after login: %v", err)
			}
		} else {
			c.dispatch(cartAction{typ: cartLoadSuccess, cart: nil})
		}
	})
	return c
}

func (c *Cart) dispatch(action cartAction) {
	c.mu.Lock()
	c.state = reduceCart(c.state, action)
	c.mu.Unlock()
}

// State returns a copy of the current cart state
func (c *Cart) State() CartState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Current returns the held cart, nil when unauthenticated or unloaded
func (c *Cart) Current() *models.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Cart
}

// Refresh refetches the cart. When unauthenticated it resets the held
// cart to nil without contacting the backend.
func (c *Cart) Refresh(ctx context.Context) error {
	if !c.auth.IsAuthenticated() {
		c.dispatch(cartAction{typ: cartLoadSuccess, cart: nil})
		return nil
	}

	c.dispatch(cartAction{typ: cartLoadStart})
	cart, err := c.client.Cart(ctx)
	if err != nil {
		c.dispatch(cartAction{typ: cartLoadFailure, err: err.Error()})
		return err
	}
	c.dispatch(cartAction{typ: cartLoadSuccess, cart: cart})
	return nil
}

// AddItem puts quantity units of a product into the cart
func (c *Cart) AddItem(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	if !c.auth.IsAuthenticated() {
		return nil, &ValidationError{Message: "Please login to add items to cart"}
	}

	cart, err := c.client.AddCartItem(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	c.dispatch(cartAction{typ: cartLoadSuccess, cart: cart})
	return cart, nil
}

// SetQuantity sets the quantity of a cart line
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	if !c.auth.IsAuthenticated() {
		return nil, &ValidationError{Message: "Please login to update cart"}
	}

	cart, err := c.client.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	c.dispatch(cartAction{typ: cartLoadSuccess, cart: cart})
	return cart, nil
}

// RemoveItem drops a product from the cart
func (c *Cart) RemoveItem(ctx context.Context, productID string) (*models.Cart, error) {
	if !c.auth.IsAuthenticated() {
		return nil, &ValidationError{Message: "Please login to update cart"}
	}

	cart, err := c.client.RemoveCartItem(ctx, productID)
	if err != nil {
		return nil, err
	}
	c.dispatch(cartAction{typ: cartLoadSuccess, cart: cart})
	return cart, nil
}

// ClearError discards the retained error message
func (c *Cart) ClearError() {
	c.dispatch(cartAction{typ: cartClearError})
}
