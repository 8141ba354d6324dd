package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
	"zenvy-storefront/internal/session"
)

// AuthState is the auth container's reducer state
type AuthState struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

type authActionType int

const (
	authLoginStart authActionType = iota
	authLoginSuccess
	authLoginFailure
	authLogout
	authLoadUserStart
	authLoadUserSuccess
	authLoadUserFailure
	authClearError
)

type authAction struct {
	typ   authActionType
	user  *models.User
	token string
	err   string
}

// reduceAuth is the pure transition function for auth state
func reduceAuth(state AuthState, action authAction) AuthState {
	switch action.typ {
	case authLoginStart:
		state.IsLoading = true
		state.Err = ""
	case authLoginSuccess:
		state.User = action.user
		state.Token = action.token
		state.IsAuthenticated = true
		state.IsLoading = false
		state.Err = ""
	case authLoginFailure:
		state.User = nil
		state.Token = ""
		state.IsAuthenticated = false
		state.IsLoading = false
		state.Err = action.err
	case authLogout, authLoadUserFailure:
		state.User = nil
		state.Token = ""
		state.IsAuthenticated = false
		state.IsLoading = false
		state.Err = ""
	case authLoadUserStart:
		state.IsLoading = true
	case authLoadUserSuccess:
		state.User = action.user
		if action.token != "" {
			state.Token = action.token
		}
		state.IsAuthenticated = true
		state.IsLoading = false
	case authClearError:
		state.Err = ""
	}
	return state
}

// Auth holds the current user and session token for one browser session.
// Dependent containers subscribe to authentication transitions; they are
// notified exactly once per flag change.
type Auth struct {
	client *backend.Client
	sess   *session.Session

	mu        sync.RWMutex
	state     AuthState
	listeners []func(authenticated bool)
}

// NewAuth creates the auth container for a session
func NewAuth(client *backend.Client, sess *session.Session) *Auth {
	return &Auth{client: client, sess: sess}
}

// OnAuthChange registers a listener invoked whenever the authenticated
// flag flips. Registration must happen before Bootstrap.
func (a *Auth) OnAuthChange(fn func(authenticated bool)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

func (a *Auth) dispatch(action authAction) {
	a.mu.Lock()
	before := a.state.IsAuthenticated
	a.state = reduceAuth(a.state, action)
	after := a.state.IsAuthenticated
	listeners := a.listeners
	a.mu.Unlock()

	if before != after {
		for _, fn := range listeners {
			fn(after)
		}
	}
}

// State returns a copy of the current auth state
func (a *Auth) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// IsAuthenticated reports whether a user is logged in
func (a *Auth) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.IsAuthenticated
}

// CurrentUser returns the held user, nil when logged out
func (a *Auth) CurrentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.User
}

// Bootstrap hydrates the container from the persisted session. A stored
// snapshot is applied immediately so the UI never flashes unauthenticated,
// then the canonical profile is refetched and reconciled. A fetch failure
// that looks like a session problem forces a logout.
func (a *Auth) Bootstrap(ctx context.Context) {
	token := a.sess.Token()
	if token == "" {
		a.dispatch(authAction{typ: authLoadUserFailure})
		return
	}

	if stored := a.sess.User(); stored != nil {
		a.dispatch(authAction{typ: authLoadUserSuccess, user: stored, token: token})
	}

	fresh, err := a.client.Profile(ctx)
	if err != nil {
		log.Printf("Failed to refresh user profile: %v", err)
		if backend.IsAuthFailure(err) {
			a.Logout()
		}
		return
	}

	if err := a.sess.SetUser(fresh); err != nil {
		log.Printf("Failed to persist user snapshot: %v", err)
	}
	a.dispatch(authAction{typ: authLoadUserSuccess, user: fresh, token: token})
}

// Login authenticates with the commerce API. An admin login with a blank
// passkey is rejected before any network call. The failure message is
// retained until ClearError or the next attempt.
func (a *Auth) Login(ctx context.Context, req backend.LoginRequest) (*models.User, error) {
	if req.UserType == string(models.RoleAdmin) && strings.TrimSpace(req.AdminPasskey) == "" {
		err := &ValidationError{Message: "Admin passkey is required"}
		a.dispatch(authAction{typ: authLoginFailure, err: err.Message})
		return nil, err
	}

	a.dispatch(authAction{typ: authLoginStart})

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		a.dispatch(authAction{typ: authLoginFailure, err: err.Error()})
		return nil, err
	}

	if err := a.sess.SetCredentials(resp.Token, resp.User); err != nil {
		log.Printf("Failed to persist session credentials: %v", err)
	}
	a.dispatch(authAction{typ: authLoginSuccess, user: resp.User, token: resp.Token})
	return resp.User, nil
}

// Register creates a new account. The password confirmation check happens
// before any network call.
func (a *Auth) Register(ctx context.Context, req backend.SignupRequest, confirmPassword string) (*models.User, error) {
	if req.Password != confirmPassword {
		err := &ValidationError{Message: "Passwords do not match"}
		a.dispatch(authAction{typ: authLoginFailure, err: err.Message})
		return nil, err
	}

	a.dispatch(authAction{typ: authLoginStart})

	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		a.dispatch(authAction{typ: authLoginFailure, err: err.Error()})
		return nil, err
	}

	if err := a.sess.SetCredentials(resp.Token, resp.User); err != nil {
		log.Printf("Failed to persist session credentials: %v", err)
	}
	a.dispatch(authAction{typ: authLoginSuccess, user: resp.User, token: resp.Token})
	return resp.User, nil
}

// Logout clears the persisted token and snapshot and resets state. No
// network call is made.
func (a *Auth) Logout() {
	if err := a.sess.Clear(); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
	a.dispatch(authAction{typ: authLogout})
}

// UpdateUser pushes a profile update and reconciles the held user with the
// server's response, persisting the fresh snapshot.
func (a *Auth) UpdateUser(ctx context.Context, req backend.UpdateProfileRequest) (*models.User, error) {
	if !a.IsAuthenticated() {
		return nil, &ValidationError{Message: "Please login to update your profile"}
	}

	user, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	a.ApplyUser(user)
	return user, nil
}

// Establish adopts credentials issued outside the login flow, such as
// after OTP verification completes a pending signup.
func (a *Auth) Establish(token string, user *models.User) {
	if token == "" || user == nil {
		return
	}
	if err := a.sess.SetCredentials(token, user); err != nil {
		log.Printf("Failed to persist session credentials: %v", err)
	}
	a.dispatch(authAction{typ: authLoginSuccess, user: user, token: token})
}

// ApplyUser replaces the held user snapshot, persisting it. Used after any
// operation that returns a fresh user (profile update, photo upload).
func (a *Auth) ApplyUser(user *models.User) {
	if err := a.sess.SetUser(user); err != nil {
		log.Printf("Failed to persist user snapshot: %v", err)
	}
	a.dispatch(authAction{typ: authLoadUserSuccess, user: user})
}

// ClearError discards the retained error message
func (a *Auth) ClearError() {
	a.dispatch(authAction{typ: authClearError})
}

// ValidationError is a client-side rejection raised before any network
// round trip.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
