// Package session owns the client's belief about who is logged in and
// which screen the application is on. One controller holds the state; every
// reader gets immutable snapshots, and every transition happens here.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"foodiefind-client/backend"
	"foodiefind-client/models"
)

// Screen is the top-level view the application renders.
type Screen string

const (
	ScreenLanding   Screen = "landing"
	ScreenDashboard Screen = "dashboard"
)

// State is the session record. Invariant: Screen == ScreenDashboard only
// when User != nil.
type State struct {
	User    *models.User
	Screen  Screen
	Loading bool
}

// AuthError wraps any authentication failure that must be surfaced to the
// user as a blocking notification.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("%s failed: %v", e.Op, e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// AuthClient is the slice of the Data Client the controller needs.
type AuthClient interface {
	Me(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Signup(ctx context.Context, fields backend.SignupFields) error
}

type Controller struct {
	client AuthClient
	log    zerolog.Logger

	mu    sync.Mutex
	state State
	subs  []func(State)
}

func NewController(client AuthClient, log zerolog.Logger) *Controller {
	return &Controller{
		client: client,
		log:    log.With().Str("component", "session").Logger(),
		state:  State{Screen: ScreenLanding, Loading: true},
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every state transition. Subscribers
// must not call back into the controller.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Controller) setState(next State) {
	c.mu.Lock()
	c.state = next
	subs := c.subs
	c.mu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
}

// Bootstrap resolves the initial screen, once, at application start. A
// failed current-user lookup is the expected anonymous case and is never
// surfaced; the loading flag is released on every path.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.setState(State{Screen: ScreenLanding, Loading: true})
	user, err := c.client.Me(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrNoSession) {
			c.log.Debug().Msg("no stored session, starting anonymous")
		} else {
			// Treated the same as no session; the connectivity badge
			// already reports backend trouble.
			c.log.Warn().Err(err).Msg("session check failed, starting anonymous")
		}
		c.setState(State{User: nil, Screen: ScreenLanding, Loading: false})
		return
	}
	c.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("resumed session")
	c.setState(State{User: user, Screen: ScreenDashboard, Loading: false})
}

// Login submits credentials and, on success, adopts the fetched user and
// moves to the dashboard. On any failure state is untouched and the caller
// gets an *AuthError to surface.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := c.client.Login(ctx, email, password); err != nil {
		c.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return &AuthError{Op: "login", Err: err}
	}
	user, err := c.client.Me(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("user lookup after login failed")
		return &AuthError{Op: "login", Err: err}
	}
	c.setState(State{User: user, Screen: ScreenDashboard, Loading: false})
	return nil
}

// Signup registers the account and then logs in with the same credentials;
// registration itself never establishes a session.
func (c *Controller) Signup(ctx context.Context, name, email, password string) error {
	err := c.client.Signup(ctx, backend.SignupFields{Name: name, Email: email, Password: password})
	if err != nil {
		c.log.Warn().Err(err).Str("email", email).Msg("signup failed")
		return &AuthError{Op: "signup", Err: err}
	}
	return c.Login(ctx, email, password)
}

// Logout invalidates the session and unconditionally resets to the
// anonymous landing state. Wire failures are logged, never surfaced.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.client.Logout(ctx); err != nil {
		c.log.Warn().Err(err).Msg("logout call failed, clearing local session anyway")
	}
	c.setState(State{User: nil, Screen: ScreenLanding, Loading: false})
}
