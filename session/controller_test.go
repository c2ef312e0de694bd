package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiefind-client/backend"
	"foodiefind-client/models"
	"foodiefind-client/session"
)

// fakeAuth implements session.AuthClient with overridable behavior.
type fakeAuth struct {
	me     func() (*models.User, error)
	login  func(email, password string) error
	signup func(fields backend.SignupFields) error
	logout func() error

	loginCalls  []string
	signupCalls []backend.SignupFields
}

func (f *fakeAuth) Me(context.Context) (*models.User, error) {
	if f.me == nil {
		return nil, backend.ErrNoSession
	}
	return f.me()
}

func (f *fakeAuth) Login(_ context.Context, email, password string) error {
	f.loginCalls = append(f.loginCalls, email+":"+password)
	if f.login == nil {
		return nil
	}
	return f.login(email, password)
}

func (f *fakeAuth) Signup(_ context.Context, fields backend.SignupFields) error {
	f.signupCalls = append(f.signupCalls, fields)
	if f.signup == nil {
		return nil
	}
	return f.signup(fields)
}

func (f *fakeAuth) Logout(context.Context) error {
	if f.logout == nil {
		return nil
	}
	return f.logout()
}

var alice = &models.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: models.RoleCustomer}

func TestBootstrapResumesSession(t *testing.T) {
	fake := &fakeAuth{me: func() (*models.User, error) { return alice, nil }}
	ctrl := session.NewController(fake, zerolog.Nop())

	ctrl.Bootstrap(context.Background())

	state := ctrl.State()
	assert.Equal(t, alice, state.User)
	assert.Equal(t, session.ScreenDashboard, state.Screen)
	assert.False(t, state.Loading)
}

func TestBootstrapNoSessionResolvesToLanding(t *testing.T) {
	ctrl := session.NewController(&fakeAuth{}, zerolog.Nop())

	ctrl.Bootstrap(context.Background())

	state := ctrl.State()
	assert.Nil(t, state.User)
	assert.Equal(t, session.ScreenLanding, state.Screen)
	assert.False(t, state.Loading)
}

func TestBootstrapNetworkFailureResolvesToLanding(t *testing.T) {
	fake := &fakeAuth{me: func() (*models.User, error) { return nil, errors.New("dial tcp: timeout") }}
	ctrl := session.NewController(fake, zerolog.Nop())

	ctrl.Bootstrap(context.Background())

	state := ctrl.State()
	assert.Nil(t, state.User)
	assert.Equal(t, session.ScreenLanding, state.Screen)
	assert.False(t, state.Loading)
}

func TestBootstrapLoadingFlagCoversThePendingLookup(t *testing.T) {
	fake := &fakeAuth{}
	ctrl := session.NewController(fake, zerolog.Nop())

	var observed []bool
	ctrl.Subscribe(func(s session.State) { observed = append(observed, s.Loading) })

	// Loading holds while the lookup is in flight
	fake.me = func() (*models.User, error) {
		assert.True(t, ctrl.State().Loading)
		return nil, backend.ErrNoSession
	}
	ctrl.Bootstrap(context.Background())

	require.Len(t, observed, 2)
	assert.True(t, observed[0], "loading set before the lookup")
	assert.False(t, observed[1], "loading released after the lookup")
}

func TestLoginSuccessMovesToDashboard(t *testing.T) {
	fake := &fakeAuth{me: func() (*models.User, error) { return alice, nil }}
	ctrl := session.NewController(fake, zerolog.Nop())
	ctrl.Bootstrap(context.Background())

	err := ctrl.Login(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	state := ctrl.State()
	assert.Equal(t, alice, state.User)
	assert.Equal(t, session.ScreenDashboard, state.Screen)
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	fake := &fakeAuth{login: func(string, string) error { return backend.ErrInvalidCredentials }}
	ctrl := session.NewController(fake, zerolog.Nop())
	ctrl.Bootstrap(context.Background())

	err := ctrl.Login(context.Background(), "alice@example.com", "wrong")

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)

	state := ctrl.State()
	assert.Nil(t, state.User)
	assert.Equal(t, session.ScreenLanding, state.Screen)
}

func TestLoginUserLookupFailureLeavesStateUntouched(t *testing.T) {
	fake := &fakeAuth{me: func() (*models.User, error) { return nil, errors.New("boom") }}
	ctrl := session.NewController(fake, zerolog.Nop())

	err := ctrl.Login(context.Background(), "alice@example.com", "secret")

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Nil(t, ctrl.State().User)
	assert.Equal(t, session.ScreenLanding, ctrl.State().Screen)
}

func TestSignupChainsIntoLoginWithSameCredentials(t *testing.T) {
	fake := &fakeAuth{me: func() (*models.User, error) { return alice, nil }}
	ctrl := session.NewController(fake, zerolog.Nop())

	err := ctrl.Signup(context.Background(), "Alice", "alice@example.com", "secret")

	require.NoError(t, err)
	require.Len(t, fake.signupCalls, 1)
	assert.Equal(t, backend.SignupFields{Name: "Alice", Email: "alice@example.com", Password: "secret"}, fake.signupCalls[0])
	require.Len(t, fake.loginCalls, 1)
	assert.Equal(t, "alice@example.com:secret", fake.loginCalls[0])
	assert.Equal(t, session.ScreenDashboard, ctrl.State().Screen)
}

func TestSignupFailureDoesNotAttemptLogin(t *testing.T) {
	fake := &fakeAuth{signup: func(backend.SignupFields) error { return backend.ErrDuplicateEmail }}
	ctrl := session.NewController(fake, zerolog.Nop())
	ctrl.Bootstrap(context.Background())

	err := ctrl.Signup(context.Background(), "Alice", "alice@example.com", "secret")

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, backend.ErrDuplicateEmail)
	assert.Empty(t, fake.loginCalls, "no login attempt after failed signup")
	assert.Equal(t, session.ScreenLanding, ctrl.State().Screen)
}

func TestSignupNeverReachesDashboardWithoutLogin(t *testing.T) {
	// Signup succeeds but the chained login fails: the screen must stay on
	// landing, proving signup itself establishes no session.
	fake := &fakeAuth{login: func(string, string) error { return backend.ErrInvalidCredentials }}
	ctrl := session.NewController(fake, zerolog.Nop())
	ctrl.Bootstrap(context.Background())

	err := ctrl.Signup(context.Background(), "Alice", "alice@example.com", "secret")

	require.Error(t, err)
	assert.Equal(t, session.ScreenLanding, ctrl.State().Screen)
	assert.Nil(t, ctrl.State().User)
}

func TestLogoutClearsUnconditionally(t *testing.T) {
	fake := &fakeAuth{
		me:     func() (*models.User, error) { return alice, nil },
		logout: func() error { return errors.New("network down") },
	}
	ctrl := session.NewController(fake, zerolog.Nop())
	ctrl.Bootstrap(context.Background())
	require.Equal(t, session.ScreenDashboard, ctrl.State().Screen)

	ctrl.Logout(context.Background())

	state := ctrl.State()
	assert.Nil(t, state.User)
	assert.Equal(t, session.ScreenLanding, state.Screen)
	assert.False(t, state.Loading)
}
