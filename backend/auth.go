package backend

import (
	"context"
	"errors"
	"net/http"

	"foodiefind-client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// SignupFields is the registration payload. The backend assigns the role.
type SignupFields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userEnvelope struct {
	User models.User `json:"user"`
}

// Login exchanges credentials for a session token and retains it for all
// subsequent calls. Returns ErrInvalidCredentials when the backend says no.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return ErrInvalidCredentials
		}
		return err
	}
	c.setToken(resp.Token)
	c.log.Info().Str("email", email).Msg("logged in")
	return nil
}

// Signup registers a new account. It deliberately does not adopt a session:
// callers log in afterwards with the same credentials.
func (c *Client) Signup(ctx context.Context, fields SignupFields) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, fields, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return ErrDuplicateEmail
		}
		return err
	}
	c.log.Info().Str("email", fields.Email).Msg("account created")
	return nil
}

// Logout invalidates the session server-side. The local token is dropped
// even when the call fails; the UI treats logout as always succeeding.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	c.setToken("")
	return err
}

// Me asks the backend who the current session belongs to. Returns
// ErrNoSession when there is no token or the backend rejects it.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	if !c.HasToken() {
		return nil, ErrNoSession
	}
	var resp userEnvelope
	err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &resp.User, nil
}
