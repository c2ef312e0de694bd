package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenStore persists the session token across client restarts, the way a
// browser would keep a session cookie.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Client is the sole channel to the hosted backend. All entity reads/writes
// and every authentication operation go through it.
type Client struct {
	baseURL string
	appID   string
	http    *http.Client
	tokens  TokenStore
	log     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient builds a handle for the given backend. A stored token, if any,
// is adopted unless its expiry claim has already passed.
func NewClient(baseURL, appID string, tokens TokenStore, log zerolog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   appID,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		log:     log.With().Str("component", "backend").Logger(),
	}
	c.adoptStoredToken()
	return c
}

// BaseURL exposes the configured backend root, e.g. for the admin panel link.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether the client currently holds a session token.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

func (c *Client) adoptStoredToken() {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Load()
	if err != nil {
		c.log.Warn().Err(err).Msg("could not read stored session token")
		return
	}
	if token == "" {
		return
	}
	if expired, exp := tokenExpired(token); expired {
		c.log.Debug().Time("expiredAt", exp).Msg("discarding expired session token")
		if err := c.tokens.Clear(); err != nil {
			c.log.Warn().Err(err).Msg("could not clear expired session token")
		}
		return
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.log.Debug().Msg("adopted stored session token")
}

// tokenExpired inspects the exp claim without verifying the signature. The
// backend is the authority either way; this only avoids a request that is
// guaranteed to come back 401.
func tokenExpired(token string) (bool, time.Time) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false, time.Time{}
	}
	if claims.ExpiresAt == nil {
		return false, time.Time{}
	}
	return claims.ExpiresAt.Before(time.Now()), claims.ExpiresAt.Time
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if c.tokens == nil {
		return
	}
	var err error
	if token == "" {
		err = c.tokens.Clear()
	} else {
		err = c.tokens.Save(token)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("could not persist session token")
	}
}

// errorBody matches the backend's uniform {"error": "..."} rejection shape.
type errorBody struct {
	Error string `json:"error"`
}

// do issues one request and decodes a 2xx body into out (when non-nil).
// Non-2xx responses come back as *APIError carrying the backend's message;
// callers map the interesting status codes onto sentinels.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.appID != "" {
		req.Header.Set("X-App-ID", c.appID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{Status: resp.StatusCode, Message: eb.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Health performs the lightweight reachability check used by the startup
// probe. It carries no session and mutates nothing.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}
