package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"foodiefind-client/dashboard"
	"foodiefind-client/models"
	"foodiefind-client/session"
)

// ConnStatus is the advisory connectivity indicator set by the startup
// probe. It never blocks anything.
type ConnStatus struct {
	Connected bool
	Status    string
}

// Demo account seeded in the backend; the landing page's shortcut logs in
// with it through the ordinary login path.
const (
	demoEmail    = "customer@example.com"
	demoPassword = "password"
)

type Handlers struct {
	sessions *session.Controller
	loader   *dashboard.Loader
	conn     ConnStatus
	adminURL string
	log      zerolog.Logger
}

func NewHandlers(sessions *session.Controller, loader *dashboard.Loader, conn ConnStatus, adminURL string, log zerolog.Logger) *Handlers {
	return &Handlers{
		sessions: sessions,
		loader:   loader,
		conn:     conn,
		adminURL: adminURL,
		log:      log.With().Str("component", "web").Logger(),
	}
}

// Landing renders the public screen with the login and signup forms. A
// live session skips straight to the dashboard.
func (h *Handlers) Landing(c *gin.Context) {
	state := h.sessions.State()
	if state.Loading {
		c.HTML(http.StatusOK, "loading.html", gin.H{})
		return
	}
	if state.User != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Conn":     h.conn,
		"AdminURL": h.adminURL,
		"Error":    c.Query("error"),
	})
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Login handles the landing page's login form.
func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.backToLanding(c, "Please enter a valid email and password.")
		return
	}
	if err := h.sessions.Login(c.Request.Context(), form.Email, form.Password); err != nil {
		h.backToLanding(c, "Login failed. Please check your credentials.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DemoLogin signs in with the seeded demo customer account.
func (h *Handlers) DemoLogin(c *gin.Context) {
	if err := h.sessions.Login(c.Request.Context(), demoEmail, demoPassword); err != nil {
		h.backToLanding(c, "Demo login is unavailable right now.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

type signupForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

// Signup handles registration; on success the session controller chains
// into a login with the same credentials.
func (h *Handlers) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		h.backToLanding(c, "Please fill in all signup fields (password at least 6 characters).")
		return
	}
	if err := h.sessions.Signup(c.Request.Context(), form.Name, form.Email, form.Password); err != nil {
		h.backToLanding(c, "Signup failed. Please try a different email.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout always lands back on the public screen.
func (h *Handlers) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/")
}

// Dashboard re-fetches on every mount; nothing is cached across visits.
func (h *Handlers) Dashboard(c *gin.Context) {
	user := CurrentUser(c)
	_ = h.loader.Load(c.Request.Context(), user) // failure lands in State().Err
	h.renderDashboard(c, user, "", dashboard.RestaurantInput{})
}

// CreateRestaurant handles the creation form. On failure the dashboard is
// re-rendered with the submitted values intact so the user can retry.
func (h *Handlers) CreateRestaurant(c *gin.Context) {
	user := CurrentUser(c)
	var form dashboard.RestaurantInput
	if err := c.ShouldBind(&form); err != nil {
		h.renderDashboard(c, user, "Error: Could not create restaurant.", form)
		return
	}
	if _, err := h.loader.CreateRestaurant(c.Request.Context(), user, form); err != nil {
		h.renderDashboard(c, user, "Error: Could not create restaurant.", form)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handlers) renderDashboard(c *gin.Context, user *models.User, createErr string, form dashboard.RestaurantInput) {
	state := h.loader.State()
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":      user,
		"Conn":      h.conn,
		"AdminURL":  h.adminURL,
		"State":     state,
		"CanCreate": models.CanCreateRestaurant(user.Role),
		"HasOrders": models.HasOrdersPanel(user.Role),
		"CreateErr": createErr,
		"Form":      form,
	})
}

func (h *Handlers) backToLanding(c *gin.Context, message string) {
	c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(message))
}
