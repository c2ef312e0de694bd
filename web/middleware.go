package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiefind-client/models"
	"foodiefind-client/session"
)

const userKey = "currentUser"

// RequireSession gates the authenticated screens. While the session
// bootstrap is still pending it renders the neutral loading page; with no
// user it sends the visitor back to the landing screen.
func RequireSession(sessions *session.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := sessions.State()
		if state.Loading {
			c.HTML(http.StatusOK, "loading.html", gin.H{})
			c.Abort()
			return
		}
		if state.User == nil {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Set(userKey, state.User)
		c.Next()
	}
}

// RequireRestaurantCreation enforces the role capability on the creation
// intent. The form is already hidden for customers; this backstops it.
func RequireRestaurantCreation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !models.CanCreateRestaurant(user.Role) {
			c.String(http.StatusForbidden, "Your role may not create restaurants")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the session user injected by RequireSession.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	return val.(*models.User)
}
