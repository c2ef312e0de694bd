package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiefind-client/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// SetupRoutes wires the two screens and their intents onto the engine.
func SetupRoutes(r *gin.Engine, h *Handlers, sessions *session.Controller) {
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	// Health of the local UI server itself (not the backend probe)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "FoodieFind client"})
	})

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", h.Landing)
	r.POST("/login", h.Login)
	r.POST("/signup", h.Signup)
	r.POST("/demo-login", h.DemoLogin)
	r.POST("/logout", h.Logout)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(RequireSession(sessions))
	{
		auth.GET("/dashboard", h.Dashboard)
		auth.POST("/restaurants", RequireRestaurantCreation(), h.CreateRestaurant)
	}
}
