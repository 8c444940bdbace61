package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Register attaches every route to r. allowedOrigins applies to /api only.
func (h *Handlers) Register(r *gin.Engine, allowedOrigins []string) {
	r.Use(RequestIDMiddleware())
	r.SetHTMLTemplate(h.templates)

	api := r.Group("/api")
	if len(allowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length", requestIDHeader},
		}))
		// cors answers preflights itself but only runs on matched routes.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
	{
		api.GET("/influencers", h.GetInfluencers)
		api.GET("/influencers/:slug", h.GetInfluencer)
	}
	// Same-origin websocket; the cors origin list does not apply.
	r.GET("/api/live/:slug", h.Live)

	r.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/", h.Leaderboard)
	r.GET("/:slug", h.Influencer)
}
